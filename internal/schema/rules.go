package schema

import (
	"strconv"

	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/validation"
	"github.com/go-playground/validator/v10"
)

// Cross-field rule tags
const (
	TagRequiredForType = "required_for_type"
	TagExcludedForType = "excluded_for_type"
	TagExactlyOneItem  = "exactly_one_item"
	TagPageCount       = "page_count"
	TagMaxPageSize     = "max_page_size"
)

func init() {
	validation.Validate.RegisterStructValidation(lessonRule, models.Lesson{})
	validation.Validate.RegisterStructValidation(orderDetailRule, models.OrderDetail{})
	validation.Validate.RegisterStructValidation(paginationRule, models.Pagination{})

	validation.RegisterCustomTranslation(TagRequiredForType, map[string]string{
		validation.LocaleEN: "{0} is required for {1} lessons",
		validation.LocaleVI: "{0} là bắt buộc với bài học {1}",
	})
	validation.RegisterCustomTranslation(TagExcludedForType, map[string]string{
		validation.LocaleEN: "{0} must be empty for {1} lessons",
		validation.LocaleVI: "{0} phải để trống với bài học {1}",
	})
	validation.RegisterCustomTranslation(TagExactlyOneItem, map[string]string{
		validation.LocaleEN: "an order line must reference exactly one course, product or combo",
		validation.LocaleVI: "mỗi dòng đơn hàng phải tham chiếu đúng một khóa học, sản phẩm hoặc combo",
	})
	validation.RegisterCustomTranslation(TagPageCount, map[string]string{
		validation.LocaleEN: "{0} must equal {1}",
		validation.LocaleVI: "{0} phải bằng {1}",
	})
	validation.RegisterCustomTranslation(TagMaxPageSize, map[string]string{
		validation.LocaleEN: "{0} must not exceed {1}",
		validation.LocaleVI: "{0} không được vượt quá {1}",
	})
}

// lessonRule ties content and videoUrl presence to the lesson type.
// An empty string counts as absent.
func lessonRule(sl validator.StructLevel) {
	lesson := sl.Current().Interface().(models.Lesson)
	if _, ok := models.ParseLessonType(string(lesson.Type)); !ok {
		// membership is reported by the field tag
		return
	}

	hasContent := lesson.Content != nil && *lesson.Content != ""
	hasVideo := lesson.VideoURL != nil && *lesson.VideoURL != ""
	lessonType := string(lesson.Type)

	switch {
	case lesson.Type.HasContent() && !hasContent:
		sl.ReportError(lesson.Content, "content", "Content", TagRequiredForType, lessonType)
	case !lesson.Type.HasContent() && hasContent:
		sl.ReportError(lesson.Content, "content", "Content", TagExcludedForType, lessonType)
	}

	switch {
	case lesson.Type.HasVideo() && !hasVideo:
		sl.ReportError(lesson.VideoURL, "videoUrl", "VideoURL", TagRequiredForType, lessonType)
	case !lesson.Type.HasVideo() && hasVideo:
		sl.ReportError(lesson.VideoURL, "videoUrl", "VideoURL", TagExcludedForType, lessonType)
	}
}

func orderDetailRule(sl validator.StructLevel) {
	detail := sl.Current().Interface().(models.OrderDetail)
	refs := 0
	for _, id := range []*string{detail.CourseID, detail.ProductID, detail.ComboID} {
		if id != nil && *id != "" {
			refs++
		}
	}
	if refs != 1 {
		sl.ReportError(detail.CourseID, "courseId", "CourseID", TagExactlyOneItem, "")
	}
}

func paginationRule(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.Pagination)

	if p.PageSize > 0 {
		want := (p.TotalItem + p.PageSize - 1) / p.PageSize
		// an empty list may report a single empty page
		if p.TotalPage != want && !(p.TotalItem == 0 && p.TotalPage == 1) {
			sl.ReportError(p.TotalPage, "totalPage", "TotalPage", TagPageCount, strconv.Itoa(want))
		}
	}
	if p.MaxPageSize > 0 && p.PageSize > p.MaxPageSize {
		sl.ReportError(p.PageSize, "pageSize", "PageSize", TagMaxPageSize, strconv.Itoa(p.MaxPageSize))
	}
	if p.TotalItem > 0 && p.CurrentPage < 1 {
		sl.ReportError(p.CurrentPage, "currentPage", "CurrentPage", "gte", "1")
	}
}
