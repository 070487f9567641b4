package views

import (
	"testing"
	"time"

	"github.com/edustore/dashboard/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(0), "0 ₫"},
		{decimal.NewFromInt(999), "999 ₫"},
		{decimal.NewFromInt(1000), "1.000 ₫"},
		{decimal.NewFromInt(1250000), "1.250.000 ₫"},
		{decimal.RequireFromString("99999.6"), "100.000 ₫"},
		{decimal.NewFromInt(-15000), "-15.000 ₫"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount))
		})
	}
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, "1125000", DiscountedPrice(1250000, 10).String())
	assert.Equal(t, "0", DiscountedPrice(1250000, 100).String())
	assert.Equal(t, "1250000", DiscountedPrice(1250000, 0).String())
	assert.Equal(t, "66666", DiscountedPrice(99999, 33.333).String())
	assert.Equal(t, "1250000", DiscountedPrice(1250000, -5).String())
	assert.Equal(t, "0", DiscountedPrice(1250000, 150).String())
}

func TestFormatDate_UsesVietnamTime(t *testing.T) {
	date, clock := FormatDate(time.Date(2024, 5, 31, 18, 45, 0, 0, time.UTC))

	assert.Equal(t, "01/06/2024", date)
	assert.Equal(t, "01:45", clock)
}

func TestFormatDateString(t *testing.T) {
	assert.Equal(t, "01/05/2024", FormatDateString("2024-05-01T08:30:00Z"))
	assert.Equal(t, "sometime", FormatDateString("sometime"))
}

func TestNewCourseStats(t *testing.T) {
	t.Run("empty page", func(t *testing.T) {
		stats := NewCourseStats(0, nil)

		assert.Equal(t, CourseStats{}, stats)
	})

	t.Run("aggregates the page", func(t *testing.T) {
		courses := []models.Course{
			{TotalEnrollment: 10, AveRating: 4.5},
			{TotalEnrollment: 5, AveRating: 4.0, IsBanned: true},
			{TotalEnrollment: 0, AveRating: 3.0},
		}

		stats := NewCourseStats(42, courses)

		assert.Equal(t, 42, stats.TotalCourses)
		assert.Equal(t, 15, stats.TotalEnrollments)
		assert.Equal(t, 3.8, stats.AverageRating)
		assert.Equal(t, 1, stats.BannedCourses)
	})
}

func TestForList(t *testing.T) {
	assert.Equal(t, EmptyNone, ForList(3, "go", "courses").Kind)

	noData := ForList(0, "", "courses")
	assert.Equal(t, EmptyNoData, noData.Kind)
	assert.Empty(t, noData.Keyword)

	noResults := ForList(0, "rust", "courses")
	assert.Equal(t, EmptyNoResults, noResults.Kind)
	assert.Equal(t, "rust", noResults.Keyword)
	assert.Contains(t, noResults.Message, `"rust"`)
}

func TestNotFound(t *testing.T) {
	err := NewNotFoundError("course", "/manager/course")

	assert.Equal(t, EmptyNotFound, err.State.Kind)
	assert.Equal(t, "/manager/course", err.State.BackLink)
	assert.Contains(t, err.Error(), "not found")
}

func TestBadges(t *testing.T) {
	tests := []struct {
		name  string
		badge Badge
		text  string
		tone  Tone
		known bool
	}{
		{"refund requested", RefundBadge(models.RefundStatusRequest), "Refund requested", ToneYellow, true},
		{"refund done", RefundBadge(models.RefundStatusRefunded), "Refunded", ToneGreen, true},
		{"refund unknown", RefundBadge("ON_HOLD"), "ON_HOLD", ToneGray, false},
		{"return failed", ReturnBadge(models.ReturnStatusFailed), "Exchange failed", ToneRed, true},
		{"return unknown", ReturnBadge("RETURNED"), "RETURNED", ToneGray, false},
		{"blog visible", BlogStatusBadge(models.BlogStatusVisible), "Visible", ToneGreen, true},
		{"blog unknown", BlogStatusBadge("DRAFT"), "unknown", ToneGray, false},
		{"course banned", CourseStatusBadge(true), "Banned", ToneRed, true},
		{"course active", CourseStatusBadge(false), "Active", ToneGreen, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.badge.Text)
			assert.Equal(t, tt.tone, tt.badge.Tone)
			assert.Equal(t, tt.known, tt.badge.Known)
		})
	}
}

func TestPromotionBadge(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := models.Promotion{IsActive: true, StartsAt: start, EndsAt: start.Add(48 * time.Hour)}

	assert.Equal(t, "Scheduled", PromotionBadge(p, start.Add(-time.Hour)).Text)
	assert.Equal(t, "Running", PromotionBadge(p, start.Add(time.Hour)).Text)
	assert.Equal(t, "Ended", PromotionBadge(p, start.Add(72*time.Hour)).Text)
	p.IsActive = false
	assert.Equal(t, "Paused", PromotionBadge(p, start.Add(time.Hour)).Text)
}

func TestBuildTable_AdminCourses(t *testing.T) {
	courses := []models.Course{
		{
			ID:          "c-1",
			Title:       "Go",
			Description: "Learn Go",
			Price:       1000000,
			Discount:    10,
			CreatedAt:   time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
			Creator:     &models.UserRef{ID: "u-1", Username: "alice"},
		},
		{ID: "c-2", IsBanned: true},
	}

	table := BuildTable(AdminCourseColumns(), courses, func(c models.Course) string { return c.ID })

	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Columns, 7)

	first := table.Rows[0]
	assert.Equal(t, "c-1", first.ID)
	assert.Equal(t, PlaceholderCourseImage, first.Cells[0].ImageURL)
	assert.Equal(t, "02/01/2024", first.Cells[1].Text)
	assert.Equal(t, "10:04", first.Cells[1].SubText)
	assert.Equal(t, "alice", first.Cells[2].Text)
	assert.Equal(t, "Not reviewed", first.Cells[3].Text)
	assert.Equal(t, "900.000 ₫", first.Cells[4].Text)
	assert.Equal(t, "1.000.000 ₫", first.Cells[4].SubText)
	assert.Equal(t, "Active", first.Cells[5].Badge.Text)
	assert.Equal(t, "/admin/course/c-1", first.Cells[6].Actions[0].Href)

	second := table.Rows[1]
	assert.Equal(t, "Untitled Course", second.Cells[0].Text)
	assert.Equal(t, "No description", second.Cells[0].SubText)
	assert.Equal(t, "N/A", second.Cells[1].Text)
	assert.Equal(t, "N/A", second.Cells[2].Text)
	assert.Equal(t, "Banned", second.Cells[5].Badge.Text)
}

func TestBuildTable_EmptyRowsNotNil(t *testing.T) {
	table := BuildTable(AdminCourseColumns(), nil, func(c models.Course) string { return c.ID })

	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
}

func TestNewCourseDetail_MapsQuestions(t *testing.T) {
	course := models.Course{
		ID:    "c-1",
		Title: "Go",
		Price: 200000,
		Chapters: []models.Chapter{
			{
				ID: "ch-1",
				Lessons: []models.Lesson{
					{ID: "l-1", Title: "Intro", Type: models.LessonTypeVideo, Sequence: 1},
				},
				Questions: []models.Question{
					{ID: "q-1", Content: "What is a goroutine?"},
				},
			},
			{ID: "ch-2"},
		},
	}

	detail := NewCourseDetail(course, "/manager/course")

	require.Len(t, detail.Chapters, 2)
	q := detail.Chapters[0].Questions[0]
	assert.Equal(t, ChapterItem{
		ID:          "q-1",
		Kind:        "question",
		Title:       "What is a goroutine?",
		Description: "What is a goroutine?",
		ChapterID:   "ch-1",
		Sequence:    0,
	}, q)
	assert.NotNil(t, detail.Chapters[1].Questions)
	assert.Equal(t, 1, detail.TotalLessons)
	assert.Equal(t, 1, detail.TotalQuestions)
	assert.Equal(t, "200.000 ₫", detail.FinalPrice)
	assert.Equal(t, "/manager/course", detail.BackLink)
}

func TestRefundCard(t *testing.T) {
	processed := time.Date(2024, 5, 3, 2, 0, 0, 0, time.UTC)
	order := models.RefundOrder{
		ID:                  "o-1",
		OrderCode:           100234,
		Status:              models.RefundStatusRefunded,
		OrderDate:           time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC),
		RefundRequestDate:   time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC),
		RefundProcessedDate: &processed,
		TotalAmount:         750000,
		OrderDetails: []models.OrderDetail{
			{ID: "d-1", CourseID: strPtr("c-1"), Quantity: 1, TotalPrice: 500000},
		},
		Payment: &models.Payment{PayMethod: models.PayMethodCOD},
	}

	card := RefundCard(order)

	assert.Equal(t, "#100234", card.OrderCode)
	assert.Equal(t, "03/05/2024", card.ProcessedDate)
	assert.Equal(t, "No reason given", card.Reason)
	assert.Nil(t, card.Recipient, "course-only orders have no recipient")
	assert.Equal(t, "Cash on delivery", card.PaymentMethod)
	assert.Equal(t, "750.000 ₫", card.Total)
	assert.Equal(t, models.ItemKindCourse, card.Lines[0].Kind)
}

func TestRefundCard_EmptyIDsAreUnset(t *testing.T) {
	order := models.RefundOrder{
		ID:        "o-3",
		OrderCode: 9,
		Status:    models.RefundStatusRefunded,
		OrderDetails: []models.OrderDetail{
			{ID: "d-1", CourseID: strPtr(""), ProductID: strPtr("p-1"), Quantity: 1, TotalPrice: 90000},
		},
		Delivery: &models.Delivery{Name: "Lan", Phone: "0901234567"},
	}

	card := RefundCard(order)

	require.Len(t, card.Lines, 1)
	assert.Equal(t, models.ItemKindProduct, card.Lines[0].Kind)
	assert.Equal(t, "Product", card.Lines[0].Label)
	require.NotNil(t, card.Recipient)
	assert.Equal(t, "Lan", card.Recipient.Name)
}

func TestReturnCard_WithProduct(t *testing.T) {
	order := models.ReturnOrder{
		ID:             "o-2",
		OrderCode:      7,
		Status:         "RETURNING",
		ExchangeReason: "Broken",
		ExchangeNote:   strPtr("Please hurry"),
		OrderDetails: []models.OrderDetail{
			{ID: "d-1", ProductID: strPtr("p-1"), Quantity: 2, TotalPrice: 100000},
			{ID: "d-2", ComboID: strPtr("cb-1"), Quantity: 1, TotalPrice: 50000},
		},
		ReturnRequestImages: []string{"https://cdn.example.com/broken.jpg"},
		Payment:             &models.Payment{PayMethod: "VNPAY"},
	}

	card := ReturnCard(order)

	require.NotNil(t, card.Recipient)
	assert.Equal(t, "N/A", card.Recipient.Name)
	assert.Equal(t, "Bank transfer", card.PaymentMethod)
	assert.Equal(t, "RETURNING", card.Status.Text)
	assert.Equal(t, ToneGray, card.Status.Tone)
	assert.Equal(t, "Please hurry", card.Note)
	assert.Len(t, card.Images, 1)
	assert.Equal(t, "Combo", card.Lines[1].Label)
}

func TestThreadComments(t *testing.T) {
	comments := []models.BlogComment{
		{ID: "c-1", Content: "root", User: models.CommentUser{FirstName: "An"},
			Replies: []models.BlogComment{{ID: "c-2", Content: "nested reply", User: models.CommentUser{Username: "binh"}}}},
		{ID: "c-3", ReplyID: strPtr("c-1"), Content: "flat reply"},
		{ID: "c-4", ReplyID: strPtr("missing"), Content: "orphan"},
		{ID: "c-5", Content: "second root"},
	}

	nodes := ThreadComments(comments)

	require.Len(t, nodes, 3)
	assert.Equal(t, "c-1", nodes[0].ID)
	require.Len(t, nodes[0].Replies, 2)
	assert.Equal(t, "c-2", nodes[0].Replies[0].ID)
	assert.Equal(t, "binh", nodes[0].Replies[0].Author)
	assert.Equal(t, "c-3", nodes[0].Replies[1].ID)
	assert.Equal(t, "c-4", nodes[1].ID)
	assert.Equal(t, "c-5", nodes[2].ID)
	assert.NotNil(t, nodes[2].Replies)
}

func TestThreadComments_ReplyCycle(t *testing.T) {
	comments := []models.BlogComment{
		{ID: "c-1", Content: "root"},
		{ID: "c-2", ReplyID: strPtr("c-3"), Content: "points at c-3"},
		{ID: "c-3", ReplyID: strPtr("c-2"), Content: "points at c-2"},
	}

	nodes := ThreadComments(comments)

	require.Len(t, nodes, 2)
	assert.Equal(t, "c-1", nodes[0].ID)
	assert.Equal(t, "c-2", nodes[1].ID)
	require.Len(t, nodes[1].Replies, 1)
	assert.Equal(t, "c-3", nodes[1].Replies[0].ID)
	assert.Empty(t, nodes[1].Replies[0].Replies)
}
