package views

import (
	"time"

	"github.com/edustore/dashboard/internal/models"
)

// PromotionDetail is the salesman promotion edit page
type PromotionDetail struct {
	models.Promotion
	Status   Badge  `json:"status"`
	Period   string `json:"period"`
	BackLink string `json:"backLink"`
}

// NewPromotionDetail renders a promotion as of now
func NewPromotionDetail(p models.Promotion, now time.Time, backLink string) PromotionDetail {
	return PromotionDetail{
		Promotion: p,
		Status:    PromotionBadge(p, now),
		Period:    formatDay(p.StartsAt) + " - " + formatDay(p.EndsAt),
		BackLink:  backLink,
	}
}

// PromotionColumns are the columns of the salesman promotion table as of now
func PromotionColumns(basePath string, now time.Time) []ColumnDef[models.PromotionListItem] {
	return []ColumnDef[models.PromotionListItem]{
		{
			Key:   "promotion",
			Label: "Promotion",
			Render: func(p models.PromotionListItem) Cell {
				return TextCell(p.Name, p.Code)
			},
		},
		{
			Key:   "discount",
			Label: "Discount",
			Render: func(p models.PromotionListItem) Cell {
				return TextCell(itoa(p.DiscountPercent)+"%", "")
			},
		},
		{
			Key:   "period",
			Label: "Period",
			Render: func(p models.PromotionListItem) Cell {
				return TextCell(formatDay(p.StartsAt), formatDay(p.EndsAt))
			},
		},
		{
			Key:   "status",
			Label: "Status",
			Render: func(p models.PromotionListItem) Cell {
				return BadgeCell(PromotionBadge(models.Promotion{
					IsActive: p.IsActive,
					StartsAt: p.StartsAt,
					EndsAt:   p.EndsAt,
				}, now))
			},
		},
		{
			Key:   "actions",
			Label: "",
			Render: func(p models.PromotionListItem) Cell {
				return ActionsCell(
					Action{Label: "Edit", Href: basePath + "/" + p.ID + "/edit"},
				)
			},
		},
	}
}

func formatDay(t time.Time) string {
	date, _ := FormatDate(t)
	return date
}
