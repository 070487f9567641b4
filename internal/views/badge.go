package views

import (
	"time"

	"github.com/edustore/dashboard/internal/models"
)

// Tone is the colour family of a badge
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	ToneBlue   Tone = "blue"
	ToneGray   Tone = "gray"
)

// Badge is a short coloured status label. Known is false for statuses
// the dashboard has no label for.
type Badge struct {
	Text  string `json:"text"`
	Tone  Tone   `json:"tone"`
	Known bool   `json:"known"`
}

// RefundBadge labels a refund status; unknown statuses show their raw text in gray.
func RefundBadge(s models.RefundStatus) Badge {
	switch s {
	case models.RefundStatusRequest:
		return Badge{Text: "Refund requested", Tone: ToneYellow, Known: true}
	case models.RefundStatusRefunding:
		return Badge{Text: "Refunding", Tone: ToneBlue, Known: true}
	case models.RefundStatusRefunded:
		return Badge{Text: "Refunded", Tone: ToneGreen, Known: true}
	case models.RefundStatusFailed:
		return Badge{Text: "Refund failed", Tone: ToneRed, Known: true}
	default:
		return Badge{Text: string(s), Tone: ToneGray}
	}
}

// ReturnBadge labels an exchange status; unknown statuses show their raw text in gray.
func ReturnBadge(s models.ReturnStatus) Badge {
	switch s {
	case models.ReturnStatusRequest:
		return Badge{Text: "Exchange requested", Tone: ToneYellow, Known: true}
	case models.ReturnStatusExchanging:
		return Badge{Text: "Exchanging", Tone: ToneBlue, Known: true}
	case models.ReturnStatusExchanged:
		return Badge{Text: "Exchanged", Tone: ToneGreen, Known: true}
	case models.ReturnStatusFailed:
		return Badge{Text: "Exchange failed", Tone: ToneRed, Known: true}
	default:
		return Badge{Text: string(s), Tone: ToneGray}
	}
}

// BlogStatusBadge labels a blog visibility
func BlogStatusBadge(s models.BlogStatus) Badge {
	switch s {
	case models.BlogStatusVisible:
		return Badge{Text: "Visible", Tone: ToneGreen, Known: true}
	case models.BlogStatusInvisible:
		return Badge{Text: "Hidden", Tone: ToneGray, Known: true}
	default:
		return Badge{Text: "unknown", Tone: ToneGray}
	}
}

// CourseStatusBadge labels a course as banned or active
func CourseStatusBadge(isBanned bool) Badge {
	if isBanned {
		return Badge{Text: "Banned", Tone: ToneRed, Known: true}
	}
	return Badge{Text: "Active", Tone: ToneGreen, Known: true}
}

// PromotionBadge labels a promotion by its schedule at the given moment
func PromotionBadge(p models.Promotion, now time.Time) Badge {
	switch {
	case !p.IsActive:
		return Badge{Text: "Paused", Tone: ToneGray, Known: true}
	case now.Before(p.StartsAt):
		return Badge{Text: "Scheduled", Tone: ToneBlue, Known: true}
	case now.After(p.EndsAt):
		return Badge{Text: "Ended", Tone: ToneRed, Known: true}
	default:
		return Badge{Text: "Running", Tone: ToneGreen, Known: true}
	}
}
