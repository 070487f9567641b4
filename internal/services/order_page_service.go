package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/views"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// OrderPlatform is the interface that wraps the platform API calls of the order settings page
type OrderPlatform interface {
	// Method RefundOrders retrieves one page of the caller's refund requests.
	//
	// The platform does not filter; "q" only selects the page.
	RefundOrders(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.RefundOrder], error)
	// Method ReturnOrders retrieves one page of the caller's exchange requests.
	//
	// Please reference RefundOrders method for more information about parameters.
	ReturnOrders(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.ReturnOrder], error)
}

// Order settings tabs
const (
	TabRefund = "refund"
	TabReturn = "return"

	// StatusAll disables the status filter
	StatusAll = "all"

	// SettingsOrderPath is the customer order settings page
	SettingsOrderPath = "/setting/refund"

	orderFetchSize = 50
	orderNoun      = "requests"
)

// OrderFilter is the tab, order-code search and status chosen on the settings page
type OrderFilter struct {
	Tab    string `json:"tab"`
	Search string `json:"search"`
	Status string `json:"status"`
}

// ParseOrderFilter reads the filter from URL values, defaulting to the refund tab and all statuses
func ParseOrderFilter(values url.Values) OrderFilter {
	f := OrderFilter{
		Tab:    strings.ToLower(strings.TrimSpace(values.Get("tab"))),
		Search: strings.TrimSpace(values.Get("search")),
		Status: strings.TrimSpace(values.Get("status")),
	}
	if f.Tab != TabReturn {
		f.Tab = TabRefund
	}
	if f.Status == "" {
		f.Status = StatusAll
	}
	return f
}

// Link returns the settings page URL reproducing f
func (f OrderFilter) Link() string {
	values := url.Values{}
	values.Set("tab", f.Tab)
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.Status != "" && f.Status != StatusAll {
		values.Set("status", f.Status)
	}
	return SettingsOrderPath + "?" + values.Encode()
}

// StatusOption is one entry of the status filter
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OrderListPage is one tab of the order settings page
type OrderListPage struct {
	Filter        OrderFilter       `json:"filter"`
	StatusOptions []StatusOption    `json:"statusOptions"`
	Cards         []views.OrderCard `json:"cards"`
	Total         int               `json:"total"`
	Empty         views.EmptyState  `json:"empty"`
}

// SettingsPage is the order settings page with both tabs loaded
type SettingsPage struct {
	Tab    string         `json:"tab"`
	Refund *OrderListPage `json:"refund"`
	Return *OrderListPage `json:"return"`
}

type orderPageService struct {
	platform OrderPlatform
	logger   *zap.Logger
}

// NewOrderPageService creates a new order page service
func NewOrderPageService(platform OrderPlatform, logger *zap.Logger) *orderPageService {
	return &orderPageService{
		platform: platform,
		logger:   logger,
	}
}

// firstPage is the single page fetched for filtering on the dashboard side
func firstPage() listquery.Query {
	return listquery.Query{PageSize: orderFetchSize, PageIndex: 1}
}

// RefundPage builds the refund tab. A failed fetch yields an error state with a reload action.
func (s *orderPageService) RefundPage(ctx context.Context, f OrderFilter) *OrderListPage {
	f.Tab = TabRefund
	page := &OrderListPage{
		Filter:        f,
		StatusOptions: refundStatusOptions(),
		Cards:         []views.OrderCard{},
	}

	env, err := s.platform.RefundOrders(ctx, firstPage())
	if err != nil {
		s.logger.Error("failed to get refund orders", zap.Error(err))
		page.Empty = views.LoadError(errorMessage(err), f.Link())
		return page
	}

	for _, o := range env.Data {
		if !o.Status.Known() {
			s.logger.Warn("unknown refund status", zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
		}
		if matchesCode(o.OrderCode, f.Search) && matchesStatus(string(o.Status), f.Status) {
			page.Cards = append(page.Cards, views.RefundCard(o))
		}
	}
	page.Total = len(page.Cards)
	page.Empty = views.ForList(page.Total, f.Search, orderNoun)
	return page
}

// ReturnPage builds the exchange tab. A failed fetch yields an error state with a reload action.
func (s *orderPageService) ReturnPage(ctx context.Context, f OrderFilter) *OrderListPage {
	f.Tab = TabReturn
	page := &OrderListPage{
		Filter:        f,
		StatusOptions: returnStatusOptions(),
		Cards:         []views.OrderCard{},
	}

	env, err := s.platform.ReturnOrders(ctx, firstPage())
	if err != nil {
		s.logger.Error("failed to get return orders", zap.Error(err))
		page.Empty = views.LoadError(errorMessage(err), f.Link())
		return page
	}

	for _, o := range env.Data {
		if !o.Status.Known() {
			s.logger.Warn("unknown exchange status", zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
		}
		if matchesCode(o.OrderCode, f.Search) && matchesStatus(string(o.Status), f.Status) {
			page.Cards = append(page.Cards, views.ReturnCard(o))
		}
	}
	page.Total = len(page.Cards)
	page.Empty = views.ForList(page.Total, f.Search, orderNoun)
	return page
}

// SettingsPage loads both tabs concurrently. The filter applies to the selected tab only.
func (s *orderPageService) SettingsPage(ctx context.Context, f OrderFilter) *SettingsPage {
	if f.Tab != TabReturn {
		f.Tab = TabRefund
	}
	unfiltered := OrderFilter{Status: StatusAll}
	refundFilter, returnFilter := unfiltered, unfiltered
	if f.Tab == TabRefund {
		refundFilter = f
	} else {
		returnFilter = f
	}

	page := &SettingsPage{Tab: f.Tab}
	var g errgroup.Group
	g.Go(func() error {
		page.Refund = s.RefundPage(ctx, refundFilter)
		return nil
	})
	g.Go(func() error {
		page.Return = s.ReturnPage(ctx, returnFilter)
		return nil
	})
	_ = g.Wait()

	return page
}

// matchesCode reports whether the order code contains search, ignoring a leading "#"
func matchesCode(code int64, search string) bool {
	search = strings.TrimPrefix(strings.TrimSpace(search), "#")
	if search == "" {
		return true
	}
	return strings.Contains(strconv.FormatInt(code, 10), search)
}

func matchesStatus(status, filter string) bool {
	return filter == "" || filter == StatusAll || strings.EqualFold(status, filter)
}

func refundStatusOptions() []StatusOption {
	options := []StatusOption{{Value: StatusAll, Label: "All"}}
	for _, st := range models.RefundStatuses {
		options = append(options, StatusOption{Value: string(st), Label: views.RefundBadge(st).Text})
	}
	return options
}

func returnStatusOptions() []StatusOption {
	options := []StatusOption{{Value: StatusAll, Label: "All"}}
	for _, st := range models.ReturnStatuses {
		options = append(options, StatusOption{Value: string(st), Label: views.ReturnBadge(st).Text})
	}
	return options
}
