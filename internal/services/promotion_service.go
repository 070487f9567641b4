package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/validation"
	"github.com/edustore/dashboard/internal/views"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PromotionPath is the salesman promotion list
const (
	PromotionPath = "/salesman/promotions"
	promotionNoun = "promotions"
)

// PromotionRepository is the interface that wraps methods for the promotions table data access
type PromotionRepository interface {
	// Method GetAll retrieves promotions whose code or name contains "search".
	//
	// "page" and "count" select the page; pages start at 1.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, search string, page, count int) ([]models.PromotionListItem, error)
	// Method Count returns the number of promotions whose code or name contains "search".
	Count(ctx context.Context, search string) (int, error)
	// Method GetByID retrieves a promotion by its ID.
	//
	// A missing promotion is reported with a "promotion not found" error.
	GetByID(ctx context.Context, id string) (*models.Promotion, error)
	// Method ExistsByCode checks if a promotion other than "excludeID" already uses "code".
	ExistsByCode(ctx context.Context, code, excludeID string) (bool, error)
	// Method Create stores a new promotion.
	Create(ctx context.Context, promotion *models.Promotion) error
	// Method Update replaces the editable fields of a promotion.
	//
	// A missing promotion is reported with a "promotion not found" error.
	Update(ctx context.Context, promotion *models.Promotion) error
	// Method Delete deletes a promotion by its ID.
	//
	// A missing promotion is reported with a "promotion not found" error.
	Delete(ctx context.Context, id string) error
}

// PromotionListPage is the salesman promotion list
type PromotionListPage struct {
	Table views.Table      `json:"table"`
	Page  PageInfo         `json:"page"`
	Empty views.EmptyState `json:"empty"`
}

type promotionService struct {
	repo   PromotionRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewPromotionService creates a new promotion service
func NewPromotionService(repo PromotionRepository, logger *zap.Logger) *promotionService {
	return &promotionService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List builds the salesman promotion list
func (s *promotionService) List(ctx context.Context, q listquery.Query) (*PromotionListPage, error) {
	total, err := s.repo.Count(ctx, q.Keyword)
	if err != nil {
		s.logger.Error("failed to count promotions", zap.Error(err))
		return nil, fmt.Errorf("failed to get promotions: %w", err)
	}

	items, err := s.repo.GetAll(ctx, q.Keyword, q.PageIndex, q.PageSize)
	if err != nil {
		s.logger.Error("failed to get promotions", zap.Error(err))
		return nil, fmt.Errorf("failed to get promotions: %w", err)
	}

	pagination := models.Pagination{
		TotalItem:   total,
		PageSize:    q.PageSize,
		CurrentPage: q.PageIndex,
		MaxPageSize: listquery.MaxPageSize,
		TotalPage:   pageCount(total, q.PageSize),
	}

	return &PromotionListPage{
		Table: views.BuildTable(views.PromotionColumns(PromotionPath, s.now()), items, func(p models.PromotionListItem) string { return p.ID }),
		Page:  newPageInfo(PromotionPath, q, pagination),
		Empty: views.ForList(len(items), q.Keyword, promotionNoun),
	}, nil
}

// Get builds the edit page of a promotion
func (s *promotionService) Get(ctx context.Context, id string) (*views.PromotionDetail, error) {
	promotion, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := views.NewPromotionDetail(*promotion, s.now(), PromotionPath)
	return &detail, nil
}

// Create validates the form and stores a new promotion owned by userID
func (s *promotionService) Create(ctx context.Context, userID string, form forms.PromotionForm) (string, error) {
	if err := s.validate(ctx, &form, ""); err != nil {
		return "", err
	}

	promotion := &models.Promotion{
		ID:              uuid.New().String(),
		Code:            form.Code,
		Name:            form.Name,
		Description:     form.Description,
		DiscountPercent: form.DiscountPercent,
		StartsAt:        form.StartsAt,
		EndsAt:          form.EndsAt,
		IsActive:        form.IsActive,
		CreatedBy:       userID,
	}
	if err := s.repo.Create(ctx, promotion); err != nil {
		if errors.Is(err, models.ErrDuplicatePromotionCode) {
			return "", codeTaken(form.Code)
		}
		s.logger.Error("failed to create promotion", zap.String("code", promotion.Code), zap.Error(err))
		return "", err
	}
	return promotion.ID, nil
}

// Update validates the form and replaces the promotion
func (s *promotionService) Update(ctx context.Context, id string, form forms.PromotionForm) error {
	promotion, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validate(ctx, &form, promotion.ID); err != nil {
		return err
	}

	promotion.Code = form.Code
	promotion.Name = form.Name
	promotion.Description = form.Description
	promotion.DiscountPercent = form.DiscountPercent
	promotion.StartsAt = form.StartsAt
	promotion.EndsAt = form.EndsAt
	promotion.IsActive = form.IsActive

	if err := s.repo.Update(ctx, promotion); err != nil {
		if errors.Is(err, models.ErrDuplicatePromotionCode) {
			return codeTaken(form.Code)
		}
		if isNotFound(err) {
			return views.NewNotFoundError("Promotion", PromotionPath)
		}
		return err
	}
	return nil
}

// Delete deletes the promotion
func (s *promotionService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return views.NewNotFoundError("Promotion", PromotionPath)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return views.NewNotFoundError("Promotion", PromotionPath)
		}
		return err
	}
	return nil
}

// find loads a promotion, turning a missing one into the not-found view
func (s *promotionService) find(ctx context.Context, id string) (*models.Promotion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, views.NewNotFoundError("Promotion", PromotionPath)
	}
	promotion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, views.NewNotFoundError("Promotion", PromotionPath)
		}
		s.logger.Error("failed to get promotion", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return promotion, nil
}

// validate checks the form rules, then that no other promotion uses the code
func (s *promotionService) validate(ctx context.Context, form *forms.PromotionForm, excludeID string) error {
	if err := forms.Validate(form); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByCode(ctx, form.Code, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return codeTaken(form.Code)
	}
	return nil
}

// codeTaken is the form error for a code another promotion already uses
func codeTaken(code string) error {
	return validation.NewError(validation.FieldError{
		Field:   "code",
		Rule:    "unique",
		Message: fmt.Sprintf("code %s is already used by another promotion", code),
	})
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "not found")
}

// pageCount returns the number of pages of size needed for total items, at least 1
func pageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
