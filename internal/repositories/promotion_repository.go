package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/edustore/dashboard/internal/models"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the MySQL error number of a unique index violation
const mysqlDuplicateEntry = 1062

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type promotionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *sql.DB, logger *zap.Logger) *promotionRepository {
	return &promotionRepository{
		db:     db,
		logger: logger,
	}
}

// buildSearch returns the WHERE clause and arguments matching search against code and name
func buildSearch(search string) (string, []any) {
	if search == "" {
		return "", nil
	}
	pattern := "%" + likeEscaper.Replace(search) + "%"
	return "WHERE (code LIKE ? OR name LIKE ?)", []any{pattern, pattern}
}

// GetAll retrieves promotions with keyword search and pagination, newest first
func (r *promotionRepository) GetAll(ctx context.Context, search string, page, count int) ([]models.PromotionListItem, error) {
	whereClause, args := buildSearch(search)

	// Calculate offset
	offset := (page - 1) * count

	query := fmt.Sprintf(`
		SELECT id, code, name, discount_percent, starts_at, ends_at, is_active
		FROM promotions
		%s
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, count, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query promotions", zap.Error(err))
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	defer rows.Close()

	promotions := []models.PromotionListItem{}
	for rows.Next() {
		var p models.PromotionListItem
		err := rows.Scan(
			&p.ID,
			&p.Code,
			&p.Name,
			&p.DiscountPercent,
			&p.StartsAt,
			&p.EndsAt,
			&p.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return promotions, nil
}

// Count returns the number of promotions matching search
func (r *promotionRepository) Count(ctx context.Context, search string) (int, error) {
	whereClause, args := buildSearch(search)
	query := strings.TrimSpace("SELECT COUNT(*) FROM promotions " + whereClause)

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count promotions: %w", err)
	}
	return total, nil
}

// GetByID retrieves a promotion by its ID
func (r *promotionRepository) GetByID(ctx context.Context, id string) (*models.Promotion, error) {
	query := `
		SELECT id, code, name, description, discount_percent, starts_at, ends_at, is_active, created_by, created_at, updated_at
		FROM promotions
		WHERE id = ?
		LIMIT 1
	`

	var p models.Promotion
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.DiscountPercent,
		&p.StartsAt,
		&p.EndsAt,
		&p.IsActive,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("promotion not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get promotion by id: %w", err)
	}

	return &p, nil
}

// ExistsByCode checks whether another promotion already uses code.
// excludeID is skipped so an update can keep its own code.
func (r *promotionRepository) ExistsByCode(ctx context.Context, code, excludeID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM promotions WHERE code = ? AND id <> ?)"
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check promotion code: %w", err)
	}
	return exists, nil
}

// Create creates a new promotion. The caller assigns the ID.
func (r *promotionRepository) Create(ctx context.Context, p *models.Promotion) error {
	query := `
		INSERT INTO promotions (id, code, name, description, discount_percent, starts_at, ends_at, is_active, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Code,
		p.Name,
		p.Description,
		p.DiscountPercent,
		p.StartsAt,
		p.EndsAt,
		p.IsActive,
		p.CreatedBy,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("failed to create promotion: %w", models.ErrDuplicatePromotionCode)
		}
		return fmt.Errorf("failed to create promotion: %w", err)
	}

	return nil
}

// Update replaces the editable fields of a promotion
func (r *promotionRepository) Update(ctx context.Context, p *models.Promotion) error {
	query := `
		UPDATE promotions
		SET code = ?, name = ?, description = ?, discount_percent = ?, starts_at = ?, ends_at = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Code,
		p.Name,
		p.Description,
		p.DiscountPercent,
		p.StartsAt,
		p.EndsAt,
		p.IsActive,
		p.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("failed to update promotion: %w", models.ErrDuplicatePromotionCode)
		}
		return fmt.Errorf("failed to update promotion: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("promotion not found")
	}

	return nil
}

// Delete deletes a promotion by ID
func (r *promotionRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM promotions WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("promotion not found")
	}

	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
