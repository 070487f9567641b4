package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/edustore/dashboard/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupPromotionTestRepository creates a promotion repository with a mock database
func setupPromotionTestRepository(t *testing.T) (*promotionRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewPromotionRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

var (
	promoStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	promoEnd   = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
)

func TestNewPromotionRepository(t *testing.T) {
	logger := zap.NewNop()
	db := &sql.DB{}

	repo := NewPromotionRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestPromotionRepository_GetAll(t *testing.T) {
	listColumns := []string{"id", "code", "name", "discount_percent", "starts_at", "ends_at", "is_active"}

	tests := []struct {
		name          string
		search        string
		page          int
		count         int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
		expectedCount int
	}{
		{
			name:  "success without search",
			page:  1,
			count: 10,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(listColumns).
					AddRow("p1", "SUMMER25", "Summer sale", 25, promoStart, promoEnd, true).
					AddRow("p2", "WELCOME", "Welcome", 10, promoStart, promoEnd, false)
				mock.ExpectQuery(`SELECT id, code, name, discount_percent, starts_at, ends_at, is_active FROM promotions ORDER BY created_at DESC, id LIMIT \? OFFSET \?`).
					WithArgs(10, 0).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:   "success with search and offset",
			search: "sum",
			page:   3,
			count:  5,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(listColumns).
					AddRow("p1", "SUMMER25", "Summer sale", 25, promoStart, promoEnd, true)
				mock.ExpectQuery(`SELECT .* FROM promotions WHERE \(code LIKE \? OR name LIKE \?\) ORDER BY .* LIMIT \? OFFSET \?`).
					WithArgs("%sum%", "%sum%", 5, 10).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:  "empty result",
			page:  1,
			count: 10,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM promotions`).
					WithArgs(10, 0).
					WillReturnRows(sqlmock.NewRows(listColumns))
			},
			expectedCount: 0,
		},
		{
			name:  "database error",
			page:  1,
			count: 10,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM promotions`).
					WithArgs(10, 0).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query promotions",
		},
		{
			name:  "scan error",
			page:  1,
			count: 10,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(listColumns).
					AddRow("p1", "SUMMER25", "Summer sale", "invalid", promoStart, promoEnd, true)
				mock.ExpectQuery(`SELECT .* FROM promotions`).
					WithArgs(10, 0).
					WillReturnRows(rows)
			},
			expectedError: true,
			errorContains: "failed to scan promotion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPromotionTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background(), tt.search, tt.page, tt.count)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPromotionRepository_Count(t *testing.T) {
	t.Run("with search", func(t *testing.T) {
		repo, mock, cleanup := setupPromotionTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM promotions WHERE \(code LIKE \? OR name LIKE \?\)`).
			WithArgs("%WEL%", "%WEL%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		total, err := repo.Count(context.Background(), "WEL")

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		repo, mock, cleanup := setupPromotionTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM promotions WHERE \(code LIKE \? OR name LIKE \?\)`).
			WithArgs(`%50\%\_off%`, `%50\%\_off%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		total, err := repo.Count(context.Background(), "50%_off")

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupPromotionTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM promotions`).
			WillReturnError(errors.New("database error"))

		_, err := repo.Count(context.Background(), "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count promotions")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPromotionRepository_GetByID(t *testing.T) {
	columns := []string{"id", "code", "name", "description", "discount_percent", "starts_at", "ends_at", "is_active", "created_by", "created_at", "updated_at"}

	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			id:   "p1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("p1", "SUMMER25", "Summer sale", "All courses", 25, promoStart, promoEnd, true, "u1", promoStart, promoStart)
				mock.ExpectQuery(`SELECT .* FROM promotions WHERE id = \?`).
					WithArgs("p1").
					WillReturnRows(rows)
			},
		},
		{
			name: "promotion not found",
			id:   "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM promotions WHERE id = \?`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			errorContains: "promotion not found",
		},
		{
			name: "database error",
			id:   "p1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM promotions WHERE id = \?`).
					WithArgs("p1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to get promotion by id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPromotionTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "SUMMER25", result.Code)
				assert.Equal(t, 25, result.DiscountPercent)
				assert.True(t, result.EndsAt.After(result.StartsAt))
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPromotionRepository_ExistsByCode(t *testing.T) {
	repo, mock, cleanup := setupPromotionTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM promotions WHERE code = \? AND id <> \?\)`).
		WithArgs("SUMMER25", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByCode(context.Background(), "SUMMER25", "p1")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromotionRepository_Create(t *testing.T) {
	promo := &models.Promotion{
		ID:              "p1",
		Code:            "SUMMER25",
		Name:            "Summer sale",
		DiscountPercent: 25,
		StartsAt:        promoStart,
		EndsAt:          promoEnd,
		IsActive:        true,
		CreatedBy:       "u1",
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
		expectedErr   error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO promotions`).
					WithArgs("p1", "SUMMER25", "Summer sale", "", 25, promoStart, promoEnd, true, "u1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate code",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO promotions`).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'SUMMER25' for key 'uk_promotions_code'"})
			},
			expectedError: true,
			errorContains: "failed to create promotion",
			expectedErr:   models.ErrDuplicatePromotionCode,
		},
		{
			name: "connection lost",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO promotions`).
					WillReturnError(errors.New("connection lost"))
			},
			expectedError: true,
			errorContains: "failed to create promotion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPromotionTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), promo)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.NotErrorIs(t, err, models.ErrDuplicatePromotionCode)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPromotionRepository_Update(t *testing.T) {
	promo := &models.Promotion{ID: "p1", Code: "SUMMER30", Name: "Summer sale", DiscountPercent: 30, StartsAt: promoStart, EndsAt: promoEnd}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE promotions SET .* WHERE id = \?`).
					WithArgs("SUMMER30", "Summer sale", "", 30, promoStart, promoEnd, false, "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "promotion not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE promotions`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
			errorContains: "promotion not found",
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE promotions`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to update promotion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPromotionTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Update(context.Background(), promo)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPromotionRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM promotions WHERE id = \?`).
					WithArgs("p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "promotion not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM promotions WHERE id = \?`).
					WithArgs("p1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
			errorContains: "promotion not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPromotionTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), "p1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
