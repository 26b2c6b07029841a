//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow scans a fixed id or fails with err.
type stubRow struct {
	id  int64
	err error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.id
	}
	return nil
}

func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewPaidOrder(order.PaidOrderParams{
		OrderNo:     "GYM-C-20250310090000000",
		Type:        order.TypeCourt,
		RelatedID:   5,
		MemberName:  "walk-in",
		TotalAmount: decimal.NewFromInt(100),
		Currency:    "CNY",
		PayMethod:   "cash",
		Source:      order.SourceAdmin,
		Now:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func TestOrderRepository_BuildInsert(t *testing.T) {
	tests := []struct {
		name        string
		enabled     []string
		wantColumns []string
		wantMissing []string
		wantArgs    int
	}{
		{
			name:        "all optional columns",
			enabled:     []string{"source", "currency", "pay_method", "remark", "paid_at", "discount_amount"},
			wantColumns: []string{"source", "currency", "pay_method", "remark", "paid_at", "discount_amount"},
			wantArgs:    15,
		},
		{
			name:        "legacy table without optional columns",
			enabled:     nil,
			wantMissing: []string{"source", "currency", "pay_method", "remark", "paid_at", "discount_amount"},
			wantArgs:    9,
		},
		{
			name:        "unknown names are ignored",
			enabled:     []string{"currency", "coupon_code"},
			wantColumns: []string{"currency"},
			wantMissing: []string{"coupon_code", "remark"},
			wantArgs:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewOrderRepository(nil, NewOrderColumns(tt.enabled))

			query, args, err := repo.BuildInsert(newPaidOrder(t))

			require.NoError(t, err)
			assert.Contains(t, query, "INSERT INTO orders")
			assert.Contains(t, query, "RETURNING id")
			for _, c := range tt.wantColumns {
				assert.Contains(t, query, c)
			}
			for _, c := range tt.wantMissing {
				assert.NotContains(t, query, c)
			}
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestOrderRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		row      stubRow
		wantID   int64
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:   "success",
			row:    stubRow{id: 99},
			wantID: 99,
		},
		{
			name:     "duplicate order number",
			row:      stubRow{err: &pgconn.PgError{Code: "23505"}},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "connection failure",
			row:      stubRow{err: errors.New("connection reset")},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(tt.row)
			repo := NewOrderRepository(db, NewOrderColumns([]string{"currency"}))

			id, err := repo.Create(context.Background(), newPaidOrder(t))

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	t.Run("missing row is not found", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)
		repo := NewOrderRepository(db, NewOrderColumns(nil))

		err := repo.UpdateStatus(context.Background(), 1, order.StatusRefunded)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
