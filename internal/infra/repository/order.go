package repository

import (
	"context"
	"time"

	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// Optional order columns. Deployments whose orders table predates a column
// leave it out of ORDER_OPTIONAL_COLUMNS.
const (
	ColumnSource         = "source"
	ColumnCurrency       = "currency"
	ColumnPayMethod      = "pay_method"
	ColumnRemark         = "remark"
	ColumnPaidAt         = "paid_at"
	ColumnDiscountAmount = "discount_amount"
)

// OrderColumns is the fixed capability set the order adapter writes and reads.
type OrderColumns map[string]bool

func NewOrderColumns(enabled []string) OrderColumns {
	cols := make(OrderColumns, len(enabled))
	for _, c := range enabled {
		switch c {
		case ColumnSource, ColumnCurrency, ColumnPayMethod, ColumnRemark, ColumnPaidAt, ColumnDiscountAmount:
			cols[c] = true
		}
	}
	return cols
}

func (c OrderColumns) Has(col string) bool {
	return c[col]
}

type OrderRepository struct {
	db   db.DBTX
	cols OrderColumns
}

func NewOrderRepository(db db.DBTX, cols OrderColumns) *OrderRepository {
	return &OrderRepository{db: db, cols: cols}
}

// BuildInsert renders the INSERT for o, writing optional columns only when enabled.
func (r *OrderRepository) BuildInsert(o *order.Order) (string, []any, error) {
	columns := []string{"order_no", "order_type", "related_id", "member_id", "member_name", "total_amount", "pay_amount", "status", "created_at"}
	values := []any{
		o.OrderNo(), o.Type().String(), o.RelatedID(), pgconv.Int64PtrToPgtype(o.MemberID()), o.MemberName(),
		pgconv.NumericFromDecimal(o.TotalAmount()), pgconv.NumericFromDecimal(o.PayAmount()),
		o.Status().String(), pgconv.TimeToPgtype(o.CreatedAt()),
	}

	optional := []struct {
		col string
		val any
	}{
		{ColumnDiscountAmount, pgconv.NumericFromDecimal(o.DiscountAmount())},
		{ColumnCurrency, o.Currency()},
		{ColumnPayMethod, o.PayMethod()},
		{ColumnSource, o.Source()},
		{ColumnRemark, o.Remark()},
		{ColumnPaidAt, timePtrToPgtype(o.PaidAt())},
	}
	for _, opt := range optional {
		if r.cols.Has(opt.col) {
			columns = append(columns, opt.col)
			values = append(values, opt.val)
		}
	}

	return psql.Insert("orders").Columns(columns...).Values(values...).Suffix("RETURNING id").ToSql()
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (int64, error) {
	query, args, err := r.BuildInsert(o)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build order insert", err, infra.KindDBFailure)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

// FindLatestPaidForUpdate locks the newest paid order of type t for the related entity.
func (r *OrderRepository) FindLatestPaidForUpdate(ctx context.Context, t order.Type, relatedID int64) (*order.Order, error) {
	cols := []string{"id", "order_no", "order_type", "related_id", "member_id", "member_name", "total_amount", "pay_amount", "status", "created_at"}
	optional := []string{ColumnDiscountAmount, ColumnCurrency, ColumnPayMethod, ColumnSource, ColumnRemark, ColumnPaidAt}
	for _, c := range optional {
		if r.cols.Has(c) {
			cols = append(cols, c)
		}
	}

	query, args, err := psql.Select(cols...).
		From("orders").
		Where("order_type = ?", t.String()).
		Where("related_id = ?", relatedID).
		Where("status = ?", order.StatusPaid.String()).
		OrderBy("id DESC").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build order query", err, infra.KindDBFailure)
	}

	var (
		s                    order.Snapshot
		memberID             pgtype.Int8
		total, pay, discount pgtype.Numeric
		orderType, status    string
		createdAt, paidAt    pgtype.Timestamptz
		currency, payMethod  pgtype.Text
		source, remark       pgtype.Text
	)
	dest := []any{&s.ID, &s.OrderNo, &orderType, &s.RelatedID, &memberID, &s.MemberName, &total, &pay, &status, &createdAt}
	optDest := map[string]any{
		ColumnDiscountAmount: &discount,
		ColumnCurrency:       &currency,
		ColumnPayMethod:      &payMethod,
		ColumnSource:         &source,
		ColumnRemark:         &remark,
		ColumnPaidAt:         &paidAt,
	}
	for _, c := range optional {
		if r.cols.Has(c) {
			dest = append(dest, optDest[c])
		}
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		return nil, infra.WrapRepoErr("failed to find paid order", err)
	}

	if s.TotalAmount, err = pgconv.DecimalFromNumeric(total); err != nil {
		return nil, infra.WrapRepoErr("invalid order amount", err, infra.KindDBFailure)
	}
	if s.PayAmount, err = pgconv.DecimalFromNumeric(pay); err != nil {
		return nil, infra.WrapRepoErr("invalid order pay amount", err, infra.KindDBFailure)
	}
	if s.DiscountAmount, err = pgconv.DecimalFromNumeric(discount); err != nil {
		return nil, infra.WrapRepoErr("invalid order discount", err, infra.KindDBFailure)
	}
	s.Type = order.Type(orderType)
	s.Status = order.Status(status)
	s.MemberID = pgconv.Int64PtrFromPgtype(memberID)
	s.CreatedAt = createdAt.Time
	s.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	s.Currency = currency.String
	s.PayMethod = payMethod.String
	s.Source = source.String
	s.Remark = remark.String

	return order.Reconstruct(s), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	tag, err := r.db.Exec(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("order not found")
	}
	return nil
}

func timePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgconv.TimeToPgtype(*t)
}
