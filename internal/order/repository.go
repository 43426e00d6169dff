package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Save(ctx context.Context, rec *Record) (*Record, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Record, error)
	GetByReference(ctx context.Context, reference string) (*Record, error)
	UpdateStatus(ctx context.Context, orderNumber string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, order_number, payment_reference, status, channel,
	customer, items, subtotal, delivery_fee, total, delivery_method, paid_at, created_at`

func (r *repository) Save(ctx context.Context, rec *Record) (*Record, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders
			(order_number, payment_reference, status, channel, customer, items,
			 subtotal, delivery_fee, total, delivery_method, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		rec.OrderNumber, rec.PaymentReference, rec.Status, rec.Channel,
		[]byte(rec.Customer), []byte(rec.Items),
		rec.Subtotal, rec.DeliveryFee, rec.Total, rec.DeliveryMethod, rec.PaidAt,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}

func (r *repository) GetByOrderNumber(ctx context.Context, orderNumber string) (*Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
	return scanRecord(row)
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE payment_reference = $1`, reference)
	return scanRecord(row)
}

func (r *repository) UpdateStatus(ctx context.Context, orderNumber string, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE order_number = $2`, status, orderNumber)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func scanRecord(row *sql.Row) (*Record, error) {
	var rec Record
	var customer, items []byte
	err := row.Scan(
		&rec.ID, &rec.OrderNumber, &rec.PaymentReference, &rec.Status, &rec.Channel,
		&customer, &items,
		&rec.Subtotal, &rec.DeliveryFee, &rec.Total, &rec.DeliveryMethod,
		&rec.PaidAt, &rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Customer = customer
	rec.Items = items
	return &rec, nil
}
