package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

// Save inserts the order and its lines in one transaction and returns the
// canonical stored row.
func (r *MySQLOrderRepo) Save(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO orders (id,customer_email,customer_name,customer_dni,delivery_address,
                    payment_name,card_number,expiration,cvv,holder_name,
                    total,status,placed_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.CustomerEmail, o.CustomerName, o.CustomerDNI, o.DeliveryAddress,
		o.Payment.Name, o.Payment.CardNumber, o.Payment.Expiration, o.Payment.CVV, o.Payment.HolderName,
		o.Total.String(), string(o.Status), o.PlacedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, line := range o.Lines {
		_, err = tx.ExecContext(ctx, `
INSERT INTO order_lines (order_id,product_name,quantity,unit_price,subtotal)
VALUES (?,?,?,?,?)`,
			o.ID, line.ProductName, line.Quantity, line.UnitPrice.String(), line.Subtotal.String())
		if err != nil {
			return nil, fmt.Errorf("insert order line %s: %w", line.ProductName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stored, err := r.FindByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrNotFound
	}
	return stored, nil
}

// FindByID returns (nil, nil) when no order matches.
func (r *MySQLOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,customer_email,customer_name,customer_dni,delivery_address,
       payment_name,card_number,expiration,cvv,holder_name,
       total,status,placed_at
FROM orders WHERE id=?`, id)

	var (
		o     domain.Order
		total string
	)
	err := row.Scan(&o.ID, &o.CustomerEmail, &o.CustomerName, &o.CustomerDNI, &o.DeliveryAddress,
		&o.Payment.Name, &o.Payment.CardNumber, &o.Payment.Expiration, &o.Payment.CVV, &o.Payment.HolderName,
		&total, (*string)(&o.Status), &o.PlacedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("order %s: bad total: %w", id, err)
	}
	o.PlacedAt = o.PlacedAt.In(time.UTC)

	lines, err := r.linesByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *MySQLOrderRepo) linesByOrderID(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT order_id,product_name,quantity,unit_price,subtotal
FROM order_lines WHERE order_id=? ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var (
			line      domain.OrderLine
			unitPrice string
			subtotal  string
		)
		if err := rows.Scan(&line.OrderID, &line.ProductName, &line.Quantity, &unitPrice, &subtotal); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return nil, err
		}
		if line.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
