package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository on PostgreSQL (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, business_id, customer_id, number, date, time, currency_code,
		subtotal, tax, total, status, notes, terms, created_at, updated_at`

// Create persists an invoice header. Number is unique per business; a
// concurrent allocation of the same number surfaces as ErrDuplicate and the
// caller's transaction rolls back.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.BusinessID, inv.CustomerID, inv.Number, inv.Date, inv.Time, inv.CurrencyCode,
		inv.Subtotal, inv.Tax, inv.Total, inv.Status, inv.Notes, inv.Terms, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persists one line item.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, line_number, quantity, unit_price, discount_percent, tax_rate_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductID, item.LineNumber,
		item.Quantity, item.UnitPrice, item.DiscountPercent, item.TaxRatePercent,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID fetches an invoice header by ID. Returns (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetItemsByInvoiceID fetches the line items in line order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, line_number, quantity, unit_price, discount_percent, tax_rate_percent
		FROM invoice_items WHERE invoice_id = $1
		ORDER BY line_number`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	var items []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.ProductID, &it.LineNumber,
			&it.Quantity, &it.UnitPrice, &it.DiscountPercent, &it.TaxRatePercent,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListByBusiness pages through the invoices of a business, newest first.
func (r *InvoiceRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// ListNumbers returns every invoice number of the business.
func (r *InvoiceRepo) ListNumbers(businessID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT number FROM invoices WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// UpdateStatus changes the lifecycle status; nothing else is mutable after creation.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.BusinessID, &inv.CustomerID, &inv.Number, &inv.Date, &inv.Time, &inv.CurrencyCode,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.Status, &inv.Notes, &inv.Terms, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
