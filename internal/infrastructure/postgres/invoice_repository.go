package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo InvoiceRepository implementation (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, buyer_id, kind, number, date, validity_days, currency,
	pre_carriage, place_of_receipt, port_of_loading, port_of_discharge, final_destination, incoterm,
	payment_terms, total_amount, created_at, updated_at`

// Create persists an invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.BuyerID, invoice.Kind, invoice.Number,
		invoice.Date, invoice.ValidityDays, invoice.Currency,
		invoice.Logistics.PreCarriage, invoice.Logistics.PlaceOfReceipt,
		invoice.Logistics.PortOfLoading, invoice.Logistics.PortOfDischarge,
		invoice.Logistics.FinalDestination, invoice.Logistics.Incoterm,
		invoice.PaymentTerms, invoice.TotalAmount,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persists one goods row.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_items (id, invoice_id, position, product_name, description, size, unit, quantity, rate, amount, excluded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.Position, item.ProductName, item.Description,
		item.Size, item.Unit, item.Quantity, item.Rate, item.Amount, item.Excluded,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// Update rewrites the mutable header fields, the cached total included.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET date = $2, validity_days = $3, currency = $4,
		    pre_carriage = $5, place_of_receipt = $6, port_of_loading = $7,
		    port_of_discharge = $8, final_destination = $9, incoterm = $10,
		    payment_terms = $11, total_amount = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Date, invoice.ValidityDays, invoice.Currency,
		invoice.Logistics.PreCarriage, invoice.Logistics.PlaceOfReceipt,
		invoice.Logistics.PortOfLoading, invoice.Logistics.PortOfDischarge,
		invoice.Logistics.FinalDestination, invoice.Logistics.Incoterm,
		invoice.PaymentTerms, invoice.TotalAmount, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// GetByID returns an invoice header by ID, or nil when missing.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	if err := scanInvoice(r.q.QueryRow(context.Background(), query, id), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetByCompanyAndNumber returns an invoice by company and document number.
func (r *InvoiceRepo) GetByCompanyAndNumber(companyID, number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1 AND number = $2`
	var inv entity.Invoice
	if err := scanInvoice(r.q.QueryRow(context.Background(), query, companyID, number), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return &inv, nil
}

// GetItemsByInvoiceID returns every row of an invoice in document order,
// voided rows included.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, position, product_name, description, size, unit, quantity, rate, amount, excluded
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Position, &it.ProductName, &it.Description,
			&it.Size, &it.Unit, &it.Quantity, &it.Rate, &it.Amount, &it.Excluded); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByCompany returns the invoices of a company, newest first.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE company_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row, inv *entity.Invoice) error {
	return row.Scan(
		&inv.ID, &inv.CompanyID, &inv.BuyerID, &inv.Kind, &inv.Number,
		&inv.Date, &inv.ValidityDays, &inv.Currency,
		&inv.Logistics.PreCarriage, &inv.Logistics.PlaceOfReceipt,
		&inv.Logistics.PortOfLoading, &inv.Logistics.PortOfDischarge,
		&inv.Logistics.FinalDestination, &inv.Logistics.Incoterm,
		&inv.PaymentTerms, &inv.TotalAmount,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
}
