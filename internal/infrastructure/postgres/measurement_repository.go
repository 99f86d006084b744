package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

var _ repository.MeasurementRepository = (*MeasurementRepo)(nil)

// MeasurementRepo MeasurementRepository implementation (usable with pool or tx).
type MeasurementRepo struct {
	q Querier
}

// NewMeasurementRepository builds the adapter. Pass a pool or a tx (Querier).
func NewMeasurementRepository(q Querier) *MeasurementRepo {
	return &MeasurementRepo{q: q}
}

const sheetColumns = `id, company_id, buyer_id, invoice_number, description, allowance_text,
	height_trim, length_trim, total_gross_area, total_net_area, created_at, updated_at`

// CreateSheet persists a measurement sheet header.
func (r *MeasurementRepo) CreateSheet(sheet *entity.MeasurementSheet) error {
	if sheet.ID == "" {
		sheet.ID = uuid.New().String()
	}
	query := `
		INSERT INTO measurement_sheets (` + sheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sheet.ID, sheet.CompanyID, nullIfEmpty(sheet.BuyerID), sheet.InvoiceNumber,
		sheet.Description, sheet.AllowanceText,
		sheet.HeightTrim, sheet.LengthTrim, sheet.TotalGrossArea, sheet.TotalNetArea,
		sheet.CreatedAt, sheet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert measurement sheet: %w", err)
	}
	return nil
}

// CreateSlab persists one slab row.
func (r *MeasurementRepo) CreateSlab(slab *entity.MeasurementSlab) error {
	if slab.ID == "" {
		slab.ID = uuid.New().String()
	}
	query := `
		INSERT INTO measurement_slabs (id, sheet_id, position, gross_length, gross_height, net_length, net_height, gross_area, net_area)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		slab.ID, slab.SheetID, slab.Position,
		slab.GrossLength, slab.GrossHeight, slab.NetLength, slab.NetHeight,
		slab.GrossArea, slab.NetArea,
	)
	if err != nil {
		return fmt.Errorf("insert measurement slab: %w", err)
	}
	return nil
}

// GetSheetByID returns a sheet by ID, or nil when missing.
func (r *MeasurementRepo) GetSheetByID(id string) (*entity.MeasurementSheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM measurement_sheets WHERE id = $1`
	var s entity.MeasurementSheet
	if err := scanSheet(r.q.QueryRow(context.Background(), query, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get measurement sheet: %w", err)
	}
	return &s, nil
}

// GetSlabsBySheetID returns the slab rows of a sheet in measuring order.
func (r *MeasurementRepo) GetSlabsBySheetID(sheetID string) ([]*entity.MeasurementSlab, error) {
	query := `
		SELECT id, sheet_id, position, gross_length, gross_height, net_length, net_height, gross_area, net_area
		FROM measurement_slabs WHERE sheet_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, sheetID)
	if err != nil {
		return nil, fmt.Errorf("list measurement slabs: %w", err)
	}
	defer rows.Close()
	var list []*entity.MeasurementSlab
	for rows.Next() {
		var sl entity.MeasurementSlab
		if err := rows.Scan(&sl.ID, &sl.SheetID, &sl.Position,
			&sl.GrossLength, &sl.GrossHeight, &sl.NetLength, &sl.NetHeight,
			&sl.GrossArea, &sl.NetArea); err != nil {
			return nil, fmt.Errorf("scan measurement slab: %w", err)
		}
		list = append(list, &sl)
	}
	return list, rows.Err()
}

// ListSheetsByCompany returns the sheets of a company, newest first.
func (r *MeasurementRepo) ListSheetsByCompany(companyID string, limit, offset int) ([]*entity.MeasurementSheet, error) {
	query := `SELECT ` + sheetColumns + `
		FROM measurement_sheets WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list measurement sheets: %w", err)
	}
	defer rows.Close()
	var list []*entity.MeasurementSheet
	for rows.Next() {
		var s entity.MeasurementSheet
		if err := scanSheet(rows, &s); err != nil {
			return nil, fmt.Errorf("scan measurement sheet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteSheet removes a sheet; its slab rows go with it (ON DELETE CASCADE).
func (r *MeasurementRepo) DeleteSheet(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM measurement_sheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete measurement sheet: %w", err)
	}
	return nil
}

func scanSheet(row pgx.Row, s *entity.MeasurementSheet) error {
	var buyerID *string
	err := row.Scan(
		&s.ID, &s.CompanyID, &buyerID, &s.InvoiceNumber, &s.Description, &s.AllowanceText,
		&s.HeightTrim, &s.LengthTrim, &s.TotalGrossArea, &s.TotalNetArea,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if buyerID != nil {
		s.BuyerID = *buyerID
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
