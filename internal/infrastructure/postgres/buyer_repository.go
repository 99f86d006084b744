package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

var _ repository.BuyerRepository = (*BuyerRepo)(nil)

// BuyerRepo BuyerRepository implementation (usable with pool or tx).
type BuyerRepo struct {
	q Querier
}

// NewBuyerRepository builds the adapter. Pass a pool or a tx (Querier).
func NewBuyerRepository(q Querier) *BuyerRepo {
	return &BuyerRepo{q: q}
}

// Create persists a new buyer.
func (r *BuyerRepo) Create(buyer *entity.Buyer) error {
	query := `
		INSERT INTO buyers (id, company_id, name, address, country, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		buyer.ID, buyer.CompanyID, buyer.Name, buyer.Address, buyer.Country,
		buyer.Email, buyer.Phone, buyer.CreatedAt, buyer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert buyer: %w", err)
	}
	return nil
}

// GetByID returns a buyer by ID, or nil when missing.
func (r *BuyerRepo) GetByID(id string) (*entity.Buyer, error) {
	query := `
		SELECT id, company_id, name, address, country, email, phone, created_at, updated_at
		FROM buyers WHERE id = $1`
	var b entity.Buyer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Country, &b.Email, &b.Phone,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get buyer: %w", err)
	}
	return &b, nil
}

// GetByCompanyAndName returns a buyer by company and exact name.
func (r *BuyerRepo) GetByCompanyAndName(companyID, name string) (*entity.Buyer, error) {
	query := `
		SELECT id, company_id, name, address, country, email, phone, created_at, updated_at
		FROM buyers WHERE company_id = $1 AND name = $2`
	var b entity.Buyer
	err := r.q.QueryRow(context.Background(), query, companyID, name).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Country, &b.Email, &b.Phone,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get buyer by name: %w", err)
	}
	return &b, nil
}

// ListByCompany returns the buyers of a company with pagination.
func (r *BuyerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Buyer, error) {
	query := `
		SELECT id, company_id, name, address, country, email, phone, created_at, updated_at
		FROM buyers WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Buyer
	for rows.Next() {
		var b entity.Buyer
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Country, &b.Email, &b.Phone, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan buyer: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update rewrites a buyer.
func (r *BuyerRepo) Update(buyer *entity.Buyer) error {
	query := `
		UPDATE buyers
		SET name = $2, address = $3, country = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		buyer.ID, buyer.Name, buyer.Address, buyer.Country, buyer.Email, buyer.Phone, buyer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update buyer: %w", err)
	}
	return nil
}

// Delete removes a buyer by ID.
func (r *BuyerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM buyers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete buyer: %w", err)
	}
	return nil
}
