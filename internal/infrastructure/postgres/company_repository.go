package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo PostgreSQL adapter for the CompanyRepository port.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, name, tagline, gstin, llpin, address, phone, email, exporter_ref,
	bank_name, account_name, account_number, swift_code, ifsc,
	status, created_at, updated_at`

// Create persists a new company.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.Tagline, company.GSTIN, company.LLPIN,
		company.Address, company.Phone, company.Email, company.ExporterRef,
		company.Bank.BankName, company.Bank.AccountName, company.Bank.AccountNumber,
		company.Bank.SwiftCode, company.Bank.IFSC,
		company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID returns a company by ID, or nil when missing.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get company")
}

// GetByGSTIN returns a company by its GST identification number.
func (r *CompanyRepo) GetByGSTIN(gstin string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE gstin = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, gstin), "get company by GSTIN")
}

// Update rewrites a company profile. The GSTIN stays immutable.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, tagline = $3, llpin = $4, address = $5, phone = $6, email = $7,
		    exporter_ref = $8, bank_name = $9, account_name = $10, account_number = $11,
		    swift_code = $12, ifsc = $13, status = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.Tagline, company.LLPIN,
		company.Address, company.Phone, company.Email, company.ExporterRef,
		company.Bank.BankName, company.Bank.AccountName, company.Bank.AccountNumber,
		company.Bank.SwiftCode, company.Bank.IFSC,
		company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List returns companies with pagination.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) scanOne(row pgx.Row, op string) (*entity.Company, error) {
	var c entity.Company
	if err := scanCompany(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func scanCompany(row pgx.Row, c *entity.Company) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Tagline, &c.GSTIN, &c.LLPIN, &c.Address, &c.Phone, &c.Email, &c.ExporterRef,
		&c.Bank.BankName, &c.Bank.AccountName, &c.Bank.AccountNumber, &c.Bank.SwiftCode, &c.Bank.IFSC,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
}
