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

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implements BusinessRepository on PostgreSQL (usable with pool or tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persists the business profile. TIN is unique.
func (r *BusinessRepo) Create(b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, tin, registration_no, id_type, contact_number,
			address_line, city, postal_code, state_code, country_code,
			sst_registration_no, msic_category, msic_code, msic_description,
			invoice_prefix, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.TIN, b.RegistrationNo, b.IDType, b.ContactNumber,
		b.Address.Line, b.Address.City, b.Address.PostalCode, b.Address.StateCode, b.Address.CountryCode,
		b.SSTRegistrationNo, b.Activity.Category, b.Activity.MSICCode, b.Activity.Description,
		b.InvoicePrefix, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID fetches a business by ID. Returns (nil, nil) when absent.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.getBy("id", id)
}

// GetByTIN fetches a business by TIN. Returns (nil, nil) when absent.
func (r *BusinessRepo) GetByTIN(tin string) (*entity.Business, error) {
	return r.getBy("tin", tin)
}

func (r *BusinessRepo) getBy(column, value string) (*entity.Business, error) {
	query := fmt.Sprintf(`
		SELECT id, name, tin, registration_no, id_type, contact_number,
			address_line, city, postal_code, state_code, country_code,
			sst_registration_no, msic_category, msic_code, msic_description,
			invoice_prefix, created_at, updated_at
		FROM businesses WHERE %s = $1`, column)
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&b.ID, &b.Name, &b.TIN, &b.RegistrationNo, &b.IDType, &b.ContactNumber,
		&b.Address.Line, &b.Address.City, &b.Address.PostalCode, &b.Address.StateCode, &b.Address.CountryCode,
		&b.SSTRegistrationNo, &b.Activity.Category, &b.Activity.MSICCode, &b.Activity.Description,
		&b.InvoicePrefix, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// Update rewrites the mutable profile fields.
func (r *BusinessRepo) Update(b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, registration_no = $3, id_type = $4, contact_number = $5,
			address_line = $6, city = $7, postal_code = $8, state_code = $9, country_code = $10,
			sst_registration_no = $11, msic_category = $12, msic_code = $13, msic_description = $14,
			invoice_prefix = $15, updated_at = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.RegistrationNo, b.IDType, b.ContactNumber,
		b.Address.Line, b.Address.City, b.Address.PostalCode, b.Address.StateCode, b.Address.CountryCode,
		b.SSTRegistrationNo, b.Activity.Category, b.Activity.MSICCode, b.Activity.Description,
		b.InvoicePrefix, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
