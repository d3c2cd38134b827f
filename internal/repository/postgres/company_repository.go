package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

type companyRepository struct {
	executor DBExecutor
}

func NewCompanyRepository(db *sql.DB) *companyRepository {
	return &companyRepository{executor: db}
}

func NewCompanyRepositoryWithTx(tx *sql.Tx) *companyRepository {
	return &companyRepository{executor: tx}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (name, address, sector, quota, remaining_slots, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	var dbID int
	err := r.executor.QueryRowContext(
		ctx,
		query,
		company.Name,
		company.Address,
		company.Sector,
		company.Quota,
		company.RemainingSlots,
		time.Now(),
	).Scan(&dbID, &company.CreatedAt)
	if err != nil {
		return err
	}

	company.ID = intToCompanyID(dbID)
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	dbID, err := companyIDToInt(id)
	if err != nil {
		return nil, domain.NewNotFoundError("company " + id)
	}

	query := `
		SELECT id, name, address, sector, quota, remaining_slots, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	company := &domain.Company{}
	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(ctx, query, dbID).Scan(
		&dbID,
		&company.Name,
		&company.Address,
		&company.Sector,
		&company.Quota,
		&company.RemainingSlots,
		&company.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("company " + id)
		}
		return nil, err
	}

	company.ID = intToCompanyID(dbID)
	if updatedAt.Valid {
		company.UpdatedAt = &updatedAt.Time
	}

	return company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	query := `
		SELECT id, name, address, sector, quota, remaining_slots, created_at, updated_at
		FROM companies
		ORDER BY name
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company := &domain.Company{}
		var dbID int
		var updatedAt sql.NullTime
		err := rows.Scan(
			&dbID,
			&company.Name,
			&company.Address,
			&company.Sector,
			&company.Quota,
			&company.RemainingSlots,
			&company.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		company.ID = intToCompanyID(dbID)
		if updatedAt.Valid {
			company.UpdatedAt = &updatedAt.Time
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

// Reserve is the compare-and-decrement half of the capacity ledger. The
// remaining_slots > 0 predicate makes two racing reservations for the last
// slot resolve to exactly one winner.
func (r *companyRepository) Reserve(ctx context.Context, id string) error {
	dbID, err := companyIDToInt(id)
	if err != nil {
		return domain.NewNotFoundError("company " + id)
	}

	result, err := r.executor.ExecContext(
		ctx,
		"UPDATE companies SET remaining_slots = remaining_slots - 1, updated_at = NOW() WHERE id = $1 AND remaining_slots > 0",
		dbID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var exists bool
		err := r.executor.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)", dbID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("company " + id)
		}
		return domain.ErrCapacityExhausted
	}

	return nil
}

// Release is the bounded-increment half of the ledger; LEAST caps the slot
// count at the quota so a stray release can never over-credit a company.
func (r *companyRepository) Release(ctx context.Context, id string) error {
	dbID, err := companyIDToInt(id)
	if err != nil {
		return domain.NewNotFoundError("company " + id)
	}

	result, err := r.executor.ExecContext(
		ctx,
		"UPDATE companies SET remaining_slots = LEAST(remaining_slots + 1, quota), updated_at = NOW() WHERE id = $1",
		dbID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("company " + id)
	}

	return nil
}
