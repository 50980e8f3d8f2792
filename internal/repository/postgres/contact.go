package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salesdash/api/internal/domain"
	"github.com/salesdash/api/pkg/database"
	apperrors "github.com/salesdash/api/pkg/errors"
)

// ContactRepository implements repository.ContactRepository using PostgreSQL.
type ContactRepository struct {
	pool database.DBTX
}

// NewContactRepository creates a PostgreSQL-backed contact repository.
func NewContactRepository(pool database.DBTX) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Create inserts a new contact.
func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, company, status, notes, last_contacted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.Status,
		c.Notes,
		c.LastContacted,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	return nil
}

// List returns all contacts, newest first by creation time.
func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	query := `
		SELECT id, name, email, phone, company, status, notes, last_contacted, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.Company,
			&c.Status,
			&c.Notes,
			&c.LastContacted,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}

	if contacts == nil {
		contacts = []domain.Contact{}
	}

	return contacts, nil
}

// GetByID retrieves a contact by its ID.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `
		SELECT id, name, email, phone, company, status, notes, last_contacted, created_at, updated_at
		FROM contacts
		WHERE id = $1`

	var c domain.Contact
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.Status,
		&c.Notes,
		&c.LastContacted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Contact")
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}

	return &c, nil
}

// Update modifies an existing contact. Concurrent updates are
// last-write-wins; there is no version check.
func (r *ContactRepository) Update(ctx context.Context, c *domain.Contact) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE contacts
		SET name = $1, email = $2, phone = $3, company = $4, status = $5, notes = $6, last_contacted = $7, updated_at = $8
		WHERE id = $9`

	ct, err := r.pool.Exec(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.Status,
		c.Notes,
		c.LastContacted,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Contact")
	}

	return nil
}

// Delete removes a contact by its ID.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Contact")
	}

	return nil
}
