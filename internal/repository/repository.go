package repository

import (
	"context"

	"github.com/salesdash/api/internal/domain"
)

// UserRepository defines persistence for registered users.
type UserRepository interface {
	// Create inserts a new user. Fails with ErrAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProductRepository defines persistence for sales records.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *domain.Product) error

	// List returns all products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// Update replaces an existing product document.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product by its identifier.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every product and returns the number removed.
	// Callers must treat it as irreversible.
	DeleteAll(ctx context.Context) (int64, error)
}

// ContactRepository defines persistence for CRM contacts.
type ContactRepository interface {
	// Create inserts a new contact.
	Create(ctx context.Context, contact *domain.Contact) error

	// List returns all contacts, newest first by creation time.
	List(ctx context.Context) ([]domain.Contact, error)

	// GetByID retrieves a contact by its identifier.
	GetByID(ctx context.Context, id string) (*domain.Contact, error)

	// Update modifies an existing contact.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes a contact by its identifier.
	Delete(ctx context.Context, id string) error
}

// DashboardRepository computes aggregate statistics over the collections.
type DashboardRepository interface {
	// Summary returns counts, total revenue, and total profit from a
	// single consistent read.
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}
