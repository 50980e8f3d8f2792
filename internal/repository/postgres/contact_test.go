package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdash/api/internal/domain"
	apperrors "github.com/salesdash/api/pkg/errors"
)

func newContactTestFixture(t *testing.T) (*ContactRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewContactRepository(mock)
	return repo, mock
}

func sampleContact() *domain.Contact {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Contact{
		ID:        "c-1",
		Name:      "Bob Jones",
		Email:     "bob@example.com",
		Phone:     "+1555000111",
		Company:   "Acme",
		Status:    domain.ContactStatusLead,
		Notes:     "met at expo",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func contactColumns() []string {
	return []string{"id", "name", "email", "phone", "company", "status", "notes", "last_contacted", "created_at", "updated_at"}
}

func contactRow(rows *pgxmock.Rows, c *domain.Contact) *pgxmock.Rows {
	return rows.AddRow(c.ID, c.Name, c.Email, c.Phone, c.Company, c.Status, c.Notes, c.LastContacted, c.CreatedAt, c.UpdatedAt)
}

func TestContactRepository_Create_Success(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	c := sampleContact()

	mock.ExpectExec("INSERT INTO contacts").
		WithArgs(c.ID, c.Name, c.Email, c.Phone, c.Company, c.Status, c.Notes, c.LastContacted, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List_NewestFirst(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	newer := sampleContact()
	newer.ID = "c-2"
	newer.CreatedAt = newer.CreatedAt.Add(time.Hour)
	older := sampleContact()

	rows := pgxmock.NewRows(contactColumns())
	contactRow(rows, newer)
	contactRow(rows, older)

	mock.ExpectQuery("SELECT .+ FROM contacts ORDER BY created_at DESC").
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-2", got[0].ID)
	assert.Equal(t, "c-1", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List_Empty(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM contacts").
		WillReturnRows(pgxmock.NewRows(contactColumns()))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_GetByID_Success(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	c := sampleContact()
	last := c.CreatedAt.Add(-24 * time.Hour)
	c.LastContacted = &last

	mock.ExpectQuery("SELECT .+ FROM contacts WHERE id =").
		WithArgs(c.ID).
		WillReturnRows(contactRow(pgxmock.NewRows(contactColumns()), c))

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Status, got.Status)
	require.NotNil(t, got.LastContacted)
	assert.True(t, got.LastContacted.Equal(last))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM contacts WHERE id =").
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Update_SetsUpdatedAt(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	c := sampleContact()
	before := c.UpdatedAt

	mock.ExpectExec("UPDATE contacts").
		WithArgs(c.Name, c.Email, c.Phone, c.Company, c.Status, c.Notes, c.LastContacted, pgxmock.AnyArg(), c.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, c.UpdatedAt.After(before) || c.UpdatedAt.Equal(before))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Update_NotFound(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	c := sampleContact()
	c.ID = "missing-id"

	mock.ExpectExec("UPDATE contacts").
		WithArgs(c.Name, c.Email, c.Phone, c.Company, c.Status, c.Notes, c.LastContacted, pgxmock.AnyArg(), c.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newContactTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM contacts WHERE id =").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
