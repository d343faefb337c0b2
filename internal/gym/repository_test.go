package gym

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gymCols = []string{
	"id", "name", "address", "phone", "email", "upi_id",
	"monthly_fee_cents", "is_active", "created_at",
}

func TestGetGymByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT .* FROM gyms\s+WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(gymCols).
			AddRow(1, "Iron Temple", "12 Main St", "555-0101", "iron@example.com", "iron@upi", 4999, true, time.Now()))

	gym, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, gym.ID)
	assert.Equal(t, "Iron Temple", gym.Name)
	assert.Equal(t, int64(4999), gym.MonthlyFeeCents)
	assert.True(t, gym.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllGyms(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT .* FROM gyms\s+ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(gymCols).
			AddRow(2, "Flex Factory", "34 Side St", "555-0102", "flex@example.com", "", 3999, false, time.Now()).
			AddRow(1, "Iron Temple", "12 Main St", "555-0101", "iron@example.com", "iron@upi", 4999, true, time.Now().Add(-time.Hour)))

	gyms, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
	assert.Equal(t, 2, gyms[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`UPDATE gyms\s+SET name = \$2.*RETURNING .*`).
		WithArgs(1, "Iron Temple", "12 Main St", "555-0101", "iron@example.com", "iron@upi", int64(5999)).
		WillReturnRows(sqlmock.NewRows(gymCols).
			AddRow(1, "Iron Temple", "12 Main St", "555-0101", "iron@example.com", "iron@upi", 5999, true, time.Now()))

	gym, err := repo.UpdateSettings(context.Background(), 1, UpdateSettingsRequest{
		Name:            "Iron Temple",
		Address:         "12 Main St",
		Phone:           "555-0101",
		Email:           "iron@example.com",
		UPIID:           "iron@upi",
		MonthlyFeeCents: 5999,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5999), gym.MonthlyFeeCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`UPDATE gyms\s+SET is_active = NOT is_active.*`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(gymCols).
			AddRow(1, "Iron Temple", "12 Main St", "555-0101", "iron@example.com", "iron@upi", 4999, false, time.Now()))

	gym, err := repo.ToggleActive(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, gym.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
