package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	columns := []string{"id", "vendor_id", "name", "duration_minutes", "price", "is_active"}

	t.Run("found", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta("SELECT id, vendor_id, name, duration_minutes, price, is_active FROM services WHERE id = $1")).
			WithArgs("s-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("s-1", "v-1", "Haircut", 45, 30.5, false))

		got, err := repo.GetByID(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, 45, got.DurationMinutes)
		assert.False(t, got.IsActive)
		assert.True(t, got.BelongsTo("v-1"))
	})

	t.Run("not found", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta("FROM services")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(context.Background(), "missing")
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta("FROM services")).
			WithArgs("s-1").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByID(context.Background(), "s-1")
		require.ErrorIs(t, err, ErrScanRow)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}
