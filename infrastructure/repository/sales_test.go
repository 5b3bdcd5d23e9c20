package repository

import (
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func salesColumns() []string {
	return []string{"id", "date", "store_sales", "actual_sales", "customer_count", "created_at", "updated_at"}
}

func TestSalesRepository_FetchByYear(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRepository(conn)

	now := time.Now()

	t.Run("Ano com lançamentos - retorna registros ordenados", func(t *testing.T) {
		rows := sqlmock.NewRows(salesColumns()).
			AddRow(1, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), 1500.0, 1480.0, 12, now, now).
			AddRow(2, time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC), 900.0, 890.0, 8, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr WHERE sr.date >= $1 AND sr.date <= $2 ORDER BY sr.date ASC")).
			WithArgs("2025-01-01", "2025-12-31").
			WillReturnRows(rows)

		records, err := repo.FetchByYear(2025)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 1500.0, records[0].StoreSales)
		assert.Equal(t, 12, records[0].CustomerCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Vários lançamentos na mesma data são todos preservados", func(t *testing.T) {
		// Correções e entradas parciais geram mais de uma linha por data
		rows := sqlmock.NewRows(salesColumns()).
			AddRow(4, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), 1000.0, 980.0, 10, now, now).
			AddRow(5, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), 200.0, 200.0, 2, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr")).
			WithArgs("2025-01-01", "2025-12-31").
			WillReturnRows(rows)

		records, err := repo.FetchByYear(2025)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, records[0].Date, records[1].Date)
		assert.Equal(t, 200.0, records[1].StoreSales)
	})

	t.Run("Contagem de clientes NULL entra como zero", func(t *testing.T) {
		rows := sqlmock.NewRows(salesColumns()).
			AddRow(3, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 700.0, 700.0, nil, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr")).
			WithArgs("2025-01-01", "2025-12-31").
			WillReturnRows(rows)

		records, err := repo.FetchByYear(2025)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].CustomerCount)
	})

	t.Run("Ano sem dados - lista vazia sem erro", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr")).
			WithArgs("2024-01-01", "2024-12-31").
			WillReturnRows(sqlmock.NewRows(salesColumns()))

		records, err := repo.FetchByYear(2024)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr")).
			WillReturnError(fmt.Errorf("conexão recusada"))

		_, err := repo.FetchByYear(2025)
		assert.Error(t, err)
	})
}

func TestSalesRepository_FetchByDateRange(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRepository(conn)

	now := time.Now()

	rows := sqlmock.NewRows(salesColumns()).
		AddRow(1, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 500.0, 500.0, 5, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr WHERE sr.date >= $1 AND sr.date <= $2")).
		WithArgs("2024-12-30", "2025-01-02").
		WillReturnRows(rows)

	records, err := repo.FetchByDateRange(
		time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_ScanError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRepository(conn)

	// Data inválida no lugar de store_sales força erro de scan
	rows := sqlmock.NewRows(salesColumns()).
		AddRow(1, time.Now(), "não numérico", 100.0, sql.NullInt64{}, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales_records sr")).
		WillReturnRows(rows)

	_, err := repo.FetchByYear(2025)
	assert.Error(t, err)
}
