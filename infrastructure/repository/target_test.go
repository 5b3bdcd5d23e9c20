package repository

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func targetColumns() []string {
	return []string{"id", "date", "target_sales", "created_at", "updated_at"}
}

func TestTargetRepository_FetchByMonth(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTargetRepository(conn)

	now := time.Now()

	t.Run("Mês com metas configuradas", func(t *testing.T) {
		rows := sqlmock.NewRows(targetColumns()).
			AddRow(1, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), 2000.0, now, now).
			AddRow(2, time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), 1000.0, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_targets st WHERE st.date >= $1 AND st.date <= $2 ORDER BY st.date ASC")).
			WithArgs("2025-02-01", "2025-02-28").
			WillReturnRows(rows)

		targets, err := repo.FetchByMonth(2025, 2)
		require.NoError(t, err)
		require.Len(t, targets, 2)
		assert.Equal(t, 2000.0, targets[0].TargetSales)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Mês sem metas - lista vazia", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sales_targets st")).
			WithArgs("2025-09-01", "2025-09-30").
			WillReturnRows(sqlmock.NewRows(targetColumns()))

		targets, err := repo.FetchByMonth(2025, 9)
		require.NoError(t, err)
		assert.Empty(t, targets)
	})
}

func TestTargetRepository_FetchByYear(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTargetRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales_targets st")).
		WithArgs("2025-01-01", "2025-12-31").
		WillReturnRows(sqlmock.NewRows(targetColumns()))

	_, err := repo.FetchByYear(2025)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTargetRepository_SaveOrUpdate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTargetRepository(conn)

	t.Run("Upsert por data - a última escrita vence", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_targets (date,target_sales) VALUES ($1,$2)")).
			WithArgs("2025-02-14", 3500.0).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveOrUpdate(&domain.TargetRecord{
			Date:        time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC),
			TargetSales: 3500,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_targets")).
			WillReturnError(fmt.Errorf("conexão recusada"))

		err := repo.SaveOrUpdate(&domain.TargetRecord{
			Date:        time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
			TargetSales: 1000,
		})
		assert.Error(t, err)
	})
}
