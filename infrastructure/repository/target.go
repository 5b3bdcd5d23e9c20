package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesTargetsTable = "sales_targets st"
)

type TargetRepository interface {
	FetchByYear(year int) ([]*domain.TargetRecord, error)
	FetchByMonth(year, month int) ([]*domain.TargetRecord, error)
	SaveOrUpdate(target *domain.TargetRecord) error
}

type targetRepository struct {
	conn postgres.Queryer
}

func NewTargetRepository(conn postgres.Queryer) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) FetchByYear(year int) ([]*domain.TargetRecord, error) {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	endOfYear := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return r.fetchByDateRange(startOfYear, endOfYear)
}

func (r *targetRepository) FetchByMonth(year, month int) ([]*domain.TargetRecord, error) {
	startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, -1)

	return r.fetchByDateRange(startOfMonth, endOfMonth)
}

func (r *targetRepository) fetchByDateRange(startDate, endDate time.Time) ([]*domain.TargetRecord, error) {
	query, args, err := squirrel.
		Select("st.id, st.date, st.target_sales, st.created_at, st.updated_at").
		From(salesTargetsTable).
		Where(squirrel.GtOrEq{"st.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"st.date": endDate.Format(time.DateOnly)}).
		OrderBy("st.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.TargetRecord, 0)
	for rows.Next() {
		target := &domain.TargetRecord{}
		err := rows.Scan(
			&target.ID,
			&target.Date,
			&target.TargetSales,
			&target.CreatedAt,
			&target.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta diária: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

// SaveOrUpdate grava a meta de um dia. A última escrita para uma mesma data
// sempre vence (ON CONFLICT por data)
func (r *targetRepository) SaveOrUpdate(target *domain.TargetRecord) error {
	query := squirrel.StatementBuilder.
		Insert("sales_targets").
		Columns("date", "target_sales").
		Values(
			target.Date.Format(time.DateOnly),
			target.TargetSales,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				target_sales = EXCLUDED.target_sales,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
