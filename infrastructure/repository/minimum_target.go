package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	minimumTargetsTable = "minimum_targets mt"
)

type MinimumTargetRepository interface {
	ListByYear(year int) ([]*domain.MinimumTargetRecord, error)
	SaveOrUpdate(record *domain.MinimumTargetRecord) error
}

type minimumTargetRepository struct {
	conn postgres.Queryer
}

func NewMinimumTargetRepository(conn postgres.Queryer) MinimumTargetRepository {
	return &minimumTargetRepository{
		conn: conn,
	}
}

func (r *minimumTargetRepository) ListByYear(year int) ([]*domain.MinimumTargetRecord, error) {
	query, args, err := squirrel.
		Select("mt.id, mt.year, mt.month, mt.min_sales, mt.created_at, mt.updated_at").
		From(minimumTargetsTable).
		Where(squirrel.Eq{"mt.year": year}).
		OrderBy("mt.month ASC").
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

	records := make([]*domain.MinimumTargetRecord, 0)
	for rows.Next() {
		record := &domain.MinimumTargetRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Year,
			&record.Month,
			&record.MinSales,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta mínima: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SaveOrUpdate grava a meta mínima de um mês (no máximo uma por ano/mês)
func (r *minimumTargetRepository) SaveOrUpdate(record *domain.MinimumTargetRecord) error {
	query := squirrel.StatementBuilder.
		Insert("minimum_targets").
		Columns("year", "month", "min_sales").
		Values(
			record.Year,
			record.Month,
			record.MinSales,
		).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				min_sales = EXCLUDED.min_sales,
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
