package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	salesRecordsTable = "sales_records sr"
)

type SalesRepository interface {
	FetchByYear(year int) ([]*domain.SalesRecord, error)
	FetchByDateRange(startDate, endDate time.Time) ([]*domain.SalesRecord, error)
}

type salesRepository struct {
	conn postgres.Queryer
}

func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// FetchByYear busca todos os lançamentos de vendas de um ano, ordenados por data.
// Um ano sem dados retorna uma lista vazia, nunca um erro
func (r *salesRepository) FetchByYear(year int) ([]*domain.SalesRecord, error) {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	endOfYear := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return r.FetchByDateRange(startOfYear, endOfYear)
}

func (r *salesRepository) FetchByDateRange(startDate, endDate time.Time) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("sr.id, sr.date, sr.store_sales, sr.actual_sales, sr.customer_count, sr.created_at, sr.updated_at").
		From(salesRecordsTable).
		Where(squirrel.GtOrEq{"sr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.date": endDate.Format(time.DateOnly)}).
		OrderBy("sr.date ASC").
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

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de vendas: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *salesRepository) scanRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var customerCount sql.NullInt64

	err := rows.Scan(
		&record.ID,
		&record.Date,
		&record.StoreSales,
		&record.ActualSales,
		&customerCount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Contagens ausentes ou corrompidas entram como zero
	record.CustomerCount = utils.SanitizeCount(customerCount.Valid, customerCount.Int64)

	return record, nil
}
