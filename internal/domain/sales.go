package domain

import "time"

// SalesRecord representa um lançamento diário de vendas da loja.
// Um mesmo dia pode ter mais de um registro (correções, lançamentos parciais)
type SalesRecord struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	StoreSales    float64   `json:"store_sales"`
	ActualSales   float64   `json:"actual_sales"`
	CustomerCount int       `json:"customer_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DailySummary é o agregado por dia calculado a cada consulta, nunca persistido
type DailySummary struct {
	Date               time.Time `json:"date"`
	StoreSalesTotal    float64   `json:"store_sales_total"`
	ActualSalesTotal   float64   `json:"actual_sales_total"`
	CustomerCountTotal int       `json:"customer_count_total"`
	UnitPrice          float64   `json:"unit_price"`
}
