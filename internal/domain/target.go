package domain

import "time"

// TargetRecord representa a meta de venda de um único dia.
// Existe no máximo um registro por data (semântica de upsert)
type TargetRecord struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	TargetSales float64   `json:"target_sales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MinimumTargetRecord representa a meta mínima mensal usada no cálculo de poupança
type MinimumTargetRecord struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"` // 1 a 12
	MinSales  float64   `json:"min_sales"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CalendarDay é uma célula da grade mensal de metas exibida no painel
type CalendarDay struct {
	Date        time.Time `json:"date"`
	TargetSales *float64  `json:"target_sales"` // nil quando o dia não tem meta configurada
	Holiday     bool      `json:"holiday"`      // fim de semana ou feriado nacional
}

// MonthTargetsView agrupa a grade de metas de um mês e o total configurado
type MonthTargetsView struct {
	Year       int            `json:"year"`
	Month      int            `json:"month"`
	Days       []*CalendarDay `json:"days"`
	MonthTotal float64        `json:"month_total"`
}

// MinimumTargetsView lista as metas mínimas configuradas de um ano
type MinimumTargetsView struct {
	Year     int                    `json:"year"`
	Targets  []*MinimumTargetRecord `json:"targets"`
	MinTotal float64                `json:"min_total"`
}
