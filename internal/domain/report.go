package domain

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ReportFilters delimita o período de um relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// KPI resume o desempenho de um período contra a meta configurada
type KPI struct {
	AchievementRate  *float64 `json:"achievement_rate,omitempty"` // percentual, duas casas decimais
	TargetTotal      float64  `json:"target_total"`
	ActualTotal      float64  `json:"actual_total"`
	TargetConfigured bool     `json:"target_configured"`
}

// BuildKPI calcula a taxa de atingimento de um período.
// Quando não há meta configurada (target <= 0) a taxa fica ausente,
// nunca NaN ou infinito
func BuildKPI(actualTotal, targetTotal float64) *KPI {
	kpi := &KPI{
		TargetTotal: targetTotal,
		ActualTotal: actualTotal,
	}

	if targetTotal > 0 {
		rate := utils.RoundWithTwoDecimalPlace(actualTotal * 100 / targetTotal)
		kpi.AchievementRate = &rate
		kpi.TargetConfigured = true
	}

	return kpi
}

// PeriodReport é o relatório de um mês do ano selecionado ou de um
// intervalo arbitrário escolhido pelo usuário
type PeriodReport struct {
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	HasData   bool            `json:"has_data"`
	KPI       *KPI            `json:"kpi,omitempty"`
	Summaries []*DailySummary `json:"summaries,omitempty"`
}

// DashboardReport é a visão anual exibida no topo do painel
type DashboardReport struct {
	StoreName  string     `json:"store_name"`
	Year       int        `json:"year"`
	HasData    bool       `json:"has_data"`
	CutoffDate *time.Time `json:"cutoff_date,omitempty"` // última data com dados no ano
	YearKPI    *KPI       `json:"year_kpi,omitempty"`
}

// SavingsRow é a linha de poupança de um mês já encerrado
type SavingsRow struct {
	Month       int     `json:"month"`
	ActualTotal float64 `json:"actual_total"`
	MinSales    float64 `json:"min_sales"`
	Savings     float64 `json:"savings"`
}

// SavingsReport acumula a poupança dos meses encerrados do ano
type SavingsReport struct {
	Year         int           `json:"year"`
	Rows         []*SavingsRow `json:"rows"`
	TotalSavings float64       `json:"total_savings"`
}
