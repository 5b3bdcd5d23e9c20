package reporting

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter define a interface do motor de agregação e KPIs do painel
type Reporter interface {
	// GetDashboard calcula o KPI anual da loja para o ano selecionado
	GetDashboard(year int) (*domain.DashboardReport, error)

	// GetMonthReport calcula o relatório de um mês do ano selecionado
	GetMonthReport(year, month int) (*domain.PeriodReport, error)

	// GetRangeReport calcula o relatório de um intervalo arbitrário,
	// que pode atravessar a virada de ano
	GetRangeReport(startDate, endDate time.Time) (*domain.PeriodReport, error)
}
