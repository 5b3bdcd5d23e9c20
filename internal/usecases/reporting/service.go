package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Service implementa a interface Reporter
type Service struct {
	cfg        *config.Config
	salesRepo  repository.SalesRepository
	targetRepo repository.TargetRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	cfg *config.Config,
	salesRepo repository.SalesRepository,
	targetRepo repository.TargetRepository,
) Reporter {
	return &Service{
		cfg:        cfg,
		salesRepo:  salesRepo,
		targetRepo: targetRepo,
	}
}

// GetDashboard calcula o KPI anual contra as metas configuradas.
// O período considerado vai de 1º de janeiro até a última data com dados
// no ano (instante de corte), para que um ano em andamento não conte os
// dias futuros como ausência de vendas
func (s *Service) GetDashboard(year int) (*domain.DashboardReport, error) {
	report := &domain.DashboardReport{
		StoreName: s.cfg.Store.Name,
		Year:      year,
	}

	sales, err := s.fetchSalesMultiYear([]int{year})
	if err != nil {
		return nil, err
	}

	summaries := BuildDailySummary(sales)
	if len(summaries) == 0 {
		return report, nil
	}

	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	endOfYear := utils.EndOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))

	cutoff := utils.EndOfDay(summaries[len(summaries)-1].Date)
	if endOfYear.Before(cutoff) {
		cutoff = endOfYear
	}

	actualTotal := sumActualSales(summaries, startOfYear, cutoff)

	targets, err := s.fetchTargetsMultiYear([]int{year})
	if err != nil {
		return nil, err
	}
	targetTotal := sumTargetSales(targets, startOfYear, cutoff)

	report.HasData = true
	report.CutoffDate = &cutoff
	report.YearKPI = domain.BuildKPI(actualTotal, targetTotal)

	logrus.WithFields(logrus.Fields{
		"year":         year,
		"cutoff":       cutoff.Format(time.DateOnly),
		"actual_total": actualTotal,
		"target_total": targetTotal,
	}).Debug("Dashboard anual calculado")

	return report, nil
}

// GetMonthReport calcula o relatório de um mês do ano selecionado.
// O fim do mês é limitado ao instante de corte do ano; um mês inteiramente
// futuro resulta em um relatório sem dados, não em erro
func (s *Service) GetMonthReport(year, month int) (*domain.PeriodReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mês inválido: %d", month)
	}

	startDate, endDate := utils.MonthBounds(year, time.Month(month))

	report := &domain.PeriodReport{
		StartDate: startDate,
		EndDate:   endDate,
	}

	sales, err := s.fetchSalesMultiYear([]int{year})
	if err != nil {
		return nil, err
	}

	yearSummary := BuildDailySummary(sales)
	if len(yearSummary) == 0 {
		return report, nil
	}

	cutoff := utils.EndOfDay(yearSummary[len(yearSummary)-1].Date)
	if cutoff.Before(endDate) {
		endDate = cutoff
		report.EndDate = endDate
	}

	if endDate.Before(startDate) {
		return report, nil
	}

	targets, err := s.fetchTargetsMultiYear([]int{year})
	if err != nil {
		return nil, err
	}

	return s.buildPeriodReport(report, sales, targets, startDate, endDate), nil
}

// GetRangeReport calcula o relatório de um intervalo arbitrário, buscando
// exatamente os anos tocados pelo intervalo
func (s *Service) GetRangeReport(startDate, endDate time.Time) (*domain.PeriodReport, error) {
	startDate = utils.StartOfDay(startDate)
	endDate = utils.EndOfDay(endDate)

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("a data final não pode ser anterior à data inicial")
	}

	years := utils.YearsBetween(startDate, endDate)

	sales, err := s.fetchSalesMultiYear(years)
	if err != nil {
		return nil, err
	}

	targets, err := s.fetchTargetsMultiYear(years)
	if err != nil {
		return nil, err
	}

	report := &domain.PeriodReport{
		StartDate: startDate,
		EndDate:   endDate,
	}

	return s.buildPeriodReport(report, sales, targets, startDate, endDate), nil
}

// buildPeriodReport filtra as vendas pelo período, agrega por dia e calcula o KPI
func (s *Service) buildPeriodReport(
	report *domain.PeriodReport,
	sales []*domain.SalesRecord,
	targets []*domain.TargetRecord,
	startDate, endDate time.Time,
) *domain.PeriodReport {
	periodSales := filterSalesByDateRange(sales, startDate, endDate)

	summaries := BuildDailySummary(periodSales)
	if len(summaries) == 0 {
		return report
	}

	actualTotal := 0.0
	for _, summary := range summaries {
		actualTotal += summary.ActualSalesTotal
	}

	targetTotal := sumTargetSales(targets, startDate, endDate)

	report.HasData = true
	report.Summaries = summaries
	report.KPI = domain.BuildKPI(actualTotal, targetTotal)

	return report
}

// fetchSalesMultiYear busca as vendas de cada ano separadamente e concatena
// os resultados em uma única série ordenada por data. Anos sem dados são
// apenas ignorados: ausência de dados é um estado normal, não um erro
func (s *Service) fetchSalesMultiYear(years []int) ([]*domain.SalesRecord, error) {
	records := make([]*domain.SalesRecord, 0)

	for _, year := range years {
		yearRecords, err := s.salesRepo.FetchByYear(year)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar vendas do ano %d: %w", year, err)
		}

		if len(yearRecords) == 0 {
			continue
		}

		records = append(records, yearRecords...)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

// fetchTargetsMultiYear busca as metas diárias de cada ano separadamente,
// com a mesma semântica de fetchSalesMultiYear
func (s *Service) fetchTargetsMultiYear(years []int) ([]*domain.TargetRecord, error) {
	records := make([]*domain.TargetRecord, 0)

	for _, year := range years {
		yearRecords, err := s.targetRepo.FetchByYear(year)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar metas do ano %d: %w", year, err)
		}

		if len(yearRecords) == 0 {
			continue
		}

		records = append(records, yearRecords...)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

// filterSalesByDateRange mantém apenas os registros dentro do intervalo
// fechado [startDate, endDate]
func filterSalesByDateRange(records []*domain.SalesRecord, startDate, endDate time.Time) []*domain.SalesRecord {
	filtered := make([]*domain.SalesRecord, 0, len(records))

	for _, record := range records {
		if record.Date.Before(startDate) || record.Date.After(endDate) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// BuildDailySummary agrega os lançamentos por data do calendário. Um mesmo
// dia pode ter vários lançamentos (correções, entradas parciais); o KPI
// precisa de exatamente um número por dia. Contagens negativas são
// saneadas para zero antes da soma e o preço médio tem guarda explícita
// contra divisão por zero
func BuildDailySummary(records []*domain.SalesRecord) []*domain.DailySummary {
	if len(records) == 0 {
		return []*domain.DailySummary{}
	}

	byDate := make(map[string]*domain.DailySummary)

	for _, record := range records {
		key := record.Date.Format(time.DateOnly)

		summary, exists := byDate[key]
		if !exists {
			summary = &domain.DailySummary{
				Date: utils.StartOfDay(record.Date),
			}
			byDate[key] = summary
		}

		summary.StoreSalesTotal += record.StoreSales
		summary.ActualSalesTotal += record.ActualSales

		if record.CustomerCount > 0 {
			summary.CustomerCountTotal += record.CustomerCount
		}
	}

	summaries := make([]*domain.DailySummary, 0, len(byDate))
	for _, summary := range byDate {
		if summary.CustomerCountTotal > 0 {
			summary.UnitPrice = summary.StoreSalesTotal / float64(summary.CustomerCountTotal)
		} else {
			summary.UnitPrice = 0
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})

	return summaries
}

// sumActualSales soma as vendas reais dos agregados dentro do intervalo
func sumActualSales(summaries []*domain.DailySummary, startDate, endDate time.Time) float64 {
	total := 0.0

	for _, summary := range summaries {
		if summary.Date.Before(startDate) || summary.Date.After(endDate) {
			continue
		}
		total += summary.ActualSalesTotal
	}

	return total
}

// sumTargetSales soma as metas diárias dentro do intervalo
func sumTargetSales(targets []*domain.TargetRecord, startDate, endDate time.Time) float64 {
	total := 0.0

	for _, target := range targets {
		if target.Date.Before(startDate) || target.Date.After(endDate) {
			continue
		}
		total += target.TargetSales
	}

	return total
}
