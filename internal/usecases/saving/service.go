package saving

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// SavingsCalculator define as operações da meta mínima e da poupança mensal
type SavingsCalculator interface {
	// GetSavingsReport calcula a poupança acumulada dos meses já encerrados
	GetSavingsReport(year int) (*domain.SavingsReport, error)

	// SetMinimumTarget grava a meta mínima de um mês
	SetMinimumTarget(year, month int, amount float64) error

	// ListMinimumTargets lista as metas mínimas configuradas do ano
	ListMinimumTargets(year int) (*domain.MinimumTargetsView, error)
}

// Service implementa a interface SavingsCalculator
type Service struct {
	salesRepo     repository.SalesRepository
	minTargetRepo repository.MinimumTargetRepository
	now           func() time.Time
}

// NewService cria uma nova instância do serviço de poupança
func NewService(
	salesRepo repository.SalesRepository,
	minTargetRepo repository.MinimumTargetRepository,
) SavingsCalculator {
	return &Service{
		salesRepo:     salesRepo,
		minTargetRepo: minTargetRepo,
		now:           time.Now,
	}
}

// GetSavingsReport calcula, para cada mês com meta mínima configurada,
// a poupança (vendas reais do mês menos a meta mínima). Um mês só entra
// no relatório quando o seu último dia já chegou: meses em andamento
// ficariam com uma poupança enganosa. Meses com meta mínima mas sem
// vendas registradas entram com vendas zero
func (s *Service) GetSavingsReport(year int) (*domain.SavingsReport, error) {
	report := &domain.SavingsReport{
		Year: year,
		Rows: make([]*domain.SavingsRow, 0),
	}

	minTargets, err := s.minTargetRepo.ListByYear(year)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas mínimas: %w", err)
	}

	if len(minTargets) == 0 {
		return report, nil
	}

	actualByMonth, err := s.sumActualSalesByMonth(year)
	if err != nil {
		return nil, err
	}

	today := s.now()

	for _, minTarget := range minTargets {
		lastDay := utils.LastDayOfMonth(year, time.Month(minTarget.Month))
		monthClose := time.Date(year, time.Month(minTarget.Month), lastDay, 0, 0, 0, 0, time.UTC)

		if today.Before(monthClose) {
			continue
		}

		actualTotal := actualByMonth[minTarget.Month]
		savings := actualTotal - minTarget.MinSales

		report.Rows = append(report.Rows, &domain.SavingsRow{
			Month:       minTarget.Month,
			ActualTotal: actualTotal,
			MinSales:    minTarget.MinSales,
			Savings:     savings,
		})
		report.TotalSavings += savings
	}

	logrus.WithFields(logrus.Fields{
		"year":          year,
		"closed_months": len(report.Rows),
		"total_savings": report.TotalSavings,
	}).Debug("Relatório de poupança calculado")

	return report, nil
}

func (s *Service) SetMinimumTarget(year, month int, amount float64) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("mês inválido: %d", month)
	}

	if amount < 0 {
		return fmt.Errorf("meta mínima não pode ser negativa")
	}

	record := &domain.MinimumTargetRecord{
		Year:     year,
		Month:    month,
		MinSales: amount,
	}

	if err := s.minTargetRepo.SaveOrUpdate(record); err != nil {
		return fmt.Errorf("erro ao gravar meta mínima: %w", err)
	}

	return nil
}

func (s *Service) ListMinimumTargets(year int) (*domain.MinimumTargetsView, error) {
	minTargets, err := s.minTargetRepo.ListByYear(year)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas mínimas: %w", err)
	}

	view := &domain.MinimumTargetsView{
		Year:    year,
		Targets: minTargets,
	}

	for _, minTarget := range minTargets {
		view.MinTotal += minTarget.MinSales
	}

	return view, nil
}

// sumActualSalesByMonth agrega as vendas reais do ano por mês do calendário
func (s *Service) sumActualSalesByMonth(year int) (map[int]float64, error) {
	sales, err := s.salesRepo.FetchByYear(year)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do ano %d: %w", year, err)
	}

	actualByMonth := make(map[int]float64)
	for _, record := range sales {
		actualByMonth[int(record.Date.Month())] += record.ActualSales
	}

	return actualByMonth, nil
}
