package targeting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/holidaycal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// TargetSetter define as operações de configuração de metas diárias
type TargetSetter interface {
	// BulkAssign grava a meta de todos os dias do mês, aplicando o valor
	// de dia útil ou de fim de semana/feriado conforme o calendário.
	// Metas já existentes no mês são sobrescritas
	BulkAssign(year, month int, weekdayAmount, holidayAmount float64) (int, error)

	// SetDayTarget grava a meta de um único dia (a última escrita vence)
	SetDayTarget(date time.Time, amount float64) error

	// GetMonthTargets monta a grade mensal de metas exibida no painel
	GetMonthTargets(year, month int) (*domain.MonthTargetsView, error)
}

// Service implementa a interface TargetSetter
type Service struct {
	targetRepo repository.TargetRepository
	calendar   holidaycal.HolidayCalendar
}

// NewService cria uma nova instância do serviço de metas
func NewService(
	targetRepo repository.TargetRepository,
	calendar holidaycal.HolidayCalendar,
) TargetSetter {
	return &Service{
		targetRepo: targetRepo,
		calendar:   calendar,
	}
}

func (s *Service) BulkAssign(year, month int, weekdayAmount, holidayAmount float64) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("mês inválido: %d", month)
	}

	if weekdayAmount < 0 || holidayAmount < 0 {
		return 0, fmt.Errorf("valores de meta não podem ser negativos")
	}

	lastDay := utils.LastDayOfMonth(year, time.Month(month))

	assigned := 0
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		amount := weekdayAmount
		if s.calendar.IsWeekendOrHoliday(date) {
			amount = holidayAmount
		}

		target := &domain.TargetRecord{
			Date:        date,
			TargetSales: amount,
		}

		if err := s.targetRepo.SaveOrUpdate(target); err != nil {
			return assigned, fmt.Errorf("erro ao gravar meta do dia %s: %w", date.Format(time.DateOnly), err)
		}

		assigned++
	}

	logrus.WithFields(logrus.Fields{
		"year":           year,
		"month":          month,
		"days_assigned":  assigned,
		"weekday_amount": weekdayAmount,
		"holiday_amount": holidayAmount,
	}).Info("Registro mensal de metas concluído")

	return assigned, nil
}

func (s *Service) SetDayTarget(date time.Time, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("valor de meta não pode ser negativo")
	}

	target := &domain.TargetRecord{
		Date:        utils.StartOfDay(date),
		TargetSales: amount,
	}

	if err := s.targetRepo.SaveOrUpdate(target); err != nil {
		return fmt.Errorf("erro ao gravar meta do dia %s: %w", date.Format(time.DateOnly), err)
	}

	return nil
}

func (s *Service) GetMonthTargets(year, month int) (*domain.MonthTargetsView, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mês inválido: %d", month)
	}

	targets, err := s.targetRepo.FetchByMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas do mês: %w", err)
	}

	targetByDate := make(map[string]float64, len(targets))
	for _, target := range targets {
		targetByDate[target.Date.Format(time.DateOnly)] = target.TargetSales
	}

	view := &domain.MonthTargetsView{
		Year:  year,
		Month: month,
		Days:  make([]*domain.CalendarDay, 0, 31),
	}

	lastDay := utils.LastDayOfMonth(year, time.Month(month))
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		calendarDay := &domain.CalendarDay{
			Date:    date,
			Holiday: s.calendar.IsWeekendOrHoliday(date),
		}

		if amount, ok := targetByDate[date.Format(time.DateOnly)]; ok {
			calendarDay.TargetSales = &amount
			view.MonthTotal += amount
		}

		view.Days = append(view.Days, calendarDay)
	}

	return view, nil
}
