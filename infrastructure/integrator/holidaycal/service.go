package holidaycal

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/holidaycal/holidayclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// HolidayCalendar classifica datas em dia útil ou fim de semana/feriado
type HolidayCalendar interface {
	IsWeekendOrHoliday(date time.Time) bool
	RefreshYear(year int) error
}

type Service struct {
	cfg    *config.Config
	Client holidayclient.Client

	mu             sync.RWMutex
	holidaysByYear map[int]holidayclient.HolidaysResponse
}

func New(cfg *config.Config, client holidayclient.Client) *Service {
	return &Service{
		cfg:            cfg,
		Client:         client,
		holidaysByYear: make(map[int]holidayclient.HolidaysResponse),
	}
}

// IsWeekendOrHoliday retorna verdadeiro para sábados, domingos e feriados
// nacionais. Quando a tabela de feriados do ano não pôde ser carregada, a
// classificação degrada para apenas fins de semana
func (s *Service) IsWeekendOrHoliday(date time.Time) bool {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return true
	}

	holidays := s.holidaysForYear(date.Year())
	if holidays == nil {
		return false
	}

	_, isHoliday := holidays[date.Format(time.DateOnly)]
	return isHoliday
}

// RefreshYear recarrega a tabela de feriados de um ano a partir da API
func (s *Service) RefreshYear(year int) error {
	holidays, err := s.Client.GetHolidaysByYear(year)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.holidaysByYear[year] = holidays
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"year":     year,
		"holidays": len(holidays),
	}).Info("Tabela de feriados atualizada")

	return nil
}

// holidaysForYear busca a tabela do cache, carregando sob demanda na
// primeira consulta de cada ano
func (s *Service) holidaysForYear(year int) holidayclient.HolidaysResponse {
	s.mu.RLock()
	holidays, ok := s.holidaysByYear[year]
	s.mu.RUnlock()

	if ok {
		return holidays
	}

	if err := s.RefreshYear(year); err != nil {
		logrus.WithError(err).WithField("year", year).
			Warn("Erro ao carregar feriados; classificando apenas fins de semana")

		// Guarda uma tabela vazia para não repetir a chamada a cada consulta;
		// o agendador de atualização tentará novamente
		s.mu.Lock()
		s.holidaysByYear[year] = holidayclient.HolidaysResponse{}
		s.mu.Unlock()

		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.holidaysByYear[year]
}
