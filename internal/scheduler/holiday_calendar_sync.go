package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/holidaycal"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// HolidayCalendarSyncConfig representa a configuração do agendador do calendário de feriados
type HolidayCalendarSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// HolidayCalendarSyncService gerencia o agendamento e execução da atualização do calendário de feriados
type HolidayCalendarSyncService struct {
	scheduler           *gocron.Scheduler
	config              HolidayCalendarSyncConfig
	appConfig           *config.Config
	calendar            holidaycal.HolidayCalendar
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewHolidayCalendarSyncService cria uma nova instância do serviço de sincronização do calendário
func NewHolidayCalendarSyncService(
	calendar holidaycal.HolidayCalendar,
	appConfig *config.Config,
) *HolidayCalendarSyncService {
	syncConfig := HolidayCalendarSyncConfig{
		CronSchedule: appConfig.HolidayCalSync.CronSchedule,
		SyncEnabled:  appConfig.HolidayCalSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do calendário de feriados carregada")

	return &HolidayCalendarSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		calendar:    calendar,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *HolidayCalendarSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do calendário de feriados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do calendário de feriados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncHolidayCalendar()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do calendário de feriados: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do calendário de feriados")
		s.scheduler.Stop()
	}()

	// Carga inicial do ano corrente e do seguinte
	go s.syncHolidayCalendar()

	return nil
}

// syncHolidayCalendar atualiza o cache de feriados do ano corrente e do próximo
func (s *HolidayCalendarSyncService) syncHolidayCalendar() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do calendário de feriados já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	currentYear := time.Now().Year()
	years := []int{currentYear, currentYear + 1}

	logrus.WithField("years", years).Info("Iniciando sincronização do calendário de feriados")

	for _, year := range years {
		if err := s.calendar.RefreshYear(year); err != nil {
			logrus.WithError(err).WithField("year", year).Error("Erro ao atualizar calendário de feriados")
			continue
		}
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Sincronização do calendário de feriados concluída")
}

// TriggerManualSync inicia manualmente uma sincronização do calendário de feriados
func (s *HolidayCalendarSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do calendário de feriados já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do calendário de feriados")
	go s.syncHolidayCalendar()
}

// GetStatus retorna o status atual da sincronização
func (s *HolidayCalendarSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
