package targeting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calmocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/holidaycal/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBulkAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockCalendar := calmocks.NewMockHolidayCalendar(ctrl)

	service := NewService(mockTargetRepo, mockCalendar)

	t.Run("Fevereiro de ano não bissexto - grava exatamente 28 dias", func(t *testing.T) {
		saved := make(map[string]float64)

		mockCalendar.EXPECT().
			IsWeekendOrHoliday(gomock.Any()).
			DoAndReturn(func(date time.Time) bool {
				// Feriado nacional em 11/02, além dos fins de semana
				if date.Month() == time.February && date.Day() == 11 {
					return true
				}
				return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
			}).
			Times(28)

		mockTargetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(target *domain.TargetRecord) error {
				saved[target.Date.Format(time.DateOnly)] = target.TargetSales
				return nil
			}).
			Times(28)

		count, err := service.BulkAssign(2025, 2, 1000, 2000)
		require.NoError(t, err)
		assert.Equal(t, 28, count)
		assert.Len(t, saved, 28)

		// Dia útil comum recebe o valor de dia útil
		assert.Equal(t, 1000.0, saved["2025-02-03"])
		// Sábado recebe o valor de fim de semana
		assert.Equal(t, 2000.0, saved["2025-02-01"])
		// Feriado em dia de semana recebe o valor de feriado
		assert.Equal(t, 2000.0, saved["2025-02-11"])
	})

	t.Run("Atribuição sobrescreve o mês inteiro mesmo com metas existentes", func(t *testing.T) {
		mockCalendar.EXPECT().
			IsWeekendOrHoliday(gomock.Any()).
			Return(false).
			Times(30)

		mockTargetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil).
			Times(30)

		count, err := service.BulkAssign(2025, 4, 1500, 2500)
		require.NoError(t, err)
		assert.Equal(t, 30, count)
	})

	t.Run("Mês inválido - erro sem tocar o repositório", func(t *testing.T) {
		_, err := service.BulkAssign(2025, 0, 1000, 2000)
		assert.Error(t, err)
	})

	t.Run("Valor negativo - erro sem tocar o repositório", func(t *testing.T) {
		_, err := service.BulkAssign(2025, 2, -1, 2000)
		assert.Error(t, err)
	})

	t.Run("Falha do repositório interrompe e retorna os dias já gravados", func(t *testing.T) {
		mockCalendar.EXPECT().
			IsWeekendOrHoliday(gomock.Any()).
			Return(false).
			Times(3)

		gomock.InOrder(
			mockTargetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
			mockTargetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
			mockTargetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(fmt.Errorf("conexão recusada")),
		)

		count, err := service.BulkAssign(2025, 6, 1000, 2000)
		assert.Error(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestSetDayTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockCalendar := calmocks.NewMockHolidayCalendar(ctrl)

	service := NewService(mockTargetRepo, mockCalendar)

	t.Run("Grava a meta de um único dia", func(t *testing.T) {
		day := time.Date(2025, time.February, 14, 15, 30, 0, 0, time.UTC)

		mockTargetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(target *domain.TargetRecord) error {
				// A hora é normalizada para o início do dia
				assert.Equal(t, time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC), target.Date)
				assert.Equal(t, 3500.0, target.TargetSales)
				return nil
			})

		err := service.SetDayTarget(day, 3500)
		assert.NoError(t, err)
	})

	t.Run("Valor negativo - erro", func(t *testing.T) {
		err := service.SetDayTarget(time.Now(), -10)
		assert.Error(t, err)
	})
}

func TestGetMonthTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockCalendar := calmocks.NewMockHolidayCalendar(ctrl)

	service := NewService(mockTargetRepo, mockCalendar)

	t.Run("Grade completa do mês com dias sem meta", func(t *testing.T) {
		mockTargetRepo.EXPECT().
			FetchByMonth(2025, 2).
			Return([]*domain.TargetRecord{
				{Date: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), TargetSales: 2000},
				{Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), TargetSales: 1000},
			}, nil)

		mockCalendar.EXPECT().
			IsWeekendOrHoliday(gomock.Any()).
			DoAndReturn(func(date time.Time) bool {
				return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
			}).
			Times(28)

		view, err := service.GetMonthTargets(2025, 2)
		require.NoError(t, err)
		require.Len(t, view.Days, 28)

		// 01/02/2025 é sábado
		assert.True(t, view.Days[0].Holiday)
		require.NotNil(t, view.Days[0].TargetSales)
		assert.Equal(t, 2000.0, *view.Days[0].TargetSales)

		// 02/02 não tem meta configurada
		assert.Nil(t, view.Days[1].TargetSales)

		assert.Equal(t, 3000.0, view.MonthTotal)
	})

	t.Run("Mês inválido - erro", func(t *testing.T) {
		_, err := service.GetMonthTargets(2025, 13)
		assert.Error(t, err)
	})
}
