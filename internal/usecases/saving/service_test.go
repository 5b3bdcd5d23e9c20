package saving

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller, now time.Time) (*Service, *mocks.MockSalesRepository, *mocks.MockMinimumTargetRepository) {
	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockMinTargetRepo := mocks.NewMockMinimumTargetRepository(ctrl)

	service := &Service{
		salesRepo:     mockSalesRepo,
		minTargetRepo: mockMinTargetRepo,
		now:           func() time.Time { return now },
	}

	return service, mockSalesRepo, mockMinTargetRepo
}

func TestGetSavingsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Mês em andamento fica fora do relatório", func(t *testing.T) {
		// Hoje é 15 de março: janeiro e fevereiro encerrados, março não
		service, mockSalesRepo, mockMinTargetRepo := newTestService(ctrl, time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC))

		mockMinTargetRepo.EXPECT().ListByYear(2025).Return([]*domain.MinimumTargetRecord{
			{Year: 2025, Month: 1, MinSales: 100000},
			{Year: 2025, Month: 2, MinSales: 90000},
			{Year: 2025, Month: 3, MinSales: 95000},
		}, nil)

		mockSalesRepo.EXPECT().FetchByYear(2025).Return([]*domain.SalesRecord{
			{Date: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), ActualSales: 60000},
			{Date: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), ActualSales: 50000},
			{Date: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), ActualSales: 85000},
			{Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), ActualSales: 40000},
		}, nil)

		report, err := service.GetSavingsReport(2025)
		require.NoError(t, err)
		require.Len(t, report.Rows, 2)

		assert.Equal(t, 1, report.Rows[0].Month)
		assert.Equal(t, 110000.0, report.Rows[0].ActualTotal)
		assert.Equal(t, 10000.0, report.Rows[0].Savings)

		assert.Equal(t, 2, report.Rows[1].Month)
		assert.Equal(t, -5000.0, report.Rows[1].Savings)

		assert.Equal(t, 5000.0, report.TotalSavings)
	})

	t.Run("No último dia do mês o mês já conta como encerrado", func(t *testing.T) {
		service, mockSalesRepo, mockMinTargetRepo := newTestService(ctrl, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))

		mockMinTargetRepo.EXPECT().ListByYear(2025).Return([]*domain.MinimumTargetRecord{
			{Year: 2025, Month: 1, MinSales: 50000},
		}, nil)

		mockSalesRepo.EXPECT().FetchByYear(2025).Return([]*domain.SalesRecord{
			{Date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), ActualSales: 52000},
		}, nil)

		report, err := service.GetSavingsReport(2025)
		require.NoError(t, err)
		require.Len(t, report.Rows, 1)
		assert.Equal(t, 2000.0, report.Rows[0].Savings)
	})

	t.Run("Mês encerrado sem vendas registradas entra com vendas zero", func(t *testing.T) {
		service, mockSalesRepo, mockMinTargetRepo := newTestService(ctrl, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

		mockMinTargetRepo.EXPECT().ListByYear(2025).Return([]*domain.MinimumTargetRecord{
			{Year: 2025, Month: 4, MinSales: 80000},
		}, nil)

		mockSalesRepo.EXPECT().FetchByYear(2025).Return(nil, nil)

		report, err := service.GetSavingsReport(2025)
		require.NoError(t, err)
		require.Len(t, report.Rows, 1)
		assert.Equal(t, 0.0, report.Rows[0].ActualTotal)
		assert.Equal(t, -80000.0, report.Rows[0].Savings)
	})

	t.Run("Sem metas mínimas configuradas - relatório vazio sem consultar vendas", func(t *testing.T) {
		service, _, mockMinTargetRepo := newTestService(ctrl, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

		mockMinTargetRepo.EXPECT().ListByYear(2025).Return(nil, nil)

		report, err := service.GetSavingsReport(2025)
		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Equal(t, 0.0, report.TotalSavings)
	})
}

func TestSetMinimumTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockMinTargetRepo := newTestService(ctrl, time.Now())

	t.Run("Grava meta mínima do mês", func(t *testing.T) {
		mockMinTargetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(record *domain.MinimumTargetRecord) error {
				assert.Equal(t, 2025, record.Year)
				assert.Equal(t, 7, record.Month)
				assert.Equal(t, 120000.0, record.MinSales)
				return nil
			})

		err := service.SetMinimumTarget(2025, 7, 120000)
		assert.NoError(t, err)
	})

	t.Run("Mês inválido - erro", func(t *testing.T) {
		err := service.SetMinimumTarget(2025, 0, 120000)
		assert.Error(t, err)
	})

	t.Run("Valor negativo - erro", func(t *testing.T) {
		err := service.SetMinimumTarget(2025, 7, -1)
		assert.Error(t, err)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		mockMinTargetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(fmt.Errorf("conexão recusada"))

		err := service.SetMinimumTarget(2025, 8, 100000)
		assert.Error(t, err)
	})
}

func TestListMinimumTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockMinTargetRepo := newTestService(ctrl, time.Now())

	mockMinTargetRepo.EXPECT().ListByYear(2025).Return([]*domain.MinimumTargetRecord{
		{Year: 2025, Month: 1, MinSales: 100000},
		{Year: 2025, Month: 2, MinSales: 90000},
	}, nil)

	view, err := service.ListMinimumTargets(2025)
	require.NoError(t, err)
	assert.Len(t, view.Targets, 2)
	assert.Equal(t, 190000.0, view.MinTotal)
}
