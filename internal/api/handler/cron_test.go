package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/holidaycal/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newCronJobServices(t *testing.T) CronJobServices {
	t.Helper()

	ctrl := gomock.NewController(t)
	calendar := mocks.NewMockHolidayCalendar(ctrl)

	cfg := &config.Config{
		HolidayCalSync: config.HolidayCalSync{
			CronSchedule: "0 2 * * *",
			Enabled:      false,
		},
	}

	return CronJobServices{
		HolidayCalendarSyncService: scheduler.NewHolidayCalendarSyncService(calendar, cfg),
	}
}

func requestWithRole(method, path string, roleID int) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, &domain.Claims{UserRoleID: roleID})
	return req.WithContext(ctx)
}

func TestGetCronStatus(t *testing.T) {
	t.Run("Gerente consegue consultar o status", func(t *testing.T) {
		services := newCronJobServices(t)

		rec := httptest.NewRecorder()
		GetCronStatus(services).ServeHTTP(rec, requestWithRole(http.MethodGet, "/v1/cron/status", middleware.RoleManager))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "holiday-calendar")
	})

	t.Run("Administrador consegue consultar o status", func(t *testing.T) {
		services := newCronJobServices(t)

		rec := httptest.NewRecorder()
		GetCronStatus(services).ServeHTTP(rec, requestWithRole(http.MethodGet, "/v1/cron/status", middleware.RoleAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Colaborador não tem acesso", func(t *testing.T) {
		services := newCronJobServices(t)

		rec := httptest.NewRecorder()
		GetCronStatus(services).ServeHTTP(rec, requestWithRole(http.MethodGet, "/v1/cron/status", middleware.RoleStaff))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_006")
	})
}

func TestRunCronJob(t *testing.T) {
	t.Run("Apenas administradores executam cron jobs", func(t *testing.T) {
		services := newCronJobServices(t)

		rec := httptest.NewRecorder()
		RunCronJob(services).ServeHTTP(rec, requestWithRole(http.MethodPost, "/v1/cron/holiday-calendar/run", middleware.RoleManager))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
