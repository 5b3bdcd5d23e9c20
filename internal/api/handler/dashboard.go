package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetDashboard retorna o KPI anual da loja para o ano informado
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYearParam(r, time.Now().Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		logger.WithField("year", year).Info("dashboard: calculando KPI anual")

		report, err := service.GetDashboard(year)
		if err != nil {
			logger.WithError(err).WithField("year", year).Error("dashboard: erro ao calcular KPI anual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o painel anual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetPeriodReport retorna o relatório de um mês (year+month) ou de um
// intervalo arbitrário de datas (start+end)
func GetPeriodReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()

		if query.Get("month") != "" {
			year, err := parseYearParam(r, time.Now().Year())
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
				return
			}

			month, err := strconv.Atoi(query.Get("month"))
			if err != nil || month < 1 || month > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use valores entre 1 e 12", nil)
				return
			}

			logger.WithFields(log.Fields{
				"year":  year,
				"month": month,
			}).Info("report: calculando relatório mensal")

			report, err := service.GetMonthReport(year, month)
			if err != nil {
				logger.WithError(err).Error("report: erro ao calcular relatório mensal")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o relatório do mês", nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(report); err != nil {
				logger.WithError(err).Error("report: erro ao codificar resposta")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			}
			return
		}

		startStr := query.Get("start")
		endStr := query.Get("end")
		if startStr == "" || endStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês ou intervalo de datas (start e end)", nil)
			return
		}

		startDate, err := utils.ParseDate(startStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Use formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Use formato YYYY-MM-DD", nil)
			return
		}

		if endDate.Before(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "A data final não pode ser anterior à data inicial", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start": startStr,
			"end":   endStr,
		}).Info("report: calculando relatório por intervalo de datas")

		report, err := service.GetRangeReport(*startDate, *endDate)
		if err != nil {
			logger.WithError(err).Error("report: erro ao calcular relatório por intervalo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o relatório do período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// parseYearParam extrai o parâmetro de ano da query string, usando o valor
// padrão quando ausente
func parseYearParam(r *http.Request, defaultYear int) (int, error) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return defaultYear, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || len(yearStr) != 4 {
		return 0, strconv.ErrSyntax
	}

	return year, nil
}
