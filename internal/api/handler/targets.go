package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type BulkAssignTargetsRequest struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	WeekdayAmount float64 `json:"weekday_amount"`
	HolidayAmount float64 `json:"holiday_amount"`
}

type SetDayTargetRequest struct {
	Amount float64 `json:"amount"`
}

// GetMonthTargets retorna a grade de metas diárias de um mês
func GetMonthTargets(service targeting.TargetSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYearParam(r, time.Now().Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use valores entre 1 e 12", nil)
			return
		}

		view, err := service.GetMonthTargets(year, month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"year":  year,
				"month": month,
			}).Error("targets: erro ao buscar metas do mês")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar metas do mês", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("targets: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// BulkAssignTargets atribui metas a todos os dias de um mês, com valores
// distintos para dias úteis e para fins de semana/feriados
func BulkAssignTargets(service targeting.TargetSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req BulkAssignTargetsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Year == 0 || req.Month < 1 || req.Month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Ano e mês são obrigatórios", nil)
			return
		}

		if req.WeekdayAmount < 0 || req.HolidayAmount < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Os valores de meta não podem ser negativos", nil)
			return
		}

		count, err := service.BulkAssign(req.Year, req.Month, req.WeekdayAmount, req.HolidayAmount)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"year":  req.Year,
				"month": req.Month,
			}).Error("targets: erro na atribuição em lote de metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar metas do mês", nil)
			return
		}

		logger.WithFields(log.Fields{
			"year":          req.Year,
			"month":         req.Month,
			"days_assigned": count,
		}).Info("targets: metas do mês atribuídas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":       "Metas atribuídas com sucesso",
			"days_assigned": count,
		})
	})
}

// SetDayTarget atribui a meta de um único dia
func SetDayTarget(service targeting.TargetSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateStr := httprouter.ParamsFromContext(r.Context()).ByName("date")
		if dateStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data não fornecida", nil)
			return
		}

		date, err := utils.ParseDate(dateStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use formato YYYY-MM-DD", nil)
			return
		}

		var req SetDayTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Amount < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O valor da meta não pode ser negativo", nil)
			return
		}

		if err := service.SetDayTarget(*date, req.Amount); err != nil {
			logger.WithError(err).WithField("date", dateStr).Error("targets: erro ao gravar meta do dia")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar meta do dia", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Meta do dia atribuída com sucesso",
			"date":    dateStr,
			"amount":  req.Amount,
		})
	})
}
