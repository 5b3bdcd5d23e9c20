package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/saving"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type SetMinimumTargetRequest struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// ListMinimumTargets retorna as metas mínimas mensais de um ano
func ListMinimumTargets(service saving.SavingsCalculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYearParam(r, time.Now().Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		view, err := service.ListMinimumTargets(year)
		if err != nil {
			logger.WithError(err).WithField("year", year).Error("minimum-targets: erro ao listar metas mínimas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas mínimas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("minimum-targets: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetSavingsReport retorna a economia acumulada frente às metas mínimas,
// considerando apenas os meses já encerrados
func GetSavingsReport(service saving.SavingsCalculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYearParam(r, time.Now().Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		logger.WithField("year", year).Info("savings: calculando relatório de economia")

		report, err := service.GetSavingsReport(year)
		if err != nil {
			logger.WithError(err).WithField("year", year).Error("savings: erro ao calcular relatório de economia")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o relatório de economia", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("savings: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// SetMinimumTarget grava a meta mínima de um mês
func SetMinimumTarget(service saving.SavingsCalculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SetMinimumTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Year == 0 || req.Month < 1 || req.Month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Ano e mês são obrigatórios", nil)
			return
		}

		if req.Amount < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O valor da meta mínima não pode ser negativo", nil)
			return
		}

		if err := service.SetMinimumTarget(req.Year, req.Month, req.Amount); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"year":  req.Year,
				"month": req.Month,
			}).Error("minimum-targets: erro ao gravar meta mínima")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar meta mínima", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Meta mínima gravada com sucesso",
			"year":    req.Year,
			"month":   req.Month,
		})
	})
}
