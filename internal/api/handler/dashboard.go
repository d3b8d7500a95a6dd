package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// GetMonthlySeries retorna a série mensal consolidada, ascendente por mês
func GetMonthlySeries(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		monthly, err := service.Monthly()
		if err != nil {
			writeDashboardError(w, r, err, "dashboard: erro ao buscar série mensal")
			return
		}

		writeJSON(w, r, monthly)
	})
}

// GetQuarterlySeries retorna a série trimestral consolidada, ascendente e sem lacunas
func GetQuarterlySeries(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		quarterly, err := service.Quarterly()
		if err != nil {
			writeDashboardError(w, r, err, "dashboard: erro ao buscar série trimestral")
			return
		}

		writeJSON(w, r, quarterly)
	})
}

// GetTotals retorna o acumulado de todos os meses carregados
func GetTotals(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totals, err := service.Totals()
		if err != nil {
			writeDashboardError(w, r, err, "dashboard: erro ao buscar totais")
			return
		}

		writeJSON(w, r, totals)
	})
}

// GetStores retorna a tabela por loja após filtro e ordenação.
// Parâmetros: query (substring), sort (campo), dir (asc|desc).
func GetStores(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		state := service.DefaultSort()
		if field := params.Get("sort"); field != "" {
			state.Field = field
		}
		switch params.Get("dir") {
		case "asc":
			state.Descending = false
		case "desc":
			state.Descending = true
		case "":
			// mantém a direção padrão configurada
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Direção de ordenação inválida, use asc ou desc", nil)
			return
		}

		stores, err := service.Stores(params.Get("query"), state)
		if err != nil {
			writeDashboardError(w, r, err, "dashboard: erro ao buscar tabela de lojas")
			return
		}

		writeJSON(w, r, stores)
	})
}

// GetSnapshotMeta retorna os metadados do último ciclo de atualização
func GetSnapshotMeta(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Meta())
	})
}

// TriggerRefresh dispara um ciclo de atualização manual. Com um ciclo já em
// andamento, o gatilho é absorvido sem nova carga no backend.
func TriggerRefresh(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: ciclo de atualização disparado manualmente")

		if err := service.Refresh(r.Context()); err != nil {
			logger.WithError(err).Error("dashboard: ciclo manual falhou")
			apiErrors.WriteError(w, apiErrors.ErrDataFetch, "Falha ao buscar dados na fonte", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(service.Meta()); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)

	if errors.Is(err, reporting.ErrNoSnapshot) {
		apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum ciclo de dados concluído ainda", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
