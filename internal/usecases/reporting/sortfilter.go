package reporting

import (
	"sort"
	"strings"

	"github.com/vfg2006/store-performance-api/internal/domain"
)

// SortState descreve a ordenação ativa da tabela de lojas.
type SortState struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// Toggle aplica a semântica de alternância da tabela: selecionar o campo já
// ativo inverte a direção; selecionar um campo novo volta para descendente.
func (s SortState) Toggle(field string) SortState {
	if field == s.Field {
		return SortState{Field: field, Descending: !s.Descending}
	}

	return SortState{Field: field, Descending: true}
}

// FilterStores filtra por substring, sem diferenciar maiúsculas, contra o id
// OU o nome da loja. Consulta vazia casa com todas.
func FilterStores(stores []domain.ProcessedStore, query string) []domain.ProcessedStore {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return stores
	}

	filtered := make([]domain.ProcessedStore, 0, len(stores))
	for _, store := range stores {
		if strings.Contains(strings.ToLower(store.ID), query) ||
			strings.Contains(strings.ToLower(store.Name), query) {
			filtered = append(filtered, store)
		}
	}

	return filtered
}

// SortStores ordena de forma estável pelo campo indicado. Valores ausentes ou
// indefinidos comparam como zero.
func SortStores(stores []domain.ProcessedStore, state SortState) {
	sort.SliceStable(stores, func(i, j int) bool {
		a := sortValue(stores[i], state.Field)
		b := sortValue(stores[j], state.Field)

		if state.Descending {
			return a > b
		}
		return a < b
	})
}

// sortValue resolve o valor numérico de um campo nomeado de ProcessedStore.
// Campos mensais usam a forma "<yyyy-mm>:<métrica>" (ex: 2025-01:trx).
func sortValue(store domain.ProcessedStore, field string) float64 {
	switch field {
	case "total_incoming":
		return float64(store.Totals.Incoming)
	case "total_approved":
		return float64(store.Totals.Approved)
	case "total_trx":
		return float64(store.Totals.SettledTrx)
	case "total_gmv":
		return store.Totals.GMV
	case "avg_approval":
		return floatOrZero(store.AvgApproval)
	case "avg_conversion":
		return floatOrZero(store.AvgConversion)
	}

	if monthKey, metric, ok := strings.Cut(field, ":"); ok {
		view := store.Monthly[monthKey]
		switch metric {
		case "incoming":
			return float64(view.Incoming)
		case "approved":
			return float64(view.Approved)
		case "trx":
			return float64(view.SettledTrx)
		case "gmv":
			return view.GMV
		case "approval":
			return view.ApprovalRate
		case "conversion":
			return view.ConversionRate
		}
	}

	return 0
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
