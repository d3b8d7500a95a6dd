package reporting

import (
	"math"
	"sort"

	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/pkg/utils"
)

// quarterFold acumula os meses de um trimestre durante a dobra.
type quarterFold struct {
	agg domain.QuarterlyAggregate

	// Somatórios dos contadores mensais de lojas ativas, para a média
	withIncomingSum int
	withTrxSum      int
}

// BuildQuarterly dobra os consolidados mensais (ascendentes) nos trimestres
// presentes. Trimestres sem nenhum mês não geram entrada.
//
// Somas de métricas são aditivas. TotalStores é a fotografia do último mês do
// trimestre. StoresWithIncoming e StoresWithTrx são a média aritmética
// arredondada dos meses presentes, não uma contagem distinta real de lojas
// ativas no período.
func BuildQuarterly(monthly []domain.MonthlyAggregate) []domain.QuarterlyAggregate {
	index := make(map[string]int)
	var folds []*quarterFold

	for _, month := range monthly {
		key := utils.QuarterKey(month.Month)

		i, ok := index[key]
		if !ok {
			i = len(folds)
			index[key] = i
			folds = append(folds, &quarterFold{
				agg: domain.QuarterlyAggregate{
					Key:     key,
					Quarter: month.Quarter,
					Label:   utils.QuarterLabel(month.Month),
				},
			})
		}

		fold := folds[i]
		fold.agg.Months++
		fold.agg.MetricSums.Add(month.MetricSums)

		// Meses chegam em ordem ascendente: o último visto é o último do trimestre
		fold.agg.TotalStores = month.TotalStores

		fold.withIncomingSum += month.StoresWithIncoming
		fold.withTrxSum += month.StoresWithTrx
	}

	quarters := make([]domain.QuarterlyAggregate, 0, len(folds))
	for _, fold := range folds {
		fold.agg.StoresWithIncoming = roundedMean(fold.withIncomingSum, fold.agg.Months)
		fold.agg.StoresWithTrx = roundedMean(fold.withTrxSum, fold.agg.Months)
		quarters = append(quarters, fold.agg)
	}

	sort.Slice(quarters, func(i, j int) bool {
		return quarters[i].Key < quarters[j].Key
	})

	return quarters
}

func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}

	return int(math.Round(float64(sum) / float64(count)))
}

// BuildTotals soma todas as métricas de todos os meses carregados, o
// acumulado "year-to-date" efetivo do conjunto de dados.
func BuildTotals(monthly []domain.MonthlyAggregate) domain.MetricSums {
	var totals domain.MetricSums
	for _, month := range monthly {
		totals.Add(month.MetricSums)
	}

	return totals
}

// ProcessStores enriquece cada loja com totais, taxas médias e a visão
// achatada de todos os meses conhecidos do conjunto de dados. Meses ausentes
// para a loja produzem uma visão zerada, indistinguível de um mês sem
// propostas.
func ProcessStores(stores map[string]*domain.StoreRecord, monthKeys []string) []domain.ProcessedStore {
	processed := make([]domain.ProcessedStore, 0, len(stores))

	for _, store := range stores {
		entry := domain.ProcessedStore{
			ID:      store.ID,
			Name:    store.Name,
			Monthly: make(map[string]domain.StoreMonthView, len(monthKeys)),
		}

		for _, sums := range store.Months {
			entry.Totals.Add(sums)
		}

		entry.AvgApproval = entry.Totals.ApprovalRate()
		entry.AvgConversion = entry.Totals.ConversionRate()

		for _, key := range monthKeys {
			entry.Monthly[key] = flattenMonth(store.Months[key])
		}

		processed = append(processed, entry)
	}

	// Ordem determinística antes de qualquer ordenação solicitada
	sort.Slice(processed, func(i, j int) bool {
		return processed[i].ID < processed[j].ID
	})

	return processed
}

// flattenMonth achata as métricas de um mês de uma loja, com taxas valendo
// zero quando não houve propostas no mês (ou o mês está ausente).
func flattenMonth(sums domain.MetricSums) domain.StoreMonthView {
	view := domain.StoreMonthView{
		Incoming:   sums.Incoming,
		Approved:   sums.Approved,
		SettledTrx: sums.SettledTrx,
		GMV:        sums.GMV,
	}

	if rate := sums.ApprovalRate(); rate != nil {
		view.ApprovalRate = utils.RoundWithOneDecimalPlace(*rate)
	}
	if rate := sums.ConversionRate(); rate != nil {
		view.ConversionRate = utils.RoundWithOneDecimalPlace(*rate)
	}

	return view
}
