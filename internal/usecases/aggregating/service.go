// Package aggregating implementa o motor de agregação: transforma a sequência
// plana de registros mensais por loja em consolidados por mês e por loja.
package aggregating

import (
	"sort"

	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/pkg/utils"
)

// Aggregator agrupa registros brutos em consolidados mensais e por loja.
type Aggregator interface {
	Aggregate(records []domain.RawRecord, directory []domain.StoreInfo) *Result
}

// Result é a saída de uma passada completa de agregação.
type Result struct {
	// Monthly está ordenado ascendentemente pela chave de mês.
	Monthly []domain.MonthlyAggregate
	// Stores mapeia id de loja para o acumulado esparso da loja.
	Stores map[string]*domain.StoreRecord
}

// MonthKeys retorna as chaves de mês presentes, em ordem ascendente.
func (r *Result) MonthKeys() []string {
	keys := make([]string, 0, len(r.Monthly))
	for _, month := range r.Monthly {
		keys = append(keys, month.Month)
	}
	return keys
}

type Service struct{}

// NewService cria uma nova instância do motor de agregação.
func NewService() Aggregator {
	return &Service{}
}

// monthBucket acumula um mês durante a passada única. Os conjuntos de presença
// guardam ids distintos de loja; as cardinalidades viram os contadores do
// consolidado ao final.
type monthBucket struct {
	key          string
	sums         domain.MetricSums
	stores       map[string]struct{}
	withIncoming map[string]struct{}
	withTrx      map[string]struct{}
}

// Aggregate percorre todos os registros exatamente uma vez, usando arenas de
// índice ordenado por chave (mês e loja) em vez de mutação ambiente de mapas.
//
// Registros duplicados para o mesmo par (loja, mês) são SOMADOS, nunca
// sobrescritos. O primeiro nome visto para uma loja prevalece: o diretório é
// semeado antes dos registros, então nomes divergentes em registros
// posteriores são ignorados.
func (s *Service) Aggregate(records []domain.RawRecord, directory []domain.StoreInfo) *Result {
	monthIndex := make(map[string]int)
	var buckets []*monthBucket

	stores := make(map[string]*domain.StoreRecord, len(directory))
	for _, info := range directory {
		stores[info.ID] = &domain.StoreRecord{
			ID:     info.ID,
			Name:   info.Name,
			Months: make(map[string]domain.MetricSums),
		}
	}

	for _, record := range records {
		bucket := resolveBucket(monthIndex, &buckets, record.Month)

		// Uma loja com métricas zeradas ainda conta como presente no mês
		bucket.stores[record.StoreID] = struct{}{}
		if record.Incoming > 0 {
			bucket.withIncoming[record.StoreID] = struct{}{}
		}
		if record.SettledTrx > 0 {
			bucket.withTrx[record.StoreID] = struct{}{}
		}

		recordSums := domain.MetricSums{
			Incoming:   record.Incoming,
			Approved:   record.Approved,
			SettledTrx: record.SettledTrx,
			GMV:        record.GMV,
		}
		bucket.sums.Add(recordSums)

		store, ok := stores[record.StoreID]
		if !ok {
			store = &domain.StoreRecord{
				ID:     record.StoreID,
				Name:   record.StoreName,
				Months: make(map[string]domain.MetricSums),
			}
			stores[record.StoreID] = store
		}

		if store.Name == "" {
			store.Name = record.StoreName
		}

		monthSums := store.Months[record.Month]
		monthSums.Add(recordSums)
		store.Months[record.Month] = monthSums
	}

	// Chaves yyyy-mm ordenam corretamente de forma lexicográfica
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].key < buckets[j].key
	})

	monthly := make([]domain.MonthlyAggregate, 0, len(buckets))
	for _, bucket := range buckets {
		monthly = append(monthly, domain.MonthlyAggregate{
			Month:              bucket.key,
			Label:              utils.MonthLabel(bucket.key),
			Quarter:            utils.QuarterTag(bucket.key),
			TotalStores:        len(bucket.stores),
			StoresWithIncoming: len(bucket.withIncoming),
			StoresWithTrx:      len(bucket.withTrx),
			MetricSums:         bucket.sums,
		})
	}

	return &Result{
		Monthly: monthly,
		Stores:  stores,
	}
}

func resolveBucket(index map[string]int, buckets *[]*monthBucket, key string) *monthBucket {
	if i, ok := index[key]; ok {
		return (*buckets)[i]
	}

	bucket := &monthBucket{
		key:          key,
		stores:       make(map[string]struct{}),
		withIncoming: make(map[string]struct{}),
		withTrx:      make(map[string]struct{}),
	}

	index[key] = len(*buckets)
	*buckets = append(*buckets, bucket)

	return bucket
}
