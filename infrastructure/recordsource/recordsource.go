// Package recordsource define o contrato de leitura da fonte de dados tabular
// hospedada que alimenta o dashboard.
package recordsource

import (
	"context"

	"github.com/vfg2006/store-performance-api/internal/domain"
)

// RecordSource é o colaborador externo que fornece os registros brutos.
// As duas operações podem falhar com *DataFetchError; a fonte não faz retry,
// um novo ciclo é decisão de quem chama.
type RecordSource interface {
	// FetchRecords retorna todos os registros mensais conhecidos, sem ordem garantida.
	FetchRecords(ctx context.Context) ([]domain.RawRecord, error)

	// FetchStoreDirectory retorna os pares distintos (id, nome) de lojas,
	// ordenados por id.
	FetchStoreDirectory(ctx context.Context) ([]domain.StoreInfo, error)
}
