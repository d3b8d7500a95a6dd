package gridclient

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/store-performance-api/infrastructure/recordsource"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/pkg/log"
	"github.com/vfg2006/store-performance-api/pkg/utils"
)

// FetchRecords retorna todos os registros mensais da tabela configurada.
// Campos numéricos nulos ou não numéricos são normalizados para zero
// (política leniente); no modo estrito o ciclo inteiro falha com
// MalformedRecordError.
func (c *GridClient) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	response, err := c.listTable(ctx, c.source.RecordsTable)
	if err != nil {
		return nil, recordsource.NewDataFetchError("records", err)
	}

	records := make([]domain.RawRecord, 0, len(response.Records))
	for _, row := range response.Records {
		record, err := c.normalizeRow(row.Fields)
		if err != nil {
			return nil, err
		}

		if record == nil {
			// Linha sem mês válido não representa atividade de loja alguma
			log.ForContext(ctx).WithField("row_id", row.ID).
				Warn("grid: linha ignorada por chave de mês ausente ou inválida")
			continue
		}

		records = append(records, *record)
	}

	return records, nil
}

// FetchStoreDirectory retorna os pares distintos (id, nome) do diretório de
// lojas, ordenados por id pela própria fonte.
func (c *GridClient) FetchStoreDirectory(ctx context.Context) ([]domain.StoreInfo, error) {
	response, err := c.listTable(ctx, c.source.StoresTable)
	if err != nil {
		return nil, recordsource.NewDataFetchError("stores", err)
	}

	stores := make([]domain.StoreInfo, 0, len(response.Records))
	for _, row := range response.Records {
		id := asString(row.Fields["store_id"])
		if id == "" {
			continue
		}

		stores = append(stores, domain.StoreInfo{
			ID:   id,
			Name: asString(row.Fields["store_name"]),
		})
	}

	return stores, nil
}

func (c *GridClient) normalizeRow(fields map[string]any) (*domain.RawRecord, error) {
	month, ok := asMonthKey(fields["month"])
	if !ok {
		return nil, nil
	}

	record := domain.RawRecord{
		Month:     month,
		StoreID:   asString(fields["store_id"]),
		StoreName: asString(fields["store_name"]),
	}

	intFields := []struct {
		name string
		dst  *int
	}{
		{"incoming", &record.Incoming},
		{"approved", &record.Approved},
		{"settled_trx", &record.SettledTrx},
	}

	for _, field := range intFields {
		value, ok := asInt(fields[field.name])
		if !ok && c.source.StrictMode {
			return nil, &recordsource.MalformedRecordError{Field: field.name, Value: fields[field.name]}
		}
		*field.dst = value
	}

	gmv, ok := asFloat(fields["gmv"])
	if !ok && c.source.StrictMode {
		return nil, &recordsource.MalformedRecordError{Field: "gmv", Value: fields["gmv"]}
	}
	record.GMV = gmv

	return &record, nil
}

// asMonthKey aceita chaves yyyy-mm, datas completas (dia ignorado) e datas em
// epoch de segundos, como a API de tabelas serializa células de data.
func asMonthKey(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		key, err := utils.NormalizeMonthKey(v)
		if err != nil {
			return "", false
		}
		return key, true
	case float64:
		return time.Unix(int64(v), 0).UTC().Format("2006-01"), true
	default:
		return "", false
	}
}

func asString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

// asInt converte uma célula de tipagem fraca para inteiro. Nulo e campo
// ausente valem zero e contam como conversão válida; o segundo retorno é
// falso apenas para valores presentes e não numéricos.
func asInt(value any) (int, bool) {
	f, ok := asFloat(value)
	return int(f), ok
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
