// Package gridclient implementa a leitura da fonte de dados sobre a API HTTP
// do serviço de tabelas hospedadas (documentos Grid).
package gridclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-performance-api/infrastructure/recordsource"
	"github.com/vfg2006/store-performance-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type GridClient struct {
	httpClient *http.Client
	source     config.Source
}

// NewClient cria uma nova instância do cliente da API de tabelas.
func NewClient(cfg *config.Config) recordsource.RecordSource {
	return &GridClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		source: cfg.Source,
	}
}

// recordsResponse é o envelope de linhas retornado pela API de tabelas.
// As células chegam com tipagem fraca (número, texto ou nulo).
type recordsResponse struct {
	Records []struct {
		ID     int64          `json:"id"`
		Fields map[string]any `json:"fields"`
	} `json:"records"`
}

// listTable busca todas as linhas de uma tabela nomeada do documento configurado.
func (c *GridClient) listTable(ctx context.Context, table string) (*recordsResponse, error) {
	endpoint, err := url.Parse(c.source.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base da fonte")
	}
	endpoint.Path = path.Join(endpoint.Path, "api", "docs", c.source.DocID, "tables", table, "records")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.source.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição para a tabela %s falhou com status: %s", table, resp.Status)
	}

	var response recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}
