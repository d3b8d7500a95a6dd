package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

// stubDashboard devolve respostas fixas e captura os parâmetros de consulta
// repassados pelos handlers.
type stubDashboard struct {
	monthly    []reporting.MonthlyView
	meta       *reporting.SnapshotMeta
	err        error
	refreshErr error

	gotQuery string
	gotSort  reporting.SortState
}

func (s *stubDashboard) Refresh(ctx context.Context) error { return s.refreshErr }

func (s *stubDashboard) Monthly() ([]reporting.MonthlyView, error) {
	return s.monthly, s.err
}

func (s *stubDashboard) Quarterly() ([]reporting.QuarterlyView, error) {
	return nil, s.err
}

func (s *stubDashboard) Totals() (*reporting.TotalsView, error) {
	return &reporting.TotalsView{}, s.err
}

func (s *stubDashboard) Stores(query string, state reporting.SortState) ([]reporting.StoreView, error) {
	s.gotQuery = query
	s.gotSort = state
	return nil, s.err
}

func (s *stubDashboard) Meta() *reporting.SnapshotMeta { return s.meta }

func (s *stubDashboard) DefaultSort() reporting.SortState {
	return reporting.SortState{Field: "total_trx", Descending: true}
}

func TestGetMonthlySeries(t *testing.T) {
	stub := &stubDashboard{
		monthly: []reporting.MonthlyView{{}, {}},
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard/monthly", nil)

	GetMonthlySeries(stub).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var payload []reporting.MonthlyView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Len(t, payload, 2)
}

func TestGetMonthlySeriesWithoutSnapshot(t *testing.T) {
	stub := &stubDashboard{err: reporting.ErrNoSnapshot}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard/monthly", nil)

	GetMonthlySeries(stub).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_004")
}

func TestGetStoresQueryParams(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedQuery  string
		expectedField  string
		expectedDesc   bool
	}{
		{
			name:           "Sem parâmetros usa a ordenação padrão",
			target:         "/v1/dashboard/stores",
			expectedStatus: http.StatusOK,
			expectedField:  "total_trx",
			expectedDesc:   true,
		},
		{
			name:           "Campo e direção explícitos",
			target:         "/v1/dashboard/stores?sort=total_gmv&dir=asc",
			expectedStatus: http.StatusOK,
			expectedField:  "total_gmv",
			expectedDesc:   false,
		},
		{
			name:           "Filtro por substring",
			target:         "/v1/dashboard/stores?query=loja",
			expectedStatus: http.StatusOK,
			expectedQuery:  "loja",
			expectedField:  "total_trx",
			expectedDesc:   true,
		},
		{
			name:           "Direção inválida",
			target:         "/v1/dashboard/stores?dir=sideways",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubDashboard{}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, tt.target, nil)

			GetStores(stub).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, recorder.Body.String(), "VAL_003")
				return
			}

			assert.Equal(t, tt.expectedQuery, stub.gotQuery)
			assert.Equal(t, tt.expectedField, stub.gotSort.Field)
			assert.Equal(t, tt.expectedDesc, stub.gotSort.Descending)
		})
	}
}

func TestTriggerRefresh(t *testing.T) {
	stub := &stubDashboard{
		meta: &reporting.SnapshotMeta{CycleID: "abc123", RecordCount: 3},
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)

	TriggerRefresh(stub).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusAccepted, recorder.Code)

	var meta reporting.SnapshotMeta
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &meta))
	assert.Equal(t, "abc123", meta.CycleID)
}

func TestTriggerRefreshFailure(t *testing.T) {
	stub := &stubDashboard{refreshErr: assert.AnError}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)

	TriggerRefresh(stub).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_003")
}
