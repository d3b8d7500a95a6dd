package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-performance-api/infrastructure/recordsource"
	"github.com/vfg2006/store-performance-api/infrastructure/recordsource/mocks"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/aggregating"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Thresholds: config.Thresholds{
			ApprovalHigh:    60,
			ApprovalLow:     50,
			ConversionHigh:  40,
			ConversionLow:   30,
			PenetrationHigh: 70,
			PenetrationLow:  50,
		},
		Dashboard: config.Dashboard{
			DefaultSortField: "total_trx",
			DefaultSortDesc:  true,
		},
	}
}

func sampleRecords() []domain.RawRecord {
	return []domain.RawRecord{
		{Month: "2025-01", StoreID: "S1", StoreName: "Loja Um", Incoming: 100, Approved: 60, SettledTrx: 40, GMV: 4000000},
		{Month: "2025-01", StoreID: "S2", StoreName: "Loja Dois", Incoming: 50, Approved: 20, SettledTrx: 10, GMV: 1000000},
		{Month: "2025-02", StoreID: "S1", StoreName: "Loja Um", Incoming: 80, Approved: 50, SettledTrx: 30, GMV: 2500000},
	}
}

func sampleDirectory() []domain.StoreInfo {
	return []domain.StoreInfo{
		{ID: "S1", Name: "Loja Um"},
		{ID: "S2", Name: "Loja Dois"},
	}
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockRecordSource(ctrl)
	mockSource.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil)

	service := NewService(testConfig(), mockSource, aggregating.NewService())

	require.NoError(t, service.Refresh(context.Background()))

	monthly, err := service.Monthly()
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2025-01", monthly[0].Month)
	assert.Equal(t, "2025-02", monthly[1].Month)

	// Tendências do segundo mês contra o primeiro
	assert.Equal(t, domain.TrendDown, monthly[1].Trends.Incoming)
	assert.Equal(t, domain.TrendFlat, monthly[0].Trends.Incoming)

	quarterly, err := service.Quarterly()
	require.NoError(t, err)
	require.Len(t, quarterly, 1)
	assert.Equal(t, "2025-Q1", quarterly[0].Key)
	assert.Equal(t, 230, quarterly[0].Incoming)

	totals, err := service.Totals()
	require.NoError(t, err)
	assert.Equal(t, 230, totals.Incoming)
	assert.Equal(t, 80, totals.SettledTrx)

	meta := service.Meta()
	assert.NotEmpty(t, meta.CycleID)
	assert.Equal(t, 3, meta.RecordCount)
	assert.Equal(t, 2, meta.MonthCount)
	assert.Equal(t, 2, meta.StoreCount)
	assert.Empty(t, meta.LastError)
}

func TestRefreshFailureRetainsPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockRecordSource(ctrl)
	service := NewService(testConfig(), mockSource, aggregating.NewService())

	// Primeiro ciclo: sucesso
	mockSource.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil)
	require.NoError(t, service.Refresh(context.Background()))

	firstMeta := service.Meta()

	// Segundo ciclo: a busca de registros falha; o diretório retorna dados
	// parciais que devem ser descartados
	fetchErr := recordsource.NewDataFetchError("records", errors.New("unauthorized"))
	mockSource.EXPECT().FetchRecords(gomock.Any()).Return(nil, fetchErr)
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil)

	err := service.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, recordsource.IsDataFetchError(err))

	// Snapshot anterior preservado e exibido ao lado do indicador de erro
	monthly, monthlyErr := service.Monthly()
	require.NoError(t, monthlyErr)
	assert.Len(t, monthly, 2)

	meta := service.Meta()
	assert.Equal(t, firstMeta.CycleID, meta.CycleID)
	assert.Contains(t, meta.LastError, "unauthorized")

	// Ciclo seguinte bem-sucedido limpa o indicador
	mockSource.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil)
	require.NoError(t, service.Refresh(context.Background()))
	assert.Empty(t, service.Meta().LastError)
}

func TestRefreshWithoutAnySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockRecordSource(ctrl), aggregating.NewService())

	_, err := service.Monthly()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = service.Quarterly()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = service.Totals()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = service.Stores("", service.DefaultSort())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestRefreshCanceledDoesNotMutateState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	mockSource := mocks.NewMockRecordSource(ctrl)
	mockSource.EXPECT().FetchRecords(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.RawRecord, error) {
			// Teardown acontece enquanto a resposta está a caminho
			cancel()
			return sampleRecords(), nil
		})
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil)

	service := NewService(testConfig(), mockSource, aggregating.NewService())

	err := service.Refresh(ctx)
	assert.ErrorIs(t, err, ErrRefreshCanceled)

	// Resposta tardia não pode ter mutado o estado compartilhado
	_, monthlyErr := service.Monthly()
	assert.ErrorIs(t, monthlyErr, ErrNoSnapshot)
}

func TestRefreshSuppressedWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockSource := mocks.NewMockRecordSource(ctrl)
	mockSource.EXPECT().FetchRecords(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.RawRecord, error) {
			close(started)
			<-release
			return sampleRecords(), nil
		}).Times(1)
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil).Times(1)

	service := NewService(testConfig(), mockSource, aggregating.NewService())

	done := make(chan error, 1)
	go func() {
		done <- service.Refresh(context.Background())
	}()

	<-started

	// Gatilho sobreposto colapsa no ciclo em andamento: nenhuma nova busca
	assert.NoError(t, service.Refresh(context.Background()))

	close(release)
	assert.NoError(t, <-done)
}

func TestStoresFilterAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockRecordSource(ctrl)
	mockSource.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
	mockSource.EXPECT().FetchStoreDirectory(gomock.Any()).Return(sampleDirectory(), nil)

	service := NewService(testConfig(), mockSource, aggregating.NewService())
	require.NoError(t, service.Refresh(context.Background()))

	// Ordenação padrão configurada: total de transações, descendente
	stores, err := service.Stores("", service.DefaultSort())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "S1", stores[0].ID)
	assert.Equal(t, 70, stores[0].Totals.SettledTrx)
	assert.Equal(t, "S2", stores[1].ID)

	// Badge das taxas médias usa os limites injetados por configuração
	assert.Equal(t, domain.BadgeGood, stores[0].ApprovalBadge)

	// Filtro por substring do nome
	stores, err = service.Stores("dois", service.DefaultSort())
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "S2", stores[0].ID)
}
