// Package reporting orquestra o ciclo de atualização do dashboard e expõe os
// consolidados derivados (mensal, trimestral, acumulado e por loja).
package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/store-performance-api/infrastructure/recordsource"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-performance-api/pkg/log"
	"github.com/vfg2006/store-performance-api/pkg/utils"
)

// DashboardService expõe os consolidados do último ciclo concluído.
type DashboardService interface {
	// Refresh executa um ciclo completo: busca, agrega e substitui o snapshot
	// por inteiro. Com outro ciclo em andamento, retorna imediatamente sem
	// nova carga no backend.
	Refresh(ctx context.Context) error

	// Monthly retorna a série mensal ascendente do último ciclo.
	Monthly() ([]MonthlyView, error)

	// Quarterly retorna a série trimestral ascendente e sem lacunas.
	Quarterly() ([]QuarterlyView, error)

	// Totals retorna o acumulado de todos os meses carregados.
	Totals() (*TotalsView, error)

	// Stores retorna a tabela por loja após filtro e ordenação.
	Stores(query string, state SortState) ([]StoreView, error)

	// Meta retorna os metadados do último ciclo (id, horário, erro pendente).
	Meta() *SnapshotMeta

	// DefaultSort retorna a ordenação padrão configurada da tabela de lojas.
	DefaultSort() SortState
}

// SnapshotMeta descreve o último ciclo de atualização.
type SnapshotMeta struct {
	CycleID     string    `json:"cycle_id"`
	FetchedAt   time.Time `json:"fetched_at"`
	RecordCount int       `json:"record_count"`
	MonthCount  int       `json:"month_count"`
	StoreCount  int       `json:"store_count"`
	LastError   string    `json:"last_error,omitempty"`
}

// snapshot é o resultado imutável de um ciclo. É substituído atomicamente como
// unidade inteira, nunca mutado campo a campo de fora do ciclo que o criou.
type snapshot struct {
	meta      SnapshotMeta
	monthly   []MonthlyView
	quarterly []QuarterlyView
	totals    *TotalsView
	stores    []domain.ProcessedStore
}

type Service struct {
	cfg        *config.Config
	source     recordsource.RecordSource
	aggregator aggregating.Aggregator

	mu       sync.RWMutex
	snapshot *snapshot
	lastErr  error

	// Supressão de ciclos sobrepostos: gatilhos manuais e agendados colapsam
	// em uma única busca efetiva em andamento
	gateMu     sync.Mutex
	refreshing bool
}

// NewService cria uma nova instância do serviço de dashboard.
func NewService(
	cfg *config.Config,
	source recordsource.RecordSource,
	aggregator aggregating.Aggregator,
) *Service {
	return &Service{
		cfg:        cfg,
		source:     source,
		aggregator: aggregator,
	}
}

func (s *Service) Refresh(ctx context.Context) error {
	if !s.beginRefresh() {
		log.ForContext(ctx).Info("dashboard: ciclo de atualização já em andamento, gatilho suprimido")
		return nil
	}
	defer s.endRefresh()

	logger := log.ForContext(ctx)
	startedAt := time.Now()

	// As duas buscas são emitidas em paralelo; o ciclo só conclui com ambas
	var (
		records   []domain.RawRecord
		directory []domain.StoreInfo
		recordErr error
		storesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		records, recordErr = s.source.FetchRecords(ctx)
	}()

	go func() {
		defer wg.Done()
		directory, storesErr = s.source.FetchStoreDirectory(ctx)
	}()

	wg.Wait()

	// Qualquer falha aborta o ciclo inteiro: resultados parciais da outra
	// busca são descartados e o snapshot anterior é preservado
	if err := firstError(recordErr, storesErr); err != nil {
		logger.WithError(err).Error("dashboard: ciclo de atualização falhou")

		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()

		return err
	}

	// Ciclo substituído (teardown ou desligamento): respostas tardias não
	// podem mutar o estado compartilhado
	if ctx.Err() != nil {
		logger.Warn("dashboard: ciclo cancelado antes de concluir, estado preservado")
		return ErrRefreshCanceled
	}

	result := s.aggregator.Aggregate(records, directory)

	cycleID, err := utils.GenerateID()
	if err != nil {
		cycleID = "unknown"
	}

	next := &snapshot{
		meta: SnapshotMeta{
			CycleID:     cycleID,
			FetchedAt:   time.Now(),
			RecordCount: len(records),
			MonthCount:  len(result.Monthly),
			StoreCount:  len(result.Stores),
		},
		monthly:   buildMonthlyViews(result.Monthly, s.cfg.Thresholds),
		quarterly: buildQuarterlyViews(BuildQuarterly(result.Monthly), s.cfg.Thresholds),
		totals:    buildTotalsView(BuildTotals(result.Monthly)),
		stores:    ProcessStores(result.Stores, result.MonthKeys()),
	}

	s.mu.Lock()
	s.snapshot = next
	s.lastErr = nil
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"cycle_id":    cycleID,
		"records":     len(records),
		"months":      len(result.Monthly),
		"stores":      len(result.Stores),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("dashboard: ciclo de atualização concluído")

	return nil
}

func (s *Service) Monthly() ([]MonthlyView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}

	return s.snapshot.monthly, nil
}

func (s *Service) Quarterly() ([]QuarterlyView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}

	return s.snapshot.quarterly, nil
}

func (s *Service) Totals() (*TotalsView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}

	return s.snapshot.totals, nil
}

func (s *Service) Stores(query string, state SortState) ([]StoreView, error) {
	s.mu.RLock()

	if s.snapshot == nil {
		s.mu.RUnlock()
		return nil, ErrNoSnapshot
	}

	stores := make([]domain.ProcessedStore, len(s.snapshot.stores))
	copy(stores, s.snapshot.stores)
	s.mu.RUnlock()

	stores = FilterStores(stores, query)
	SortStores(stores, state)

	return buildStoreViews(stores, s.cfg.Thresholds), nil
}

func (s *Service) Meta() *SnapshotMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta := SnapshotMeta{}
	if s.snapshot != nil {
		meta = s.snapshot.meta
	}

	// Falha posterior ao último ciclo bem-sucedido fica visível ao lado dos
	// dados retidos, não no lugar deles
	if s.lastErr != nil {
		meta.LastError = s.lastErr.Error()
	}

	return &meta
}

func (s *Service) DefaultSort() SortState {
	return SortState{
		Field:      s.cfg.Dashboard.DefaultSortField,
		Descending: s.cfg.Dashboard.DefaultSortDesc,
	}
}

func (s *Service) beginRefresh() bool {
	s.gateMu.Lock()
	defer s.gateMu.Unlock()

	if s.refreshing {
		return false
	}

	s.refreshing = true
	return true
}

func (s *Service) endRefresh() {
	s.gateMu.Lock()
	s.refreshing = false
	s.gateMu.Unlock()
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
