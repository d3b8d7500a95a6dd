// Package scheduler contém o agendamento do ciclo de atualização do dashboard
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

type RefreshSyncConfig struct {
	Interval time.Duration
	Enabled  bool
}

// RefreshSyncService dispara o ciclo de atualização no intervalo configurado.
// Gatilhos que encontram um ciclo em andamento são suprimidos pelo próprio
// serviço de dashboard.
type RefreshSyncService struct {
	scheduler *gocron.Scheduler
	dashboard reporting.DashboardService
	config    RefreshSyncConfig
}

func NewRefreshSyncService(
	dashboard reporting.DashboardService,
	cfg *config.Config,
) *RefreshSyncService {
	syncConfig := RefreshSyncConfig{
		Interval: cfg.RefreshSync.Interval,
		Enabled:  cfg.RefreshSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval": syncConfig.Interval.String(),
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &RefreshSyncService{
		scheduler: scheduler,
		dashboard: dashboard,
		config:    syncConfig,
	}
}

func (s *RefreshSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).
		Info("Iniciando atualização automática do dashboard")

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		if err := s.dashboard.Refresh(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização automática do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando atualização automática do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}
