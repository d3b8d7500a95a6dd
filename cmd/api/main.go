package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-performance-api/infrastructure/recordsource"
	"github.com/vfg2006/store-performance-api/infrastructure/recordsource/gridclient"
	"github.com/vfg2006/store-performance-api/infrastructure/repository"
	"github.com/vfg2006/store-performance-api/internal/api"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/scheduler"
	"github.com/vfg2006/store-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := newRecordSource(ctx, cfg)

	authenticator := authenticating.NewService(cfg)
	aggregator := aggregating.NewService()
	dashboardService := reporting.NewService(cfg, source, aggregator)

	// Primeiro ciclo na subida: o dashboard já abre com dados
	if err := dashboardService.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Ciclo inicial de atualização falhou, seguindo sem snapshot")
	}

	refreshSyncService := scheduler.NewRefreshSyncService(dashboardService, cfg)
	if err := refreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newRecordSource instancia a fonte de dados configurada
func newRecordSource(ctx context.Context, cfg *config.Config) recordsource.RecordSource {
	switch cfg.Source.Driver {
	case "postgres":
		return repository.NewRecordSourceRepository(pgconn(ctx, cfg.Database))
	default:
		return gridclient.NewClient(cfg)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
