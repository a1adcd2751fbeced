package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast/infrastructure/loader"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/pkg/log"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entryLoader, closeLoader := newEntryLoader(ctx, cfg)
	defer closeLoader()

	service := forecasting.NewService(entryLoader, cfg)

	if _, err := run(ctx, service, cfg.Forecast.ProductID); err != nil {
		cancel()
		closeLoader()
		logrus.WithError(err).Fatal("Falha ao gerar a previsão")
	}
}

// run executa a previsão e reporta o resultado. Dados insuficientes não são falha da execução.
func run(ctx context.Context, forecaster forecasting.Forecaster, productID string) (*domain.Forecast, error) {
	ctx, _ = log.WithRunID(ctx)
	logger := log.ForContext(ctx).WithField("product_id", productID)

	forecast, err := forecaster.Predict(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			logger.WithError(err).Warn("Sem previsão: o produto não tem meses suficientes")
			return nil, nil
		}
		return nil, err
	}

	logger.WithField("year_month", forecast.YearMonth).Infof("Quantidade prevista: %v", forecast.PredictedQuantity)
	logger.Debugf("Previsão: %s", utils.PrettyJson(forecast))

	return forecast, nil
}

// newEntryLoader escolhe a fonte das entradas de venda conforme FORECAST_SOURCE
func newEntryLoader(ctx context.Context, cfg *config.Config) (forecasting.EntryLoader, func()) {
	if cfg.Forecast.Source == config.SourcePostgres {
		conn := pgconn(ctx, cfg.Database)
		return repository.NewProductEntryRepository(conn), func() { conn.Close() }
	}

	logrus.Infof("Lendo entradas de venda de %s", cfg.Forecast.InputPath)
	return loader.NewFileLoader(cfg.Forecast.InputPath, cfg.Forecast.SheetName), func() {}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stdout)
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

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
