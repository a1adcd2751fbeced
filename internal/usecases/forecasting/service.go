package forecasting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast/infrastructure/loader"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

type Service struct {
	loader       EntryLoader
	recentWindow int
}

func NewService(entryLoader EntryLoader, cfg *config.Config) *Service {
	recentWindow := DefaultRecentWindow
	if cfg != nil && cfg.Forecast.RecentWindow > 0 {
		recentWindow = cfg.Forecast.RecentWindow
	}

	return &Service{
		loader:       entryLoader,
		recentWindow: recentWindow,
	}
}

// Predict executa carregar → agregar → ajustar → prever para um produto.
// Cada chamada é independente: nada é guardado entre execuções.
func (s *Service) Predict(ctx context.Context, productID string) (*domain.Forecast, error) {
	ctx, _ = log.WithRunID(ctx)
	logger := log.ForContext(ctx).WithField("product_id", productID)

	entries, err := s.loader.LoadEntries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao carregar entradas de venda")
	}
	logger.Debugf("%d entradas de venda carregadas", len(entries))

	aggregates := AggregateMonthly(entries)
	logger.Debugf("%d agregados mensais gerados", len(aggregates))

	forecast, err := PredictNextMonth(aggregates, productID, s.recentWindow)
	if err != nil {
		logger.WithError(err).Debug("Dados insuficientes para treinar o modelo")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"year_month":         forecast.YearMonth,
		"predicted_quantity": forecast.PredictedQuantity,
	}).Info("Previsão do próximo mês calculada")

	return forecast, nil
}

// TrainAndPredict lê o CSV, treina a reta de tendência do produto e prevê o mês seguinte
func TrainAndPredict(ctx context.Context, csvFile string, productID string) (*domain.Forecast, error) {
	return NewService(loader.NewFileLoader(csvFile, ""), nil).Predict(ctx, productID)
}
