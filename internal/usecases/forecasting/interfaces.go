package forecasting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// EntryLoader define a fonte das entradas de venda (arquivo ou banco)
type EntryLoader interface {
	// LoadEntries lê todas as entradas de venda da fonte
	LoadEntries(ctx context.Context) ([]domain.SalesEntry, error)
}

// Forecaster é o contrato do pipeline carregar → agregar → ajustar → prever
type Forecaster interface {
	// Predict retorna a previsão do mês seguinte para o produto.
	// Com menos de dois meses agregados retorna nil e um erro que satisfaz errors.Is(err, domain.ErrInsufficientData).
	Predict(ctx context.Context, productID string) (*domain.Forecast, error)
}
