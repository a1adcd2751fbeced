package forecasting

import (
	"fmt"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// Reexportados para quem só importa o caso de uso
var (
	ErrInvalidInput     = domain.ErrInvalidInput
	ErrInsufficientData = domain.ErrInsufficientData
)

// ForecastError é um erro com contexto do produto e dos meses disponíveis
type ForecastError struct {
	Err       error  // Erro base
	ProductID string // Produto solicitado
	Months    int    // Meses agregados encontrados para o produto
}

func (e *ForecastError) Error() string {
	return fmt.Sprintf("%s: product %q has %d monthly aggregate(s), need at least %d", e.Err.Error(), e.ProductID, e.Months, minTrainingMonths)
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func newInsufficientDataError(productID string, months int) *ForecastError {
	return &ForecastError{
		Err:       ErrInsufficientData,
		ProductID: productID,
		Months:    months,
	}
}
