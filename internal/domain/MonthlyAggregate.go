package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAggregate representa a quantidade total de um produto em um mês
type MonthlyAggregate struct {
	ProductID string
	Name      string
	YearMonth time.Time // Primeiro dia do mês, UTC
	Quantity  decimal.Decimal
	MonthNum  int // Meses desde o mês mais antigo de toda a base
}
