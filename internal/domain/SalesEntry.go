package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesEntry representa uma linha do log de vendas de um produto
type SalesEntry struct {
	ProductID string
	Name      string
	EntryAt   time.Time
	Quantity  decimal.Decimal
}
