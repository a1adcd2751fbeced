package forecasting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

type aggregateKey struct {
	productID string
	name      string
	yearMonth time.Time
}

// AggregateMonthly agrupa as entradas por (produto, nome, mês) somando as quantidades
// e numera os meses a partir do mês mais antigo de toda a base, comum a todos os produtos.
func AggregateMonthly(entries []domain.SalesEntry) []domain.MonthlyAggregate {
	if len(entries) == 0 {
		return []domain.MonthlyAggregate{}
	}

	totals := make(map[aggregateKey]decimal.Decimal)
	var firstMonth time.Time
	for i, entry := range entries {
		key := aggregateKey{
			productID: entry.ProductID,
			name:      entry.Name,
			yearMonth: utils.MonthStart(entry.EntryAt),
		}
		totals[key] = totals[key].Add(entry.Quantity)

		if i == 0 || key.yearMonth.Before(firstMonth) {
			firstMonth = key.yearMonth
		}
	}

	aggregates := make([]domain.MonthlyAggregate, 0, len(totals))
	for key, quantity := range totals {
		aggregates = append(aggregates, domain.MonthlyAggregate{
			ProductID: key.productID,
			Name:      key.name,
			YearMonth: key.yearMonth,
			Quantity:  quantity,
			MonthNum:  utils.MonthsBetween(firstMonth, key.yearMonth),
		})
	}

	// Ordem determinística, independente da ordem de leitura e do map
	sort.Slice(aggregates, func(i, j int) bool {
		a, b := aggregates[i], aggregates[j]
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if a.MonthNum != b.MonthNum {
			return a.MonthNum < b.MonthNum
		}
		return a.Name < b.Name
	})

	return aggregates
}
