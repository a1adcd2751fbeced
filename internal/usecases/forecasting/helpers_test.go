package forecasting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

func entry(productID, name, date string, quantity string) domain.SalesEntry {
	entryAt, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.SalesEntry{
		ProductID: productID,
		Name:      name,
		EntryAt:   entryAt,
		Quantity:  decimal.RequireFromString(quantity),
	}
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func aggregate(productID string, monthNum int, quantity float64) domain.MonthlyAggregate {
	return domain.MonthlyAggregate{
		ProductID: productID,
		Name:      productID,
		YearMonth: month(2024, time.January).AddDate(0, monthNum, 0),
		Quantity:  decimal.NewFromFloat(quantity),
		MonthNum:  monthNum,
	}
}
