package forecasting

import (
	"github.com/vfg2006/sales-forecast/internal/domain"
)

// FitTrendLine ajusta quantity = slope * month_num + intercept por mínimos quadrados ordinários.
// Se todos os month_num forem iguais a reta é horizontal na média das quantidades.
func FitTrendLine(aggregates []domain.MonthlyAggregate) domain.TrendLine {
	n := float64(len(aggregates))
	if n == 0 {
		return domain.TrendLine{}
	}

	var sumX, sumY float64
	for _, a := range aggregates {
		sumX += float64(a.MonthNum)
		sumY += a.Quantity.InexactFloat64()
	}
	meanX, meanY := sumX/n, sumY/n

	var sxy, sxx float64
	for _, a := range aggregates {
		dx := float64(a.MonthNum) - meanX
		sxy += dx * (a.Quantity.InexactFloat64() - meanY)
		sxx += dx * dx
	}

	if sxx == 0 {
		return domain.TrendLine{Intercept: meanY}
	}

	slope := sxy / sxx
	return domain.TrendLine{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}
}
