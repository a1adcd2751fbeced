package forecasting

import (
	"sort"

	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

const (
	// DefaultRecentWindow é quantos meses recentes definem o mês alvo da previsão
	DefaultRecentWindow = 12
	minTrainingMonths   = 2
)

// PredictNextMonth ajusta a reta com todos os meses do produto e extrapola para o mês
// seguinte ao último mês da janela recente.
func PredictNextMonth(aggregates []domain.MonthlyAggregate, productID string, recentWindow int) (*domain.Forecast, error) {
	history := productHistory(aggregates, productID)
	if len(history) < minTrainingMonths {
		return nil, newInsufficientDataError(productID, len(history))
	}

	if recentWindow < 1 {
		recentWindow = DefaultRecentWindow
	}
	recent := history
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	line := FitTrendLine(history)

	last := recent[len(recent)-1]
	nextMonthNum := last.MonthNum + 1
	nextMonth := last.YearMonth.AddDate(0, 1, 0)

	return &domain.Forecast{
		YearMonth:         nextMonth.Format(utils.DayMonthYear),
		PredictedQuantity: line.Predict(nextMonthNum),
	}, nil
}

// productHistory filtra o produto e ordena por month_num, sem depender da ordem de entrada
func productHistory(aggregates []domain.MonthlyAggregate, productID string) []domain.MonthlyAggregate {
	var history []domain.MonthlyAggregate
	for _, a := range aggregates {
		if a.ProductID == productID {
			history = append(history, a)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].MonthNum < history[j].MonthNum
	})

	return history
}
