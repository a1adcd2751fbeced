package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

func TestFitTrendLine(t *testing.T) {
	tests := []struct {
		name          string
		aggregates    []domain.MonthlyAggregate
		wantSlope     float64
		wantIntercept float64
	}{
		{
			name:          "Reta exata",
			aggregates:    []domain.MonthlyAggregate{aggregate("P", 0, 10), aggregate("P", 1, 20), aggregate("P", 2, 30)},
			wantSlope:     10,
			wantIntercept: 10,
		},
		{
			name:          "Dois pontos",
			aggregates:    []domain.MonthlyAggregate{aggregate("X", 0, 5), aggregate("X", 1, 10)},
			wantSlope:     5,
			wantIntercept: 5,
		},
		{
			// x = 1,2,3,4  y = 2,4,5,4  → x̄=2.5 ȳ=3.75 Sxy=3.5 Sxx=5
			name:          "Pontos com ruído",
			aggregates:    []domain.MonthlyAggregate{aggregate("P", 1, 2), aggregate("P", 2, 4), aggregate("P", 3, 5), aggregate("P", 4, 4)},
			wantSlope:     0.7,
			wantIntercept: 2,
		},
		{
			name:          "Tendência de queda",
			aggregates:    []domain.MonthlyAggregate{aggregate("P", 3, 30), aggregate("P", 5, 10)},
			wantSlope:     -10,
			wantIntercept: 60,
		},
		{
			name:          "Mesmo mês com nomes diferentes",
			aggregates:    []domain.MonthlyAggregate{aggregate("P", 4, 3), aggregate("P", 4, 7)},
			wantSlope:     0,
			wantIntercept: 5,
		},
		{
			name:       "Sem pontos",
			aggregates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FitTrendLine(tt.aggregates)
			assert.InDelta(t, tt.wantSlope, line.Slope, 1e-9)
			assert.InDelta(t, tt.wantIntercept, line.Intercept, 1e-9)
		})
	}
}

func TestFitTrendLine_Deterministic(t *testing.T) {
	aggregates := []domain.MonthlyAggregate{
		aggregate("P", 0, 12.5), aggregate("P", 1, 3), aggregate("P", 2, 40.25),
		aggregate("P", 5, 7), aggregate("P", 8, 19.75),
	}

	first := FitTrendLine(aggregates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FitTrendLine(aggregates))
	}
}
