package domain

// Forecast representa a previsão de quantidade para o mês seguinte
type Forecast struct {
	YearMonth         string  `json:"year_month"` // Formato dd-mm-yyyy
	PredictedQuantity float64 `json:"predicted_quantity"`
}

// TrendLine é a reta quantity = Slope * month_num + Intercept
type TrendLine struct {
	Slope     float64
	Intercept float64
}

func (l TrendLine) Predict(monthNum int) float64 {
	return l.Slope*float64(monthNum) + l.Intercept
}
