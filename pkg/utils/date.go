package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DayMonthYear é o formato dd-mm-yyyy usado para reportar o mês previsto
const DayMonthYear = "02-01-2006"

// Formatos aceitos para a coluna entry_at, do mais completo ao mais simples
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006-01",
}

// ParseDateTime interpreta datas ISO-8601 com ou sem hora, fração de segundos e fuso
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date format %q", value)
}

// MonthStart trunca a data para o primeiro dia do mês (UTC), mantendo ano e mês do relógio local da data
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween retorna quantos meses separam from de to
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
