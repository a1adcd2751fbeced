package loader

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/xuri/excelize/v2"
)

func loadXLSX(path, sheetName string) ([]domain.SalesEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.InputError{Source: path, Err: err}
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &domain.InputError{Source: path, Err: errors.New("workbook has no sheets")}
		}
		sheetName = sheets[0]
	}

	// Valores brutos: datas chegam como número serial do Excel e não no formato de exibição
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &domain.InputError{Source: path, Err: errors.Wrapf(err, "failed to read sheet %q", sheetName)}
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	return parseRecords(path+":"+sheetName, rows, func(value string) (time.Time, error) {
		return parseSheetDate(value, date1904)
	})
}

func parseSheetDate(value string, date1904 bool) (time.Time, error) {
	entryAt, err := parseEntryAt(value)
	if err == nil {
		return entryAt, nil
	}

	serial, convErr := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if convErr != nil {
		return time.Time{}, err
	}

	return excelize.ExcelDateToTime(serial, date1904)
}
