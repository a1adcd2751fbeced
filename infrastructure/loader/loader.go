package loader

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

const (
	columnProductID = "product_id"
	columnName      = "name"
	columnEntryAt   = "entry_at"
	columnQuantity  = "quantity"
)

var requiredColumns = []string{columnProductID, columnName, columnEntryAt, columnQuantity}

// FileLoader lê entradas de venda de um arquivo .csv ou .xlsx
type FileLoader struct {
	path      string
	sheetName string
}

// NewFileLoader cria um loader para o arquivo. sheetName só é usado em planilhas .xlsx;
// vazio seleciona a primeira planilha.
func NewFileLoader(path, sheetName string) *FileLoader {
	return &FileLoader{
		path:      path,
		sheetName: sheetName,
	}
}

func (l *FileLoader) LoadEntries(ctx context.Context) ([]domain.SalesEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(l.path, l.sheetName)
	default:
		return loadCSV(l.path)
	}
}

type timeParser func(value string) (time.Time, error)

// parseRecords converte as linhas lidas (cabeçalho na primeira) em entradas de venda.
// Colunas extras são ignoradas e a ordem das colunas é livre.
func parseRecords(source string, records [][]string, parseTime timeParser) ([]domain.SalesEntry, error) {
	if len(records) == 0 {
		return nil, &domain.InputError{Source: source, Row: 1, Err: errors.New("missing header row")}
	}

	index, err := headerIndex(records[0])
	if err != nil {
		return nil, &domain.InputError{Source: source, Row: 1, Err: err}
	}

	entries := make([]domain.SalesEntry, 0, len(records)-1)
	for i, record := range records[1:] {
		row := i + 2
		if isBlank(record) {
			continue
		}

		entryAt, err := parseTime(cell(record, index[columnEntryAt]))
		if err != nil {
			return nil, &domain.InputError{Source: source, Row: row, Column: columnEntryAt, Err: err}
		}

		quantity, err := parseQuantity(cell(record, index[columnQuantity]))
		if err != nil {
			return nil, &domain.InputError{Source: source, Row: row, Column: columnQuantity, Err: err}
		}

		entries = append(entries, domain.SalesEntry{
			ProductID: cell(record, index[columnProductID]),
			Name:      cell(record, index[columnName]),
			EntryAt:   entryAt,
			Quantity:  quantity,
		})
	}

	return entries, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, column := range header {
		column = strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))
		if _, exists := index[column]; !exists {
			index[column] = i
		}
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return index, nil
}

// parseQuantity aceita inteiros e decimais; célula vazia conta como zero na soma
func parseQuantity(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}

	quantity, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "quantity %q is not numeric", value)
	}

	return quantity, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func parseEntryAt(value string) (time.Time, error) {
	return utils.ParseDateTime(value)
}
