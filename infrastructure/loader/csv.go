package loader

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

func loadCSV(path string) ([]domain.SalesEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.InputError{Source: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &domain.InputError{Source: path, Err: errors.Wrap(err, "failed to read CSV")}
	}

	return parseRecords(path, records, parseEntryAt)
}
