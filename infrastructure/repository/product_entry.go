package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-forecast/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

const (
	productEntriesTable  = "product_entries pe"
	productEntriesSource = "product_entries"
)

type ProductEntryRepository interface {
	LoadEntries(ctx context.Context) ([]domain.SalesEntry, error)
}

type productEntryRepository struct {
	conn postgres.Queryer
}

func NewProductEntryRepository(conn postgres.Queryer) ProductEntryRepository {
	return &productEntryRepository{
		conn: conn,
	}
}

// LoadEntries lê todas as entradas de venda; o mês zero é calculado sobre a base inteira,
// por isso não há filtro por produto aqui
func (r *productEntryRepository) LoadEntries(ctx context.Context) ([]domain.SalesEntry, error) {
	query, args, err := buildEntriesQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.InputError{Source: productEntriesSource, Err: errors.Wrap(err, "erro ao consultar entradas de produtos")}
	}
	defer rows.Close()

	var entries []domain.SalesEntry
	for rows.Next() {
		var entry domain.SalesEntry
		var quantity decimal.NullDecimal
		if err := rows.Scan(&entry.ProductID, &entry.Name, &entry.EntryAt, &quantity); err != nil {
			return nil, &domain.InputError{Source: productEntriesSource, Row: len(entries) + 1, Err: errors.Wrap(err, "erro ao escanear entrada de produto")}
		}

		// Quantidade nula conta como zero na soma mensal
		entry.Quantity = decimal.Zero
		if quantity.Valid {
			entry.Quantity = quantity.Decimal
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.InputError{Source: productEntriesSource, Err: errors.Wrap(err, "erro ao iterar entradas de produtos")}
	}

	return entries, nil
}

func buildEntriesQuery() (string, []interface{}, error) {
	return squirrel.
		Select("pe.product_id, pe.name, pe.entry_at, pe.quantity").
		From(productEntriesTable).
		Where(squirrel.NotEq{"pe.entry_at": nil}).
		OrderBy("pe.entry_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
