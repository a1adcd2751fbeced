package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput cobre arquivo ausente/ilegível, colunas obrigatórias ausentes e valores não interpretáveis
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientData indica menos de dois meses agregados para o produto
	ErrInsufficientData = errors.New("insufficient data to forecast")
)

// InputError é um erro de leitura da base de vendas com contexto de origem
type InputError struct {
	Source string // Caminho do arquivo ou nome da tabela
	Row    int    // Linha de origem (1 = cabeçalho), 0 quando não se aplica
	Column string
	Err    error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInvalidInput, e.Source)
	if e.Row > 0 {
		msg = fmt.Sprintf("%s row %d", msg, e.Row)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s column %s", msg, e.Column)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrInvalidInput) mantendo a causa no Unwrap
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
