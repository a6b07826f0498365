package recording

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de lançamentos
var (
	// Erros de validação
	ErrMissingField  = errors.New("required field is missing")
	ErrNegativeValue = errors.New("value must not be negative")
	ErrPriceFormat   = errors.New("price does not fit the stored precision")

	// Erros de banco de dados
	ErrSaveRecord   = errors.New("error saving record")
	ErrFetchRecords = errors.New("error fetching records from database")

	ErrGenerateID = errors.New("error generating ID")
)

// RecordError é um erro com contexto adicional para lançamentos
type RecordError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(err error, code string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewFieldError cria um RecordError apontando o campo inválido
func NewFieldError(err error, code string, field string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
