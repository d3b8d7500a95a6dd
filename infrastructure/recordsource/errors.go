package recordsource

import (
	"errors"
	"fmt"
)

// DataFetchError indica falha de transporte ou autenticação ao alcançar a
// fonte de dados. O ciclo de atualização que a recebeu é abortado por inteiro;
// o estado anterior é preservado.
type DataFetchError struct {
	Op  string // Operação que falhou (ex: "records", "stores")
	Err error  // Causa original
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("falha ao buscar dados da fonte (%s): %v", e.Op, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// NewDataFetchError embrulha a causa de uma falha de leitura da fonte.
func NewDataFetchError(op string, err error) *DataFetchError {
	return &DataFetchError{Op: op, Err: err}
}

// IsDataFetchError informa se err é (ou embrulha) um DataFetchError.
func IsDataFetchError(err error) bool {
	var fetchErr *DataFetchError
	return errors.As(err, &fetchErr)
}

// MalformedRecordError indica um registro com campo numérico obrigatório
// inválido. Só é levantado no modo estrito: a política padrão é leniente e
// converte valores ausentes ou inválidos para zero.
type MalformedRecordError struct {
	Field string
	Value any
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("registro malformado: campo %q com valor não numérico %v", e.Field, e.Value)
}
