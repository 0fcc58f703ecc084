package cleaning

import (
	"errors"
	"fmt"
)

// Erros de carregamento. Todos são fatais: nenhum snapshot é exposto se algum ocorrer.
var (
	// Erros de schema
	ErrMissingColumn        = errors.New("coluna obrigatória ausente")
	ErrDuplicateCountryCode = errors.New("código de país duplicado")
	ErrReservedCountryName  = errors.New("nome de país reservado para códigos sem correspondência")

	// Erros de parse
	ErrInvalidDate     = errors.New("data inválida")
	ErrInvalidNumber   = errors.New("valor numérico inválido")
	ErrNegativeValue   = errors.New("valor negativo não permitido")
	ErrInvalidPlatform = errors.New("plataforma inválida")
)

// SchemaError indica que o arquivo não possui o formato esperado
type SchemaError struct {
	Err    error  // Erro base
	File   string // Arquivo de origem
	Column string // Coluna envolvida
}

// Error implementa a interface error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s: coluna %q", e.File, e.Err.Error(), e.Column)
}

// Unwrap retorna o erro subjacente
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ParseError identifica o valor que não pôde ser interpretado
type ParseError struct {
	Err    error  // Erro base
	File   string // Arquivo de origem
	Row    int    // Linha no arquivo (o cabeçalho é a linha 1)
	Column string // Coluna canônica
	Value  string // Valor original
}

// Error implementa a interface error
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s na coluna %s: %q", e.File, e.Row, e.Err.Error(), e.Column, e.Value)
}

// Unwrap retorna o erro subjacente
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newSchemaError(err error, file, column string) *SchemaError {
	return &SchemaError{Err: err, File: file, Column: column}
}

func newParseError(err error, file string, row int, column, value string) *ParseError {
	return &ParseError{Err: err, File: file, Row: row, Column: column, Value: value}
}

// IsLoadError verifica se o erro veio da validação dos arquivos de origem
func IsLoadError(err error) bool {
	var schemaErr *SchemaError
	var parseErr *ParseError
	return errors.As(err, &schemaErr) || errors.As(err, &parseErr)
}
