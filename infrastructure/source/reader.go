// Package source lê os exports tabulares brutos (stats mensais, diários e tabela de países)
package source

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifica a codificação de texto do arquivo
type Encoding string

const (
	UTF8  Encoding = "utf-8"
	UTF16 Encoding = "utf-16"
)

// Format descreve delimitador e codificação de um arquivo de origem
type Format struct {
	Delimiter rune
	Encoding  Encoding
}

var (
	// StatsFormat é o formato dos exports mensal e diário (TSV em UTF-16)
	StatsFormat = Format{Delimiter: '\t', Encoding: UTF16}
	// CountryFormat é o formato da tabela de códigos ISO (CSV em UTF-8)
	CountryFormat = Format{Delimiter: ',', Encoding: UTF8}
)

// Table é o conteúdo bruto de um arquivo: cabeçalho e linhas como texto
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Index retorna a posição da coluna no cabeçalho
func (t *Table) Index(column string) (int, bool) {
	for i, h := range t.Header {
		if h == column {
			return i, true
		}
	}
	return -1, false
}

// Reader abstrai a leitura dos arquivos de origem
type Reader interface {
	ReadFile(path string, format Format) (*Table, error)
}

type fileReader struct{}

func NewReader() Reader {
	return &fileReader{}
}

// ReadFile abre e lê o arquivo no formato informado
func (fileReader) ReadFile(path string, format Format) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo %s", path)
	}
	defer f.Close()

	table, err := Read(f, path, format)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"columns": len(table.Header),
		"rows":    len(table.Rows),
	}).Debug("Arquivo de origem lido")

	return table, nil
}

// Read decodifica e interpreta o conteúdo. Os nomes de coluna são normalizados com trim.
func Read(r io.Reader, name string, format Format) (*Table, error) {
	decoder, err := decoderFor(format.Encoding)
	if err != nil {
		return nil, errors.Wrapf(err, "arquivo %s", name)
	}

	csvReader := csv.NewReader(transform.NewReader(r, decoder))
	csvReader.Comma = format.Delimiter
	csvReader.LazyQuotes = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar arquivo %s", name)
	}

	if len(records) == 0 {
		return nil, errors.Errorf("arquivo %s está vazio", name)
	}

	header := make([]string, len(records[0]))
	for i, column := range records[0] {
		header[i] = strings.TrimSpace(column)
	}

	return &Table{
		Name:   name,
		Header: header,
		Rows:   records[1:],
	}, nil
}

func decoderFor(enc Encoding) (*encoding.Decoder, error) {
	switch Encoding(strings.ToLower(string(enc))) {
	case UTF16, "utf16":
		// O BOM define a ordem dos bytes; sem BOM assume little endian
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case UTF8, "utf8", "":
		return unicode.UTF8BOM.NewDecoder(), nil
	}
	return nil, errors.Errorf("codificação não suportada: %s", enc)
}
