package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func encodeUTF16(t *testing.T, s string) []byte {
	t.Helper()
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return encoded
}

func TestRead_StatsUTF16(t *testing.T) {
	content := " Date \tCountry / Region\tRevenue ($)\n2024-01-01\tUS\t10.5\n2024-01-02\tBR\t3\n"

	table, err := Read(bytes.NewReader(encodeUTF16(t, content)), "monthly_stats.csv", StatsFormat)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Country / Region", "Revenue ($)"}, table.Header)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024-01-01", "US", "10.5"}, table.Rows[0])

	idx, ok := table.Index("Revenue ($)")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = table.Index("Downloads")
	assert.False(t, ok)
}

func TestRead_CountryUTF8ComBOM(t *testing.T) {
	content := "\ufeffCode ,Name\nUS,United States\nBR,Brazil\n"

	table, err := Read(strings.NewReader(content), "country_iso.csv", CountryFormat)
	require.NoError(t, err)

	assert.Equal(t, []string{"Code", "Name"}, table.Header)
	assert.Equal(t, [][]string{{"US", "United States"}, {"BR", "Brazil"}}, table.Rows)
}

func TestRead_Erros(t *testing.T) {
	t.Run("Arquivo vazio", func(t *testing.T) {
		_, err := Read(strings.NewReader(""), "vazio.csv", CountryFormat)
		assert.ErrorContains(t, err, "vazio.csv")
	})

	t.Run("Linha com número de colunas diferente do cabeçalho", func(t *testing.T) {
		_, err := Read(strings.NewReader("Code,Name\nUS\n"), "country_iso.csv", CountryFormat)
		assert.ErrorContains(t, err, "country_iso.csv")
	})

	t.Run("Codificação desconhecida", func(t *testing.T) {
		_, err := Read(strings.NewReader("a"), "x.csv", Format{Delimiter: ',', Encoding: "latin-9"})
		assert.Error(t, err)
	})
}

func TestReader_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "country_iso.csv")
	require.NoError(t, os.WriteFile(path, []byte("Code,Name\nUS,United States\n"), 0o600))

	table, err := NewReader().ReadFile(path, CountryFormat)
	require.NoError(t, err)
	assert.Equal(t, path, table.Name)
	assert.Len(t, table.Rows, 1)

	_, err = NewReader().ReadFile(filepath.Join(dir, "nao_existe.csv"), CountryFormat)
	assert.ErrorContains(t, err, "nao_existe.csv")
}
