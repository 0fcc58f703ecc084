package domain

import "sort"

// CountryLookup mapeia código ISO -> nome do país. Somente leitura depois de construída.
type CountryLookup struct {
	names map[string]string
}

// NewCountryLookup copia o mapa recebido; alterações posteriores no mapa não afetam a tabela
func NewCountryLookup(names map[string]string) CountryLookup {
	copied := make(map[string]string, len(names))
	for code, name := range names {
		copied[code] = name
	}
	return CountryLookup{names: copied}
}

// Name retorna o nome do país para o código, se existir
func (c CountryLookup) Name(code string) (string, bool) {
	name, ok := c.names[code]
	return name, ok
}

func (c CountryLookup) Len() int {
	return len(c.names)
}

// Codes retorna os códigos em ordem alfabética
func (c CountryLookup) Codes() []string {
	codes := make([]string, 0, len(c.names))
	for code := range c.names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
