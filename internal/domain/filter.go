package domain

// FilterSet representa a seleção do usuário. Uma dimensão vazia não seleciona nada.
type FilterSet struct {
	Countries []string   `json:"countries"` // nomes de país ou UnknownCountry
	Platforms []Platform `json:"platforms"`
	Months    []string   `json:"months"`           // nomes de mês, usado na visão geral
	Period    *Period    `json:"period,omitempty"` // quando definido, substitui Months (visão detalhada)
}

// WithPeriod retorna uma cópia do filtro restrita a um único período
func (f FilterSet) WithPeriod(p Period) FilterSet {
	f.Period = &p
	return f
}

// Matches indica se a linha passa por todas as dimensões do filtro
func (f FilterSet) Matches(r Record) bool {
	if !containsString(f.Countries, r.CountryKey()) {
		return false
	}

	if !containsPlatform(f.Platforms, r.Platform) {
		return false
	}

	if f.Period != nil {
		return r.Year == f.Period.Year && r.Month == f.Period.Month
	}

	return containsString(f.Months, r.MonthName)
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsPlatform(values []Platform, v Platform) bool {
	for _, p := range values {
		if p == v {
			return true
		}
	}
	return false
}
