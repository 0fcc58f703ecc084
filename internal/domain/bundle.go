package domain

import "time"

// SourceFiles guarda os caminhos dos arquivos que originaram o snapshot
type SourceFiles struct {
	Monthly   string `json:"monthly"`
	Daily     string `json:"daily"`
	Countries string `json:"countries"`
}

// Bundle é o snapshot imutável das tabelas limpas. Nunca é alterado depois do carregamento;
// uma recarga gera um Bundle novo.
type Bundle struct {
	ID        string
	LoadedAt  time.Time
	Sources   SourceFiles
	Monthly   []MonthlyRecord
	Daily     []DailyRecord
	Countries CountryLookup
}

// BundleInfo é o resumo público de um snapshot
type BundleInfo struct {
	ID           string      `json:"id"`
	LoadedAt     time.Time   `json:"loaded_at"`
	Sources      SourceFiles `json:"sources"`
	MonthlyRows  int         `json:"monthly_rows"`
	DailyRows    int         `json:"daily_rows"`
	CountryCodes int         `json:"country_codes"`
}

func (b *Bundle) Info() BundleInfo {
	return BundleInfo{
		ID:           b.ID,
		LoadedAt:     b.LoadedAt,
		Sources:      b.Sources,
		MonthlyRows:  len(b.Monthly),
		DailyRows:    len(b.Daily),
		CountryCodes: b.Countries.Len(),
	}
}
