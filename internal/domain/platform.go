package domain

import (
	"fmt"
	"strings"
)

// Platform identifica a loja de origem dos dados
type Platform int

const (
	AppStore Platform = iota + 1
	GooglePlay
)

// Platforms é a lista fixa de plataformas, na ordem usada pelos gráficos e grids
var Platforms = []Platform{AppStore, GooglePlay}

var platformLabels = map[Platform]string{
	AppStore:   "App Store",
	GooglePlay: "Google Play",
}

// String retorna o rótulo usado nos exports das lojas
func (p Platform) String() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// ParsePlatform aceita os rótulos do export ("App Store", "Google Play"),
// ignorando caixa e espaços
func ParsePlatform(s string) (Platform, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch normalized {
	case "appstore":
		return AppStore, nil
	case "googleplay":
		return GooglePlay, nil
	}
	return 0, fmt.Errorf("plataforma desconhecida: %q", s)
}

func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
