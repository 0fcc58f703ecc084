package cleaning

import (
	"sync/atomic"

	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

// Holder guarda o snapshot corrente. Cada requisição lê um ponteiro e trabalha
// sobre ele até o fim; uma recarga apenas troca o ponteiro.
type Holder struct {
	current atomic.Pointer[domain.Bundle]
}

func NewHolder(initial *domain.Bundle) *Holder {
	h := &Holder{}
	h.current.Store(initial)
	return h
}

// Current retorna o snapshot em uso
func (h *Holder) Current() *domain.Bundle {
	return h.current.Load()
}

// Replace publica um novo snapshot e retorna o anterior
func (h *Holder) Replace(bundle *domain.Bundle) *domain.Bundle {
	return h.current.Swap(bundle)
}
