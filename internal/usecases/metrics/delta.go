package metrics

import "math"

// DeltaPct calcula (current - prior) / prior * 100.
// Retorna nil quando prior é zero ou quando algum operando é NaN ou infinito.
func DeltaPct(current, prior float64) *float64 {
	if prior == 0 || !isFinite(current) || !isFinite(prior) {
		return nil
	}

	delta := (current - prior) / prior * 100
	if !isFinite(delta) {
		return nil
	}

	return &delta
}

// DeltaPctOf aplica DeltaPct a valores opcionais; ausência equivale a indefinido
func DeltaPctOf(current, prior *float64) *float64 {
	if current == nil || prior == nil {
		return nil
	}
	return DeltaPct(*current, *prior)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
