package handler

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

func TestInvalidField(t *testing.T) {
	t.Run("Erro em elemento de lista retorna o nome do campo", func(t *testing.T) {
		q := parseDashboardQuery(url.Values{"month": {"January", "Dezembro"}})
		assert.Equal(t, "Months", invalidField(getValidator().Struct(q)))
	})

	t.Run("Campo simples não é alterado", func(t *testing.T) {
		q := parseDashboardQuery(url.Values{"period": {"2023/12"}})
		assert.Equal(t, "Period", invalidField(getValidator().Struct(q)))
	})

	t.Run("Erro que não é de validação", func(t *testing.T) {
		assert.Empty(t, invalidField(errors.New("falha")))
	})
}

func TestDashboardQuery_FilterSet(t *testing.T) {
	q := parseDashboardQuery(url.Values{"platform": {"google play"}, "country": {""}})

	f := q.filterSet(func() []string {
		t.Fatal("países informados não devem consultar a lista completa")
		return nil
	})

	assert.Equal(t, []domain.Platform{domain.GooglePlay}, f.Platforms)
	assert.Empty(t, f.Countries)
	assert.NotNil(t, f.Countries)
	assert.Equal(t, domain.MonthNames[:], f.Months)
}
