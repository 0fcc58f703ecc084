package handler

import (
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator retorna a instância única com as validações de filtro registradas
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := domain.ParsePlatform(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return domain.MonthIndex(fl.Field().String()) >= 0
		})
	})
	return validate
}

// LoginRequest é o corpo de POST /v1/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// dashboardQuery guarda os filtros da query string. Campos nil indicam parâmetro ausente.
type dashboardQuery struct {
	Countries []string `validate:"omitempty,dive,required"`
	Platforms []string `validate:"omitempty,dive,platform"`
	Months    []string `validate:"omitempty,dive,month"`
	Period    string   `validate:"omitempty,datetime=2006-01"`
}

func parseDashboardQuery(q url.Values) dashboardQuery {
	return dashboardQuery{
		Countries: queryList(q, "country"),
		Platforms: queryList(q, "platform"),
		Months:    queryList(q, "month"),
		Period:    strings.TrimSpace(q.Get("period")),
	}
}

// queryList aceita tanto ?k=a&k=b quanto ?k=a,b. Parâmetro ausente retorna nil;
// presente sem valores retorna lista vazia.
func queryList(q url.Values, key string) []string {
	raw, present := q[key]
	if !present {
		return nil
	}

	values := []string{}
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

// invalidField retorna o nome do primeiro campo rejeitado pelo validator,
// sem o índice que o dive acrescenta ("Months[0]" vira "Months")
func invalidField(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return strings.SplitN(validationErrs[0].StructField(), "[", 2)[0]
	}
	return ""
}

// filterSet monta o filtro de domínio. allCountries só é chamado quando o país não foi informado.
func (q dashboardQuery) filterSet(allCountries func() []string) domain.FilterSet {
	f := domain.FilterSet{
		Countries: q.Countries,
		Platforms: append([]domain.Platform{}, domain.Platforms...),
		Months:    q.Months,
	}

	if q.Countries == nil {
		f.Countries = allCountries()
	}

	if q.Platforms != nil {
		f.Platforms = make([]domain.Platform, 0, len(q.Platforms))
		for _, label := range q.Platforms {
			// validateQuery já rejeitou rótulos inválidos
			platform, _ := domain.ParsePlatform(label)
			f.Platforms = append(f.Platforms, platform)
		}
	}

	if q.Months == nil {
		f.Months = domain.MonthNames[:]
	}

	return f
}
