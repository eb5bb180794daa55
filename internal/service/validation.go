// Пакет service — бизнес-логика сайта: обработка форм главной страницы
// и админ-панели поверх in-memory хранилища.
package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты обработки формы (лейбл result метрики).
const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
	resultIgnored  = "ignored"
)

// formSubmissionsTotal — количество отправок форм по исходу.
var formSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "as_form_submissions_total",
		Help: "Количество отправок форм сайта по исходу (accepted, rejected, ignored)",
	},
	[]string{"form", "result"},
)

// FieldErrors — ошибки валидации: имя поля формы → ключ сообщения i18n.
// nil означает, что форма прошла схему.
type FieldErrors map[string]string

// Validator — проверка значений формы по схеме из тегов validate.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создаёт Validator. Имена полей в ошибках берутся из тега form,
// чтобы совпадать с атрибутами name в HTML-формах.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct проверяет структуру и возвращает ошибки по полям.
// На каждое поле — одно сообщение (первое нарушенное ограничение).
func (v *Validator) Struct(s any) FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError — ошибка программиста (передан не struct)
		return FieldErrors{"_": "validation.invalid"}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = MessageKey(fe.Field(), fe.Tag())
	}
	return out
}

// MessageKey формирует ключ i18n для нарушенного ограничения поля.
func MessageKey(field, tag string) string {
	return "validation." + field + "." + tag
}
