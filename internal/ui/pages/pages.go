// Пакет pages — страницы сайта.
// Разметка хранится во встроенных html/template файлах; наружу каждая
// страница отдаётся как templ.Component, поэтому обработчики рендерят
// её так же, как сгенерированные templ-компоненты: pages.X(data).Render(ctx, w).
package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/bigkaa/agency-site/internal/ui/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

// Наборы шаблонов. Базовые наборы не исполняются, только клонируются
// на каждый рендер, чтобы привязать функцию перевода к языку запроса.
var (
	landingSet = parseSet("templates/layout.html", "templates/partials.html", "templates/landing.html")
	adminSet   = parseSet("templates/layout.html", "templates/partials.html", "templates/admin.html")
)

func parseSet(files ...string) *template.Template {
	return template.Must(template.New("site").Funcs(baseFuncs()).ParseFS(templateFS, files...))
}

// baseFuncs — функции, доступные шаблонам. "t" и "tf" здесь заглушки,
// реальные привязываются в render.
func baseFuncs() template.FuncMap {
	return template.FuncMap{
		"t":        func(key string) string { return key },
		"tf":       func(key string, _ ...any) string { return key },
		"field":    newFieldView,
		"truncate": truncate,
	}
}

// FieldView — данные для частичного шаблона "text-field".
type FieldView struct {
	Name        string
	LabelKey    string
	Placeholder string
	Type        string
	Value       string
	// Error — ключ i18n сообщения об ошибке, пустой если поле валидно
	Error string
}

func newFieldView(name, labelKey, placeholder, typ, value, errKey string) FieldView {
	return FieldView{
		Name:        name,
		LabelKey:    labelKey,
		Placeholder: placeholder,
		Type:        typ,
		Value:       value,
		Error:       errKey,
	}
}

// truncate обрезает строку до n символов (рун) с многоточием.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}

// render создаёт компонент, исполняющий шаблон "layout" набора set.
func render(set *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, err := set.Clone()
		if err != nil {
			return fmt.Errorf("клонирование шаблонов: %w", err)
		}
		tmpl.Funcs(template.FuncMap{
			"t":  func(key string) string { return i18n.T(ctx, key) },
			"tf": func(key string, args ...any) string { return i18n.Tf(ctx, key, args...) },
		})

		layout := tmpl.Lookup("layout")
		if layout == nil {
			return fmt.Errorf("шаблон layout не найден")
		}
		return templ.FromGoHTML(layout, data).Render(ctx, w)
	})
}

// Landing — главная страница.
func Landing(data LandingData) templ.Component {
	return render(landingSet, data)
}

// Admin — админ-панель.
func Admin(data AdminData) templ.Component {
	return render(adminSet, data)
}
