// Пакет i18n — интернационализация страниц сайта.
// Каталоги переводов — плоские JSON (ключ → строка), встроены в бинарник.
// Поддерживаемые языки: English (en), Русский (ru).
// Язык определяется middleware: cookie "lang" → Accept-Language → язык по умолчанию.
package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
)

// Поддерживаемые языки
var (
	// SupportedLanguages — теги поддерживаемых языков, первый — запасной.
	SupportedLanguages = []language.Tag{
		language.English,
		language.Russian,
	}

	matcher = language.NewMatcher(SupportedLanguages)
)

// contextKey — тип ключа для контекста (избегаем коллизий).
type contextKey string

const (
	contextKeyLang   contextKey = "i18n_lang"
	contextKeyBundle contextKey = "i18n_bundle"
)

// Bundle — хранилище переводов для всех языков.
type Bundle struct {
	mu       sync.RWMutex
	catalogs map[string]map[string]string // lang → key → translation
	logger   *slog.Logger
}

// NewBundle создаёт пустой Bundle.
func NewBundle(logger *slog.Logger) *Bundle {
	return &Bundle{
		catalogs: make(map[string]map[string]string),
		logger:   logger,
	}
}

// LoadMessages загружает JSON-каталог переводов для указанного языка.
func (b *Bundle) LoadMessages(lang string, data []byte) error {
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("i18n: ошибка парсинга каталога %s: %w", lang, err)
	}

	b.mu.Lock()
	b.catalogs[lang] = messages
	b.mu.Unlock()

	if b.logger != nil {
		b.logger.Debug("i18n каталог загружен",
			slog.String("lang", lang),
			slog.Int("keys", len(messages)),
		)
	}
	return nil
}

// Translate возвращает перевод по ключу. Порядок поиска: запрошенный язык,
// затем английский; если ключа нет нигде — возвращается сам ключ.
func (b *Bundle) Translate(lang, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.catalogs[lang][key]; ok {
		return msg
	}
	if lang != "en" {
		if msg, ok := b.catalogs["en"][key]; ok {
			return msg
		}
	}
	return key
}

// Translatef возвращает перевод с подстановкой аргументов.
// Формат-строка приходит из каталога, поэтому go vet её не проверяет.
func (b *Bundle) Translatef(lang, key string, args ...any) string {
	template := b.Translate(lang, key)
	if len(args) == 0 {
		return template
	}
	return formatFunc(template, args...)
}

// Keys возвращает множество ключей каталога языка.
func (b *Bundle) Keys(lang string) map[string]struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]struct{}, len(b.catalogs[lang]))
	for k := range b.catalogs[lang] {
		out[k] = struct{}{}
	}
	return out
}

// WithLang помещает язык в контекст.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, contextKeyLang, lang)
}

// LangFromContext извлекает язык из контекста. Default: "en".
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(contextKeyLang).(string); ok && lang != "" {
		return lang
	}
	return "en"
}

// WithBundle помещает Bundle в контекст запроса.
func WithBundle(ctx context.Context, b *Bundle) context.Context {
	return context.WithValue(ctx, contextKeyBundle, b)
}

// BundleFromContext извлекает Bundle из контекста. Может вернуть nil.
func BundleFromContext(ctx context.Context) *Bundle {
	b, _ := ctx.Value(contextKeyBundle).(*Bundle)
	return b
}

// T переводит ключ на язык запроса.
// Без Bundle в контексте возвращает сам ключ.
func T(ctx context.Context, key string) string {
	b := BundleFromContext(ctx)
	if b == nil {
		return key
	}
	return b.Translate(LangFromContext(ctx), key)
}

// Tf — T с подстановкой аргументов.
func Tf(ctx context.Context, key string, args ...any) string {
	b := BundleFromContext(ctx)
	if b == nil {
		return key
	}
	return b.Translatef(LangFromContext(ctx), key, args...)
}

//nolint:govet // формат-строки загружаются из JSON-каталогов
var formatFunc = fmt.Sprintf

// IsSupported сообщает, поддерживается ли язык.
func IsSupported(lang string) bool {
	return lang == "en" || lang == "ru"
}

// MatchLanguage определяет лучший язык из заголовка Accept-Language.
// Возвращает "en" или "ru".
func MatchLanguage(acceptLanguage string) string {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "ru" {
		return "ru"
	}
	return "en"
}
