// language.go — обработчик переключения языка UI.
package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bigkaa/agency-site/internal/ui/i18n"
)

// langCookieMaxAge — выбранный язык хранится год.
const langCookieMaxAge = 365 * 24 * 60 * 60

// HandleSetLanguage обрабатывает POST /set-language.
// Устанавливает cookie "lang" и возвращает на страницу, с которой пришёл запрос.
func HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("lang")
	if !i18n.IsSupported(lang) {
		lang = "en"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     i18n.LangCookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   langCookieMaxAge,
		HttpOnly: false, // JS может читать для UI-логики
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})

	http.Redirect(w, r, backTarget(r.Header.Get("Referer")), http.StatusSeeOther)
}

// backTarget оставляет от Referer только путь и query, чтобы redirect
// не уводил на чужой хост.
func backTarget(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
