package handlers

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/service"
	"github.com/bigkaa/agency-site/internal/store"
	"github.com/bigkaa/agency-site/internal/ui/flash"
	"github.com/bigkaa/agency-site/internal/ui/i18n"
)

// testEnv — роутер с UI-обработчиками поверх seed-хранилища.
type testEnv struct {
	store  *store.Store
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	bundle, err := i18n.LoadEmbedded(logger)
	if err != nil {
		t.Fatalf("Ошибка загрузки каталогов: %v", err)
	}
	toasts, err := flash.NewManager("test-secret", false)
	if err != nil {
		t.Fatalf("Ошибка создания flash.Manager: %v", err)
	}

	st := store.NewSeeded()
	validator := service.NewValidator()
	landing := NewLandingHandler(st,
		service.NewContactService(st, validator, logger),
		service.NewNewsletterService(st, logger),
		toasts, logger)
	admin := NewAdminHandler(st, service.NewCatalogService(st, logger), toasts, logger)

	r := chi.NewRouter()
	r.Use(i18n.Middleware(bundle, "en"))
	r.Get("/", landing.HandleLanding)
	r.Post("/contact", landing.HandleContact)
	r.Post("/subscribe", landing.HandleSubscribe)
	r.Get("/admin", admin.HandleAdmin)
	r.Post("/admin/projects", admin.HandleCreateProject)
	r.Post("/admin/clients", admin.HandleCreateClient)
	r.Post("/admin/projects/{index}/image", admin.HandleProjectImage)
	r.Post("/admin/clients/{index}/image", admin.HandleClientImage)
	r.Post("/set-language", HandleSetLanguage)

	return &testEnv{store: st, router: r}
}

func (e *testEnv) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func flashCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

func validContact() url.Values {
	return url.Values{
		"fullName": {"A Tester"},
		"email":    {"a@b.co"},
		"mobile":   {"1234567890"},
		"city":     {"Pune"},
	}
}

// TestLandingPage проверяет рендер главной страницы с seed-данными.
func TestLandingPage(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get("/")

	if rec.Code != http.StatusOK {
		t.Fatalf("Статус: want 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Mumbai Corporate Tower", "Priya Sharma", `id="contact"`} {
		if !strings.Contains(body, want) {
			t.Errorf("На странице нет %q", want)
		}
	}
}

// TestContactValid проверяет сохранение валидной заявки и уведомление.
func TestContactValid(t *testing.T) {
	env := newTestEnv(t)
	rec := env.post("/contact", validContact())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Статус: want 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/#contact" {
		t.Errorf("Location: want %q, got %q", "/#contact", loc)
	}
	if got := env.store.Stats().Contacts; got != 3 {
		t.Errorf("Заявок: want 3, got %d", got)
	}

	cookie := flashCookie(rec)
	if cookie == nil {
		t.Fatal("Не установлен cookie уведомления")
	}

	// Уведомление показывается на следующей странице, форма пустая
	page := env.get("/", cookie)
	body := page.Body.String()
	if !strings.Contains(body, "Message Sent!") {
		t.Error("Уведомление не показано")
	}
	if strings.Contains(body, `value="A Tester"`) {
		t.Error("Поле формы не очищено")
	}
}

// TestContactInvalid проверяет, что любое нарушенное ограничение не создаёт записей.
func TestContactInvalid(t *testing.T) {
	tests := []struct {
		field   string
		value   string
		message string
	}{
		{"fullName", "A", "Name must be at least 2 characters"},
		{"email", "not-an-email", "Invalid email address"},
		{"mobile", "12345", "Mobile number must be at least 10 digits"},
		{"city", "", "City is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			env := newTestEnv(t)
			form := validContact()
			form.Set(tt.field, tt.value)

			rec := env.post("/contact", form)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("Статус: want 422, got %d", rec.Code)
			}
			if got := env.store.Stats().Contacts; got != 2 {
				t.Errorf("Заявок: want 2, got %d", got)
			}
			body := rec.Body.String()
			if !strings.Contains(body, tt.message) {
				t.Errorf("Нет сообщения %q", tt.message)
			}
			if tt.field != "city" && !strings.Contains(body, `value="Pune"`) {
				t.Error("Введённые значения не сохранены")
			}
			if flashCookie(rec) != nil {
				t.Error("Уведомление не должно ставиться")
			}
		})
	}
}

// TestSubscribe проверяет подписку на рассылку.
func TestSubscribe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post("/subscribe", url.Values{"email": {""}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Статус: want 303, got %d", rec.Code)
	}
	if env.store.Stats().Subscribers != 2 {
		t.Error("Пустой email не должен создавать подписчика")
	}
	if flashCookie(rec) != nil {
		t.Error("Пустой email не должен давать уведомление")
	}

	rec = env.post("/subscribe", url.Values{"email": {"new@example.com"}})
	if env.store.Stats().Subscribers != 3 {
		t.Error("Подписчик не добавлен")
	}
	if flashCookie(rec) == nil {
		t.Error("Нет уведомления о подписке")
	}
}

// TestAdminPage проверяет вкладки и таблицы админ-панели.
func TestAdminPage(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get("/admin?tab=messages")

	if rec.Code != http.StatusOK {
		t.Fatalf("Статус: want 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Amit Kumar",
		"Oct 15, 2023",
		`data-panel="messages" role="tabpanel">`,
		`data-panel="projects" role="tabpanel" hidden>`,
		`action="/admin/projects/2/image"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("На странице нет %q", want)
		}
	}
}

// TestAdminCreateProject проверяет создание проекта и подстановку изображения.
func TestAdminCreateProject(t *testing.T) {
	env := newTestEnv(t)
	rec := env.post("/admin/projects", url.Values{"name": {"X"}, "description": {"Y"}, "imageUrl": {""}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Статус: want 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin?tab=projects" {
		t.Errorf("Location: want %q, got %q", "/admin?tab=projects", loc)
	}

	projects := env.store.Projects()
	if len(projects) != 4 {
		t.Fatalf("Проектов: want 4, got %d", len(projects))
	}
	if projects[3].ImageURL != service.FallbackProjectImage {
		t.Errorf("Изображение: want fallback, got %q", projects[3].ImageURL)
	}
	if flashCookie(rec) == nil {
		t.Error("Нет уведомления об успехе")
	}
}

// TestAdminCreateDropped проверяет тихий отказ при неполной форме.
func TestAdminCreateDropped(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post("/admin/projects", url.Values{"name": {""}, "description": {"Y"}})
	if env.store.Stats().Projects != 3 {
		t.Error("Проект без имени не должен создаваться")
	}
	if flashCookie(rec) != nil {
		t.Error("Отброшенная форма не должна давать уведомление")
	}

	rec = env.post("/admin/clients", url.Values{"name": {"Jane"}, "designation": {"CEO"}})
	if env.store.Stats().Clients != 3 {
		t.Error("Клиент без отзыва не должен создаваться")
	}
	if loc := rec.Header().Get("Location"); loc != "/admin?tab=clients" {
		t.Errorf("Location: want %q, got %q", "/admin?tab=clients", loc)
	}
}

// TestAdminReplaceImage проверяет позиционную замену изображения.
func TestAdminReplaceImage(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantImage []string
	}{
		{
			name: "в диапазоне",
			path: "/admin/projects/1/image",
			wantImage: []string{
				"/static/img/seed/corporate-tower.svg",
				"/new.png",
				"/static/img/seed/ecopack.svg",
			},
		},
		{
			name: "вне диапазона",
			path: "/admin/projects/7/image",
			wantImage: []string{
				"/static/img/seed/corporate-tower.svg",
				"/static/img/seed/fintech-app.svg",
				"/static/img/seed/ecopack.svg",
			},
		},
		{
			name: "не число",
			path: "/admin/projects/abc/image",
			wantImage: []string{
				"/static/img/seed/corporate-tower.svg",
				"/static/img/seed/fintech-app.svg",
				"/static/img/seed/ecopack.svg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.post(tt.path, url.Values{"imageUrl": {"/new.png"}})
			if rec.Code != http.StatusSeeOther {
				t.Fatalf("Статус: want 303, got %d", rec.Code)
			}
			for i, p := range env.store.Projects() {
				if p.ImageURL != tt.wantImage[i] {
					t.Errorf("Проект %d: want %q, got %q", i, tt.wantImage[i], p.ImageURL)
				}
			}
		})
	}
}

// TestAdminReplaceClientImage проверяет замену аватара клиента.
func TestAdminReplaceClientImage(t *testing.T) {
	env := newTestEnv(t)
	env.post("/admin/clients/0/image", url.Values{"imageUrl": {"  /me.png  "}})

	if got := env.store.Clients()[0].ImageURL; got != "/me.png" {
		t.Errorf("Изображение клиента: want %q, got %q", "/me.png", got)
	}
}

// TestSetLanguage проверяет cookie языка и возврат на исходную страницу.
func TestSetLanguage(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/set-language", strings.NewReader("lang=ru"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://localhost:8080/admin?tab=clients")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Статус: want 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin?tab=clients" {
		t.Errorf("Location: want %q, got %q", "/admin?tab=clients", loc)
	}

	var lang *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == i18n.LangCookieName {
			lang = c
		}
	}
	if lang == nil || lang.Value != "ru" {
		t.Fatalf("Cookie lang: want ru, got %v", lang)
	}

	page := env.get("/", lang)
	if !strings.Contains(page.Body.String(), "Наши проекты") {
		t.Error("Страница не переведена на русский")
	}
}

// TestBackTarget проверяет, что redirect не уходит на чужой хост.
func TestBackTarget(t *testing.T) {
	tests := map[string]string{
		"":                            "/",
		"http://example.com/admin":    "/admin",
		"http://example.com/?tab=x":   "/?tab=x",
		"http://example.com//evil.io": "/",
		"javascript:alert(1)":         "/",
	}
	for in, want := range tests {
		if got := backTarget(in); got != want {
			t.Errorf("backTarget(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestEventsStream проверяет пересылку событий хранилища в SSE-поток.
func TestEventsStream(t *testing.T) {
	st := store.New()
	h := NewEventsHandler(st, time.Hour, slog.New(slog.DiscardHandler))
	srv := httptest.NewServer(http.HandlerFunc(h.HandleEvents))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("Ошибка создания запроса: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Ошибка подключения: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type: want text/event-stream, got %q", ct)
	}

	reader := bufio.NewReader(resp.Body)
	// Первая строка "retry" означает, что подписка уже оформлена
	line, err := reader.ReadString('\n')
	if err != nil || !strings.HasPrefix(line, "retry:") {
		t.Fatalf("Ожидалась строка retry, got %q (%v)", line, err)
	}

	p := st.AddProject(model.NewProject{Name: "X", Description: "Y"})

	for {
		line, err = reader.ReadString('\n')
		if err != nil {
			t.Fatalf("Поток закрыт до события: %v", err)
		}
		if strings.HasPrefix(line, "data: ") {
			break
		}
	}
	if !strings.Contains(line, `"id":"`+p.ID+`"`) || !strings.Contains(line, `"collection":"projects"`) {
		t.Errorf("Неожиданные данные события: %q", line)
	}
}

// TestAdminLiveRefreshKeepsToast проверяет, что фоновое обновление списков
// не забирает уведомление, поставленное перед redirect.
func TestAdminLiveRefreshKeepsToast(t *testing.T) {
	env := newTestEnv(t)

	created := env.post("/admin/projects", url.Values{"name": {"X"}, "description": {"Y"}})
	cookie := flashCookie(created)
	if cookie == nil {
		t.Fatal("Не установлен cookie уведомления")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin?tab=projects", nil)
	req.Header.Set(LiveRefreshHeader, "1")
	req.AddCookie(cookie)
	refresh := httptest.NewRecorder()
	env.router.ServeHTTP(refresh, req)

	if refresh.Code != http.StatusOK {
		t.Fatalf("Статус обновления: want 200, got %d", refresh.Code)
	}
	for _, c := range refresh.Result().Cookies() {
		if c.Name == flash.CookieName {
			t.Errorf("Фоновое обновление изменило cookie уведомления: MaxAge=%d", c.MaxAge)
		}
	}
	if strings.Contains(refresh.Body.String(), "Project added successfully") {
		t.Error("Уведомление показано в фоновом обновлении")
	}
	if !strings.Contains(refresh.Body.String(), "<h4 class=\"card-title small\">X</h4>") {
		t.Error("Новый проект отсутствует в обновлённом списке")
	}

	// Страница после redirect получает уведомление
	page := env.get("/admin?tab=projects", cookie)
	if !strings.Contains(page.Body.String(), "Project added successfully") {
		t.Error("Уведомление потеряно после фонового обновления")
	}
}
