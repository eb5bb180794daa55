package pages

import (
	"context"
	"time"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/ui/flash"
	"github.com/bigkaa/agency-site/internal/ui/i18n"
)

// Заглушки изображений для записей без картинки.
const (
	LandingProjectPlaceholder = "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&q=80"
	LandingClientPlaceholder  = "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80"
	AdminPlaceholder          = "/static/img/placeholder.svg"
)

// dateLayout — формат дат в таблицах админ-панели.
const dateLayout = "Jan 02, 2006"

// NavLink — пункт навигации.
type NavLink struct {
	Href     string
	LabelKey string
	// Active — href совпадает с текущим путём (точное совпадение)
	Active bool
}

// Shell — общие данные каркаса страницы.
type Shell struct {
	Lang     string
	TitleKey string
	Nav      []NavLink
	Year     int
	// Toast — уведомление для показа, nil если его нет
	Toast *flash.Message
}

// navItems — пункты навигации в порядке отображения.
var navItems = []NavLink{
	{Href: "/", LabelKey: "nav.home"},
	{Href: "/admin", LabelKey: "nav.admin"},
}

// NewShell собирает каркас для страницы с путём path.
func NewShell(ctx context.Context, path, titleKey string, toast *flash.Message) Shell {
	nav := make([]NavLink, len(navItems))
	for i, item := range navItems {
		item.Active = item.Href == path
		nav[i] = item
	}
	return Shell{
		Lang:     i18n.LangFromContext(ctx),
		TitleKey: titleKey,
		Nav:      nav,
		Year:     time.Now().Year(),
		Toast:    toast,
	}
}

// ProjectCard — карточка проекта.
type ProjectCard struct {
	// Index — позиция в хранилище, адрес для замены изображения
	Index       int
	Name        string
	Description string
	ImageURL    string
}

// ClientCard — карточка клиента (отзыв).
type ClientCard struct {
	Index       int
	Name        string
	Designation string
	Description string
	ImageURL    string
}

// ProjectCards преобразует проекты в карточки; пустая картинка заменяется placeholder.
func ProjectCards(projects []model.Project, placeholder string) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, ProjectCard{
			Index:       i,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    orDefault(p.ImageURL, placeholder),
		})
	}
	return cards
}

// ClientCards преобразует клиентов в карточки.
func ClientCards(clients []model.Client, placeholder string) []ClientCard {
	cards := make([]ClientCard, 0, len(clients))
	for i, c := range clients {
		cards = append(cards, ClientCard{
			Index:       i,
			Name:        c.Name,
			Designation: c.Designation,
			Description: c.Description,
			ImageURL:    orDefault(c.ImageURL, placeholder),
		})
	}
	return cards
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// ContactForm — состояние формы обратной связи.
type ContactForm struct {
	Values model.NewContact
	// Errors — имя поля → ключ сообщения
	Errors map[string]string
}

// LandingData — данные главной страницы.
type LandingData struct {
	Shell    Shell
	Projects []ProjectCard
	Clients  []ClientCard
	Contact  ContactForm
}

// Вкладки админ-панели.
const (
	TabProjects    = "projects"
	TabClients     = "clients"
	TabMessages    = "messages"
	TabSubscribers = "subscribers"
)

// Tab — вкладка админ-панели.
type Tab struct {
	ID       string
	LabelKey string
	Icon     string
	Active   bool
}

var tabItems = []Tab{
	{ID: TabProjects, LabelKey: "admin.tab.projects", Icon: "▦"},
	{ID: TabClients, LabelKey: "admin.tab.clients", Icon: "☺"},
	{ID: TabMessages, LabelKey: "admin.tab.messages", Icon: "✉"},
	{ID: TabSubscribers, LabelKey: "admin.tab.subscribers", Icon: "★"},
}

// ParseTab возвращает известную вкладку или TabProjects.
func ParseTab(s string) string {
	for _, t := range tabItems {
		if t.ID == s {
			return s
		}
	}
	return TabProjects
}

// Tabs возвращает вкладки с отмеченной активной.
func Tabs(active string) []Tab {
	tabs := make([]Tab, len(tabItems))
	for i, t := range tabItems {
		t.Active = t.ID == active
		tabs[i] = t
	}
	return tabs
}

// ContactRow — строка таблицы сообщений.
type ContactRow struct {
	Date     string
	FullName string
	Email    string
	Mobile   string
	City     string
}

// SubscriberRow — строка таблицы подписчиков.
type SubscriberRow struct {
	Date  string
	Email string
}

// ContactRows форматирует заявки для таблицы.
func ContactRows(contacts []model.ContactSubmission) []ContactRow {
	rows := make([]ContactRow, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, ContactRow{
			Date:     c.Timestamp.Format(dateLayout),
			FullName: c.FullName,
			Email:    c.Email,
			Mobile:   c.Mobile,
			City:     c.City,
		})
	}
	return rows
}

// SubscriberRows форматирует подписчиков для таблицы.
func SubscriberRows(subs []model.Subscriber) []SubscriberRow {
	rows := make([]SubscriberRow, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, SubscriberRow{
			Date:  s.Timestamp.Format(dateLayout),
			Email: s.Email,
		})
	}
	return rows
}

// AdminData — данные админ-панели.
type AdminData struct {
	Shell       Shell
	Tabs        []Tab
	ActiveTab   string
	Projects    []ProjectCard
	Clients     []ClientCard
	Contacts    []ContactRow
	Subscribers []SubscriberRow
}
