// Пакет store — in-memory хранилище записей сайта (Record Store).
// Четыре коллекции: проекты, клиенты, заявки, подписчики.
// Записи только добавляются; единственная мутация на месте — замена
// изображения проекта или клиента. Состояние живёт до рестарта процесса.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/agency-site/internal/domain/model"
)

// Имена коллекций (используются в событиях и метриках).
const (
	CollectionProjects    = "projects"
	CollectionClients     = "clients"
	CollectionContacts    = "contacts"
	CollectionSubscribers = "subscribers"
)

// recordsAddedTotal — количество добавленных записей по коллекциям.
var recordsAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "as_store_records_added_total",
		Help: "Количество записей, добавленных в in-memory хранилище",
	},
	[]string{"collection"},
)

// Store — хранилище записей. Создаётся явно и передаётся в сервисы и
// обработчики; глобального экземпляра нет.
//
// HTTP-обработчики работают в разных горутинах, поэтому мутации
// сериализуются мьютексом, а читатели получают копии коллекций.
type Store struct {
	mu          sync.RWMutex
	projects    []model.Project
	clients     []model.Client
	contacts    []model.ContactSubmission
	subscribers []model.Subscriber

	now   func() time.Time
	newID func() string

	obsMu     sync.Mutex
	observers map[int]func(Event)
	nextObsID int
	// pubMu удерживается на время мутации и доставки события,
	// поэтому наблюдатели видят события в порядке мутаций.
	pubMu sync.Mutex
}

// Option — функциональная опция Store.
type Option func(*Store)

// WithClock задаёт источник времени для timestamp заявок и подписчиков.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator задаёт генератор идентификаторов.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New создаёт пустое хранилище.
func New(opts ...Option) *Store {
	s := &Store{
		now:       time.Now,
		newID:     uuid.NewString,
		observers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats — размеры коллекций.
type Stats struct {
	Projects    int `json:"projects"`
	Clients     int `json:"clients"`
	Contacts    int `json:"contacts"`
	Subscribers int `json:"subscribers"`
}

// AddProject добавляет проект с новым ID. Входные данные не проверяются:
// это ответственность вызывающего кода.
func (s *Store) AddProject(p model.NewProject) model.Project {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	rec := model.Project{
		ID:          s.newID(),
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
	s.projects = append(s.projects, rec)
	idx := len(s.projects) - 1
	s.mu.Unlock()

	recordsAddedTotal.WithLabelValues(CollectionProjects).Inc()
	s.publish(Event{Kind: EventAdded, Collection: CollectionProjects, Index: idx, ID: rec.ID})
	return rec
}

// AddClient добавляет клиента с новым ID.
func (s *Store) AddClient(c model.NewClient) model.Client {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	rec := model.Client{
		ID:          s.newID(),
		Name:        c.Name,
		Designation: c.Designation,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
	s.clients = append(s.clients, rec)
	idx := len(s.clients) - 1
	s.mu.Unlock()

	recordsAddedTotal.WithLabelValues(CollectionClients).Inc()
	s.publish(Event{Kind: EventAdded, Collection: CollectionClients, Index: idx, ID: rec.ID})
	return rec
}

// AddContact добавляет заявку с новым ID и текущим временем.
func (s *Store) AddContact(c model.NewContact) model.ContactSubmission {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	rec := model.ContactSubmission{
		ID:        s.newID(),
		FullName:  c.FullName,
		Email:     c.Email,
		Mobile:    c.Mobile,
		City:      c.City,
		Timestamp: s.now(),
	}
	s.contacts = append(s.contacts, rec)
	idx := len(s.contacts) - 1
	s.mu.Unlock()

	recordsAddedTotal.WithLabelValues(CollectionContacts).Inc()
	s.publish(Event{Kind: EventAdded, Collection: CollectionContacts, Index: idx, ID: rec.ID})
	return rec
}

// AddSubscriber добавляет подписчика с новым ID и текущим временем.
func (s *Store) AddSubscriber(email string) model.Subscriber {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	rec := model.Subscriber{
		ID:        s.newID(),
		Email:     email,
		Timestamp: s.now(),
	}
	s.subscribers = append(s.subscribers, rec)
	idx := len(s.subscribers) - 1
	s.mu.Unlock()

	recordsAddedTotal.WithLabelValues(CollectionSubscribers).Inc()
	s.publish(Event{Kind: EventAdded, Collection: CollectionSubscribers, Index: idx, ID: rec.ID})
	return rec
}

// UpdateProjectImage заменяет изображение проекта по позиции в коллекции.
// Индекс вне диапазона — тихий no-op (возвращает false).
func (s *Store) UpdateProjectImage(index int, url string) bool {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if index < 0 || index >= len(s.projects) {
		s.mu.Unlock()
		return false
	}
	s.projects[index].ImageURL = url
	id := s.projects[index].ID
	s.mu.Unlock()

	s.publish(Event{Kind: EventImageUpdated, Collection: CollectionProjects, Index: index, ID: id})
	return true
}

// UpdateClientImage заменяет изображение клиента по позиции в коллекции.
// Индекс вне диапазона — тихий no-op (возвращает false).
func (s *Store) UpdateClientImage(index int, url string) bool {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if index < 0 || index >= len(s.clients) {
		s.mu.Unlock()
		return false
	}
	s.clients[index].ImageURL = url
	id := s.clients[index].ID
	s.mu.Unlock()

	s.publish(Event{Kind: EventImageUpdated, Collection: CollectionClients, Index: index, ID: id})
	return true
}

// UpdateProjectImageByID заменяет изображение проекта по идентификатору.
func (s *Store) UpdateProjectImageByID(id, url string) bool {
	s.mu.RLock()
	index := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			index = i
			break
		}
	}
	s.mu.RUnlock()

	if index < 0 {
		return false
	}
	// Записи не удаляются и не переупорядочиваются, поэтому позиция стабильна.
	return s.UpdateProjectImage(index, url)
}

// UpdateClientImageByID заменяет изображение клиента по идентификатору.
func (s *Store) UpdateClientImageByID(id, url string) bool {
	s.mu.RLock()
	index := -1
	for i := range s.clients {
		if s.clients[i].ID == id {
			index = i
			break
		}
	}
	s.mu.RUnlock()

	if index < 0 {
		return false
	}
	return s.UpdateClientImage(index, url)
}

// Projects возвращает копию коллекции проектов в порядке добавления.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Clients возвращает копию коллекции клиентов в порядке добавления.
func (s *Store) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Contacts возвращает копию коллекции заявок в порядке добавления.
func (s *Store) Contacts() []model.ContactSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ContactSubmission, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Subscribers возвращает копию коллекции подписчиков в порядке добавления.
func (s *Store) Subscribers() []model.Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Subscriber, len(s.subscribers))
	copy(out, s.subscribers)
	return out
}

// Stats возвращает размеры всех коллекций одним согласованным снимком.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Projects:    len(s.projects),
		Clients:     len(s.clients),
		Contacts:    len(s.contacts),
		Subscribers: len(s.subscribers),
	}
}
