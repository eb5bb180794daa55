package store

// EventKind — тип изменения хранилища.
type EventKind string

const (
	// EventAdded — в коллекцию добавлена запись.
	EventAdded EventKind = "added"
	// EventImageUpdated — у записи заменено изображение.
	EventImageUpdated EventKind = "image_updated"
)

// Event — уведомление наблюдателей об изменении хранилища.
type Event struct {
	Kind       EventKind `json:"kind"`
	Collection string    `json:"collection"`
	// Index — позиция записи в коллекции
	Index int    `json:"index"`
	ID    string `json:"id"`
}

// Subscribe регистрирует наблюдателя изменений. Наблюдатель вызывается
// синхронно после применения мутации и не должен сам изменять хранилище.
// Возвращает функцию отписки.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

// publish рассылает событие всем текущим наблюдателям.
func (s *Store) publish(ev Event) {
	s.obsMu.Lock()
	fns := make([]func(Event), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
