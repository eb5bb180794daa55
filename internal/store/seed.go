package store

import (
	"time"

	"github.com/bigkaa/agency-site/internal/domain/model"
)

// Seed-данные: фиксированный набор записей, которым хранилище
// заполняется при старте процесса.

func seedProjects() []model.Project {
	return []model.Project{
		{
			ID:          "1",
			Name:        "Mumbai Corporate Tower",
			Description: "A modern architectural marvel featuring sustainable glass facades and eco-friendly materials in the heart of Mumbai's financial district.",
			ImageURL:    "/static/img/seed/corporate-tower.svg",
		},
		{
			ID:          "2",
			Name:        "Bangalore FinTech App",
			Description: "A sleek and intuitive mobile banking application designed for tech-savvy users across India.",
			ImageURL:    "/static/img/seed/fintech-app.svg",
		},
		{
			ID:          "3",
			Name:        "Delhi EcoPack Initiative",
			Description: "Revolutionary biodegradable packaging design for a leading organic food brand operating across North India.",
			ImageURL:    "/static/img/seed/ecopack.svg",
		},
	}
}

func seedClients() []model.Client {
	return []model.Client{
		{
			ID:          "1",
			Name:        "Priya Sharma",
			Designation: "CEO, TechFlow India",
			Description: "Working with this team was a game-changer. They understood our vision perfectly and delivered beyond expectations for our Mumbai operations.",
			ImageURL:    "/static/img/seed/client-priya.svg",
		},
		{
			ID:          "2",
			Name:        "Rajesh Patel",
			Designation: "Founder, GreenEarth Solutions",
			Description: "The creativity and attention to detail shown in our rebranding project were outstanding. Highly recommended for companies across India!",
			ImageURL:    "/static/img/seed/client-rajesh.svg",
		},
		{
			ID:          "3",
			Name:        "Anya Desai",
			Designation: "Marketing Director, StyleHub Bangalore",
			Description: "A professional team that delivers results. Our new campaign assets have significantly boosted engagement in the Indian market.",
			ImageURL:    "/static/img/seed/client-anya.svg",
		},
	}
}

func seedContacts() []model.ContactSubmission {
	return []model.ContactSubmission{
		{
			ID:        "1",
			FullName:  "Amit Kumar",
			Email:     "amit.kumar@example.com",
			Mobile:    "+91 98765 43210",
			City:      "Mumbai",
			Timestamp: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			FullName:  "Sneha Gupta",
			Email:     "sneha.gupta@example.com",
			Mobile:    "+91 99876 54321",
			City:      "Bangalore",
			Timestamp: time.Date(2023, time.October, 16, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedSubscribers() []model.Subscriber {
	return []model.Subscriber{
		{ID: "1", Email: "newsletter@delhi.in", Timestamp: time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Email: "updates@hyderabad.tech", Timestamp: time.Date(2023, time.September, 5, 0, 0, 0, 0, time.UTC)},
	}
}

// NewSeeded создаёт хранилище, заполненное seed-данными.
// Seed-записи не публикуют событий и не учитываются в метриках добавления.
func NewSeeded(opts ...Option) *Store {
	s := New(opts...)
	s.projects = seedProjects()
	s.clients = seedClients()
	s.contacts = seedContacts()
	s.subscribers = seedSubscribers()
	return s
}
