package service

import (
	"context"

	"school-service/internal/models"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Store is the record store contract every backend satisfies. Search
// matches a case-insensitive substring against the resource's primary
// text field. Update replaces the whole record; the id never changes.
type Store interface {
	// Teachers
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, id string) (*models.Teacher, error)
	SearchTeachers(ctx context.Context, query string) ([]models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher models.Teacher) error
	UpdateTeacher(ctx context.Context, teacher models.Teacher) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) (*models.Teacher, error)

	// Students
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	SearchStudents(ctx context.Context, query string) ([]models.Student, error)
	CreateStudent(ctx context.Context, student models.Student) error
	UpdateStudent(ctx context.Context, student models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) (*models.Student, error)

	// Professionals
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)
	SearchProfessionals(ctx context.Context, query string) ([]models.Professional, error)
	CreateProfessional(ctx context.Context, professional models.Professional) error
	UpdateProfessional(ctx context.Context, professional models.Professional) (*models.Professional, error)
	DeleteProfessional(ctx context.Context, id string) (*models.Professional, error)

	// Events
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	SearchEvents(ctx context.Context, query string) ([]models.Event, error)
	CreateEvent(ctx context.Context, event models.Event) error
	UpdateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) (*models.Event, error)

	// Appointments
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment models.Appointment) error
	UpdateAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// Users
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (*models.User, error)
}
