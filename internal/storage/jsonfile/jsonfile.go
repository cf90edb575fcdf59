package jsonfile

import (
	"context"
	"fmt"
	"os"

	"school-service/internal/models"
)

// Storage keeps every resource in memory and mirrors each one to a JSON
// array file under the configured directory.
type Storage struct {
	teachers      *collection[models.Teacher]
	students      *collection[models.Student]
	professionals *collection[models.Professional]
	events        *collection[models.Event]
	appointments  *collection[models.Appointment]
	users         *collection[models.User]
}

func New(dir string) (*Storage, error) {
	const op = "storage.jsonfile.New"

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	teachers, err := newCollection(dir, "teachers",
		func(t models.Teacher) string { return t.ID },
		func(t models.Teacher) string { return t.Name })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	students, err := newCollection(dir, "students",
		func(s models.Student) string { return s.ID },
		func(s models.Student) string { return s.Name })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	professionals, err := newCollection(dir, "professionals",
		func(p models.Professional) string { return p.ID },
		func(p models.Professional) string { return p.Name })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events, err := newCollection(dir, "events",
		func(e models.Event) string { return e.ID },
		func(e models.Event) string { return e.Description })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	appointments, err := newCollection(dir, "appointments",
		func(a models.Appointment) string { return a.ID },
		func(a models.Appointment) string { return a.Student })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := newCollection(dir, "users",
		func(u models.User) string { return u.ID },
		func(u models.User) string { return u.Name })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		teachers:      teachers,
		students:      students,
		professionals: professionals,
		events:        events,
		appointments:  appointments,
		users:         users,
	}, nil
}

func (s *Storage) Close() error {
	return nil
}

// Teachers

func (s *Storage) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.teachers.list()
}

func (s *Storage) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	return s.teachers.get(id)
}

func (s *Storage) SearchTeachers(ctx context.Context, query string) ([]models.Teacher, error) {
	return s.teachers.search(query)
}

func (s *Storage) CreateTeacher(ctx context.Context, teacher models.Teacher) error {
	return s.teachers.create(teacher)
}

func (s *Storage) UpdateTeacher(ctx context.Context, teacher models.Teacher) (*models.Teacher, error) {
	return s.teachers.update(teacher.ID, teacher)
}

func (s *Storage) DeleteTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	return s.teachers.delete(id)
}

// Students

func (s *Storage) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.students.list()
}

func (s *Storage) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.students.get(id)
}

func (s *Storage) SearchStudents(ctx context.Context, query string) ([]models.Student, error) {
	return s.students.search(query)
}

func (s *Storage) CreateStudent(ctx context.Context, student models.Student) error {
	return s.students.create(student)
}

func (s *Storage) UpdateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	return s.students.update(student.ID, student)
}

func (s *Storage) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.students.delete(id)
}

// Professionals

func (s *Storage) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	return s.professionals.list()
}

func (s *Storage) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	return s.professionals.get(id)
}

func (s *Storage) SearchProfessionals(ctx context.Context, query string) ([]models.Professional, error) {
	return s.professionals.search(query)
}

func (s *Storage) CreateProfessional(ctx context.Context, professional models.Professional) error {
	return s.professionals.create(professional)
}

func (s *Storage) UpdateProfessional(ctx context.Context, professional models.Professional) (*models.Professional, error) {
	return s.professionals.update(professional.ID, professional)
}

func (s *Storage) DeleteProfessional(ctx context.Context, id string) (*models.Professional, error) {
	return s.professionals.delete(id)
}

// Events

func (s *Storage) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.list()
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.events.get(id)
}

func (s *Storage) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	return s.events.search(query)
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) error {
	return s.events.create(event)
}

func (s *Storage) UpdateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	return s.events.update(event.ID, event)
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.events.delete(id)
}

// Appointments

func (s *Storage) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.list()
}

func (s *Storage) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointments.get(id)
}

func (s *Storage) SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error) {
	return s.appointments.search(query)
}

func (s *Storage) CreateAppointment(ctx context.Context, appointment models.Appointment) error {
	return s.appointments.create(appointment)
}

func (s *Storage) UpdateAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error) {
	return s.appointments.update(appointment.ID, appointment)
}

func (s *Storage) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointments.delete(id)
}

// Users

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.list()
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.get(id)
}

func (s *Storage) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return s.users.search(query)
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	return s.users.create(user)
}

func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	return s.users.update(user.ID, user)
}

func (s *Storage) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.delete(id)
}
