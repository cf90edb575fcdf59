package redisdoc

import (
	"context"

	"school-service/internal/models"
)

const (
	resourceTeachers      = "teachers"
	resourceStudents      = "students"
	resourceProfessionals = "professionals"
	resourceEvents        = "events"
	resourceAppointments  = "appointments"
	resourceUsers         = "users"
)

// Teachers

func (s *Storage) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return listDocs[models.Teacher](ctx, s.client, resourceTeachers)
}

func (s *Storage) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	return getDoc[models.Teacher](ctx, s.client, resourceTeachers, id)
}

func (s *Storage) SearchTeachers(ctx context.Context, query string) ([]models.Teacher, error) {
	return searchDocs(ctx, s.client, resourceTeachers, query,
		func(t models.Teacher) string { return t.Name })
}

func (s *Storage) CreateTeacher(ctx context.Context, teacher models.Teacher) error {
	return createDoc(ctx, s.client, resourceTeachers, teacher.ID, teacher)
}

func (s *Storage) UpdateTeacher(ctx context.Context, teacher models.Teacher) (*models.Teacher, error) {
	return updateDoc(ctx, s.client, resourceTeachers, teacher.ID, teacher)
}

func (s *Storage) DeleteTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	return deleteDoc[models.Teacher](ctx, s.client, resourceTeachers, id)
}

// Students

func (s *Storage) ListStudents(ctx context.Context) ([]models.Student, error) {
	return listDocs[models.Student](ctx, s.client, resourceStudents)
}

func (s *Storage) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return getDoc[models.Student](ctx, s.client, resourceStudents, id)
}

func (s *Storage) SearchStudents(ctx context.Context, query string) ([]models.Student, error) {
	return searchDocs(ctx, s.client, resourceStudents, query,
		func(st models.Student) string { return st.Name })
}

func (s *Storage) CreateStudent(ctx context.Context, student models.Student) error {
	return createDoc(ctx, s.client, resourceStudents, student.ID, student)
}

func (s *Storage) UpdateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	return updateDoc(ctx, s.client, resourceStudents, student.ID, student)
}

func (s *Storage) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	return deleteDoc[models.Student](ctx, s.client, resourceStudents, id)
}

// Professionals

func (s *Storage) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	return listDocs[models.Professional](ctx, s.client, resourceProfessionals)
}

func (s *Storage) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	return getDoc[models.Professional](ctx, s.client, resourceProfessionals, id)
}

func (s *Storage) SearchProfessionals(ctx context.Context, query string) ([]models.Professional, error) {
	return searchDocs(ctx, s.client, resourceProfessionals, query,
		func(p models.Professional) string { return p.Name })
}

func (s *Storage) CreateProfessional(ctx context.Context, professional models.Professional) error {
	return createDoc(ctx, s.client, resourceProfessionals, professional.ID, professional)
}

func (s *Storage) UpdateProfessional(ctx context.Context, professional models.Professional) (*models.Professional, error) {
	return updateDoc(ctx, s.client, resourceProfessionals, professional.ID, professional)
}

func (s *Storage) DeleteProfessional(ctx context.Context, id string) (*models.Professional, error) {
	return deleteDoc[models.Professional](ctx, s.client, resourceProfessionals, id)
}

// Events

func (s *Storage) ListEvents(ctx context.Context) ([]models.Event, error) {
	return listDocs[models.Event](ctx, s.client, resourceEvents)
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return getDoc[models.Event](ctx, s.client, resourceEvents, id)
}

func (s *Storage) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	return searchDocs(ctx, s.client, resourceEvents, query,
		func(e models.Event) string { return e.Description })
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) error {
	return createDoc(ctx, s.client, resourceEvents, event.ID, event)
}

func (s *Storage) UpdateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	return updateDoc(ctx, s.client, resourceEvents, event.ID, event)
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) (*models.Event, error) {
	return deleteDoc[models.Event](ctx, s.client, resourceEvents, id)
}

// Appointments

func (s *Storage) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return listDocs[models.Appointment](ctx, s.client, resourceAppointments)
}

func (s *Storage) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return getDoc[models.Appointment](ctx, s.client, resourceAppointments, id)
}

func (s *Storage) SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error) {
	return searchDocs(ctx, s.client, resourceAppointments, query,
		func(a models.Appointment) string { return a.Student })
}

func (s *Storage) CreateAppointment(ctx context.Context, appointment models.Appointment) error {
	return createDoc(ctx, s.client, resourceAppointments, appointment.ID, appointment)
}

func (s *Storage) UpdateAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error) {
	return updateDoc(ctx, s.client, resourceAppointments, appointment.ID, appointment)
}

func (s *Storage) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return deleteDoc[models.Appointment](ctx, s.client, resourceAppointments, id)
}

// Users

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	return listDocs[models.User](ctx, s.client, resourceUsers)
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	return getDoc[models.User](ctx, s.client, resourceUsers, id)
}

func (s *Storage) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return searchDocs(ctx, s.client, resourceUsers, query,
		func(u models.User) string { return u.Name })
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	return createDoc(ctx, s.client, resourceUsers, user.ID, user)
}

func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	return updateDoc(ctx, s.client, resourceUsers, user.ID, user)
}

func (s *Storage) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	return deleteDoc[models.User](ctx, s.client, resourceUsers, id)
}
