package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"school-service/internal/models"
	"school-service/pkg/response"
)

// #### teachers ####

func (s *Storage) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	const op = "storage.postgres.ListTeachers"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, subjects, email, phone, is_active FROM teachers`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanTeachers(op, rows)
}

func (s *Storage) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	const op = "storage.postgres.GetTeacher"

	var t models.Teacher
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, subjects, email, phone, is_active FROM teachers WHERE id=$1`, id,
	).Scan(&t.ID, &t.Name, pq.Array(&t.Subjects), &t.Email, &t.Phone, &t.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &t, nil
}

func (s *Storage) SearchTeachers(ctx context.Context, query string) ([]models.Teacher, error) {
	const op = "storage.postgres.SearchTeachers"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, subjects, email, phone, is_active FROM teachers WHERE name ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanTeachers(op, rows)
}

func scanTeachers(op string, rows *sql.Rows) ([]models.Teacher, error) {
	teachers := []models.Teacher{}
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(&t.ID, &t.Name, pq.Array(&t.Subjects), &t.Email, &t.Phone, &t.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teachers, nil
}

func (s *Storage) CreateTeacher(ctx context.Context, teacher models.Teacher) error {
	const op = "storage.postgres.CreateTeacher"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO teachers (id, name, subjects, email, phone, is_active) VALUES ($1, $2, $3, $4, $5, $6)`,
		teacher.ID, teacher.Name, pq.Array(teacher.Subjects), teacher.Email, teacher.Phone, teacher.IsActive)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateTeacher(ctx context.Context, teacher models.Teacher) (*models.Teacher, error) {
	const op = "storage.postgres.UpdateTeacher"

	res, err := s.db.ExecContext(ctx,
		`UPDATE teachers SET name=$2, subjects=$3, email=$4, phone=$5, is_active=$6 WHERE id=$1`,
		teacher.ID, teacher.Name, pq.Array(teacher.Subjects), teacher.Email, teacher.Phone, teacher.IsActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := requireAffected(op, res); err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (s *Storage) DeleteTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	const op = "storage.postgres.DeleteTeacher"

	teacher, err := s.GetTeacher(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM teachers WHERE id=$1`, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teacher, nil
}

// #### students ####

func (s *Storage) ListStudents(ctx context.Context) ([]models.Student, error) {
	const op = "storage.postgres.ListStudents"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, age, phone, is_active FROM students`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanStudents(op, rows)
}

func (s *Storage) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	const op = "storage.postgres.GetStudent"

	var st models.Student
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, age, phone, is_active FROM students WHERE id=$1`, id,
	).Scan(&st.ID, &st.Name, &st.Age, &st.Phone, &st.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &st, nil
}

func (s *Storage) SearchStudents(ctx context.Context, query string) ([]models.Student, error) {
	const op = "storage.postgres.SearchStudents"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, phone, is_active FROM students WHERE name ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanStudents(op, rows)
}

func scanStudents(op string, rows *sql.Rows) ([]models.Student, error) {
	students := []models.Student{}
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Age, &st.Phone, &st.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return students, nil
}

func (s *Storage) CreateStudent(ctx context.Context, student models.Student) error {
	const op = "storage.postgres.CreateStudent"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO students (id, name, age, phone, is_active) VALUES ($1, $2, $3, $4, $5)`,
		student.ID, student.Name, student.Age, student.Phone, student.IsActive)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	const op = "storage.postgres.UpdateStudent"

	res, err := s.db.ExecContext(ctx,
		`UPDATE students SET name=$2, age=$3, phone=$4, is_active=$5 WHERE id=$1`,
		student.ID, student.Name, student.Age, student.Phone, student.IsActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := requireAffected(op, res); err != nil {
		return nil, err
	}

	return &student, nil
}

func (s *Storage) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	const op = "storage.postgres.DeleteStudent"

	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE id=$1`, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return student, nil
}

// #### professionals ####

func (s *Storage) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	const op = "storage.postgres.ListProfessionals"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, specialty, email, phone, is_active FROM professionals`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanProfessionals(op, rows)
}

func (s *Storage) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	const op = "storage.postgres.GetProfessional"

	var p models.Professional
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, specialty, email, phone, is_active FROM professionals WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Specialty, &p.Email, &p.Phone, &p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (s *Storage) SearchProfessionals(ctx context.Context, query string) ([]models.Professional, error) {
	const op = "storage.postgres.SearchProfessionals"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, specialty, email, phone, is_active FROM professionals WHERE name ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanProfessionals(op, rows)
}

func scanProfessionals(op string, rows *sql.Rows) ([]models.Professional, error) {
	professionals := []models.Professional{}
	for rows.Next() {
		var p models.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Specialty, &p.Email, &p.Phone, &p.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		professionals = append(professionals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return professionals, nil
}

func (s *Storage) CreateProfessional(ctx context.Context, professional models.Professional) error {
	const op = "storage.postgres.CreateProfessional"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO professionals (id, name, specialty, email, phone, is_active) VALUES ($1, $2, $3, $4, $5, $6)`,
		professional.ID, professional.Name, professional.Specialty, professional.Email, professional.Phone, professional.IsActive)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateProfessional(ctx context.Context, professional models.Professional) (*models.Professional, error) {
	const op = "storage.postgres.UpdateProfessional"

	res, err := s.db.ExecContext(ctx,
		`UPDATE professionals SET name=$2, specialty=$3, email=$4, phone=$5, is_active=$6 WHERE id=$1`,
		professional.ID, professional.Name, professional.Specialty, professional.Email, professional.Phone, professional.IsActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := requireAffected(op, res); err != nil {
		return nil, err
	}

	return &professional, nil
}

func (s *Storage) DeleteProfessional(ctx context.Context, id string) (*models.Professional, error) {
	const op = "storage.postgres.DeleteProfessional"

	professional, err := s.GetProfessional(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM professionals WHERE id=$1`, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return professional, nil
}

// #### events ####

func (s *Storage) ListEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	rows, err := s.db.QueryContext(ctx, `SELECT id, description, date, comments FROM events`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanEvents(op, rows)
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	var e models.Event
	err := s.db.QueryRowContext(ctx,
		`SELECT id, description, date, comments FROM events WHERE id=$1`, id,
	).Scan(&e.ID, &e.Description, &e.Date, &e.Comments)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &e, nil
}

func (s *Storage) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	const op = "storage.postgres.SearchEvents"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, date, comments FROM events WHERE description ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanEvents(op, rows)
}

func scanEvents(op string, rows *sql.Rows) ([]models.Event, error) {
	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Description, &e.Date, &e.Comments); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) error {
	const op = "storage.postgres.CreateEvent"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, description, date, comments) VALUES ($1, $2, $3, $4)`,
		event.ID, event.Description, event.Date, event.Comments)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET description=$2, date=$3, comments=$4 WHERE id=$1`,
		event.ID, event.Description, event.Date, event.Comments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := requireAffected(op, res); err != nil {
		return nil, err
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.postgres.DeleteEvent"

	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id=$1`, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// #### appointments ####

func (s *Storage) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	const op = "storage.postgres.ListAppointments"

	rows, err := s.db.QueryContext(ctx, `SELECT id, specialty, comments, date, student, professional FROM appointments`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanAppointments(op, rows)
}

func (s *Storage) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	const op = "storage.postgres.GetAppointment"

	var a models.Appointment
	err := s.db.QueryRowContext(ctx,
		`SELECT id, specialty, comments, date, student, professional FROM appointments WHERE id=$1`, id,
	).Scan(&a.ID, &a.Specialty, &a.Comments, &a.Date, &a.Student, &a.Professional)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

func (s *Storage) SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error) {
	const op = "storage.postgres.SearchAppointments"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, specialty, comments, date, student, professional FROM appointments WHERE student ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanAppointments(op, rows)
}

func scanAppointments(op string, rows *sql.Rows) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.Specialty, &a.Comments, &a.Date, &a.Student, &a.Professional); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointments, nil
}

func (s *Storage) CreateAppointment(ctx context.Context, appointment models.Appointment) error {
	const op = "storage.postgres.CreateAppointment"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO appointments (id, specialty, comments, date, student, professional) VALUES ($1, $2, $3, $4, $5, $6)`,
		appointment.ID, appointment.Specialty, appointment.Comments, appointment.Date, appointment.Student, appointment.Professional)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error) {
	const op = "storage.postgres.UpdateAppointment"

	res, err := s.db.ExecContext(ctx,
		`UPDATE appointments SET specialty=$2, comments=$3, date=$4, student=$5, professional=$6 WHERE id=$1`,
		appointment.ID, appointment.Specialty, appointment.Comments, appointment.Date, appointment.Student, appointment.Professional)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := requireAffected(op, res); err != nil {
		return nil, err
	}

	return &appointment, nil
}

func (s *Storage) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	const op = "storage.postgres.DeleteAppointment"

	appointment, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id=$1`, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointment, nil
}

// #### users ####

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.postgres.ListUsers"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, login, privilege, password_hash, is_active FROM users`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanUsers(op, rows)
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.postgres.GetUser"

	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, login, privilege, password_hash, is_active FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Login, &u.Privilege, &u.PasswordHash, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

func (s *Storage) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	const op = "storage.postgres.SearchUsers"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, login, privilege, password_hash, is_active FROM users WHERE name ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanUsers(op, rows)
}

func scanUsers(op string, rows *sql.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Login, &u.Privilege, &u.PasswordHash, &u.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.postgres.CreateUser"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, login, privilege, password_hash, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.Login, user.Privilege, user.PasswordHash, user.IsActive)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.UpdateUser"

	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET name=$2, email=$3, login=$4, privilege=$5, password_hash=$6, is_active=$7 WHERE id=$1`,
		user.ID, user.Name, user.Email, user.Login, user.Privilege, user.PasswordHash, user.IsActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := requireAffected(op, res); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.postgres.DeleteUser"

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}
