package api

import "time"

type TeacherRequest struct {
	Name     string   `json:"name" validate:"required"`
	Subjects []string `json:"subjects" validate:"required,min=1,dive,required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone" validate:"required"`
	IsActive *bool    `json:"is_active" validate:"required"`
}

type TeacherResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	IsActive bool     `json:"is_active"`
}

type StudentRequest struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Phone    string `json:"phone" validate:"required"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

type StudentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

type ProfessionalRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	IsActive  *bool  `json:"is_active" validate:"required"`
}

type ProfessionalResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
}

type EventRequest struct {
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Comments    string    `json:"comments" validate:"required"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Comments    string    `json:"comments"`
}

// Student and Professional are free-text names; no integrity check is made
// against the student or professional collections.
type AppointmentRequest struct {
	Specialty    string    `json:"specialty" validate:"required"`
	Comments     string    `json:"comments" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Student      string    `json:"student" validate:"required"`
	Professional string    `json:"professional" validate:"required"`
}

type AppointmentResponse struct {
	ID           string    `json:"id"`
	Specialty    string    `json:"specialty"`
	Comments     string    `json:"comments"`
	Date         time.Time `json:"date"`
	Student      string    `json:"student"`
	Professional string    `json:"professional"`
}

type UserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Login     string `json:"login" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Privilege string `json:"privilege" validate:"required"`
	IsActive  *bool  `json:"is_active" validate:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	Privilege string `json:"privilege"`
	IsActive  bool   `json:"is_active"`
}
