package models

import "time"

type Teacher struct {
	ID       string   `db:"id" json:"id"`
	Name     string   `db:"name" json:"name"`
	Subjects []string `db:"subjects" json:"subjects"`
	Email    string   `db:"email" json:"email"`
	Phone    string   `db:"phone" json:"phone"`
	IsActive bool     `db:"is_active" json:"is_active"`
}

type Student struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Age      int    `db:"age" json:"age"`
	Phone    string `db:"phone" json:"phone"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type Professional struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}

type Event struct {
	ID          string    `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	Comments    string    `db:"comments" json:"comments"`
}

// Appointment references student and professional by name, not by id.
type Appointment struct {
	ID           string    `db:"id" json:"id"`
	Specialty    string    `db:"specialty" json:"specialty"`
	Comments     string    `db:"comments" json:"comments"`
	Date         time.Time `db:"date" json:"date"`
	Student      string    `db:"student" json:"student"`
	Professional string    `db:"professional" json:"professional"`
}

type User struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	Login        string `db:"login" json:"login"`
	Privilege    string `db:"privilege" json:"privilege"`
	PasswordHash string `db:"password_hash" json:"password_hash"`
	IsActive     bool   `db:"is_active" json:"is_active"`
}
