package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores when no reservation matches the id.
var ErrNotFound = errors.New("reservation not found")

// Reservation is a single booking request submitted through the public form.
// CreatedAt is set once at insert and never touched again; every other
// field (except ID) is replaced wholesale by the admin edit.
type Reservation struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string    `gorm:"not null" json:"name" form:"name"`
	Email     string    `gorm:"not null" json:"email" form:"email"`
	Phone     string    `gorm:"not null" json:"phone" form:"phone"`
	Date      string    `gorm:"not null" json:"date" form:"date"`
	Time      string    `gorm:"not null" json:"time" form:"time"`
	Guests    int       `gorm:"not null" json:"guests" form:"guests"`
	Message   string    `gorm:"type:text" json:"message" form:"message"`
	Lang      string    `gorm:"not null;default:'en'" json:"lang" form:"lang"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationStore is the minimal record mapper the handlers depend on,
// so any storage engine can stand in for the GORM/sqlite3 default.
type ReservationStore interface {
	// Create assigns a fresh id, stamps CreatedAt and persists the record.
	Create(r *Reservation) error
	// List returns every reservation, newest CreatedAt first
	// (ties broken by id descending).
	List() ([]Reservation, error)
	// Get returns ErrNotFound when id does not exist.
	Get(id int64) (*Reservation, error)
	// Update overwrites every mutable field with the supplied values.
	// Returns ErrNotFound when id does not exist.
	Update(id int64, fields *Reservation) error
	// Delete removes the record permanently. Returns ErrNotFound when
	// id does not exist.
	Delete(id int64) error
}
