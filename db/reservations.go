package db

import (
	"fmt"

	"yirestaurant/models"

	"github.com/jinzhu/gorm"
)

// Reservations is the GORM-backed models.ReservationStore.
type Reservations struct {
	db *gorm.DB
}

func NewReservations(db *gorm.DB) *Reservations {
	return &Reservations{db: db}
}

func (s *Reservations) Create(r *models.Reservation) error {
	// GORM stamps CreatedAt on insert; fields are stored verbatim.
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (s *Reservations) List() ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.db.Order("created_at desc, id desc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

func (s *Reservations) Get(id int64) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.db.First(&r, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return &r, nil
}

// Update is a full replace of the mutable fields; ID and CreatedAt keep
// their stored values regardless of what the caller passes in.
func (s *Reservations) Update(id int64, fields *models.Reservation) error {
	var r models.Reservation
	if err := s.db.First(&r, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.ErrNotFound
		}
		return fmt.Errorf("get reservation %d: %w", id, err)
	}

	r.Name = fields.Name
	r.Email = fields.Email
	r.Phone = fields.Phone
	r.Date = fields.Date
	r.Time = fields.Time
	r.Guests = fields.Guests
	r.Message = fields.Message
	r.Lang = fields.Lang

	if err := s.db.Save(&r).Error; err != nil {
		return fmt.Errorf("update reservation %d: %w", id, err)
	}
	return nil
}

func (s *Reservations) Delete(id int64) error {
	res := s.db.Delete(&models.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete reservation %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
