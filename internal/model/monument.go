package model

import (
	"time"

	"github.com/Totarae/monuments/internal/apperrors"
)

// MonumentStatus задаёт состояние памятника в жизненном цикле модерации.
type MonumentStatus string

const (
	StatusPending  MonumentStatus = "pending"
	StatusApproved MonumentStatus = "approved"
	StatusDeclined MonumentStatus = "declined"
)

// Monument является основной управляемой записью.
type Monument struct {
	ID              int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string     `json:"name" gorm:"type:varchar(200);not null;uniqueIndex:monuments_name_active_key,expression:lower(name),where:is_deleted = false"`
	Latitude        float64    `json:"latitude" gorm:"not null"`
	Longitude       float64    `json:"longitude" gorm:"not null"`
	AgencyID        int        `json:"agency_id" gorm:"not null;index"`
	StateID         int        `json:"state_id" gorm:"not null;index"`
	DateEstablished *time.Time `json:"date_established,omitempty" gorm:"type:date"`
	Acres           *int       `json:"acres,omitempty"`
	Description     string     `json:"description" gorm:"type:varchar(6000);not null"`
	ImageURL        string     `json:"image_url" gorm:"column:image_url;type:varchar(512);not null"`
	IsApproved      bool       `json:"is_approved" gorm:"not null;default:false"`
	CreatedOn       time.Time  `json:"created_on" gorm:"type:date;not null"`
	CreatedBy       int        `json:"created_by" gorm:"not null"`
	IsDeleted       bool       `json:"is_deleted" gorm:"not null;default:false"`
	DeletedOn       *time.Time `json:"deleted_on,omitempty" gorm:"type:date"`

	// Связи нужны gorm только для внешних ключей схемы.
	Agency  *Agency `json:"-"`
	State   *State  `json:"-"`
	Creator *User   `json:"-" gorm:"foreignKey:CreatedBy"`
}

// Status выводит состояние из флагов.
func (m *Monument) Status() MonumentStatus {
	switch {
	case m.IsDeleted:
		return StatusDeclined
	case m.IsApproved:
		return StatusApproved
	default:
		return StatusPending
	}
}

// Visible сообщает, попадает ли памятник в публичный список.
func (m *Monument) Visible() bool {
	return !m.IsDeleted && m.IsApproved
}

// Approve переводит pending -> approved.
// Повторное одобрение ничего не меняет и возвращает changed=false.
func (m *Monument) Approve() (changed bool, err error) {
	switch m.Status() {
	case StatusDeclined:
		return false, apperrors.ErrInvalidTransition
	case StatusApproved:
		return false, nil
	}
	m.IsApproved = true
	return true, nil
}

// Decline мягко удаляет памятник. Состояние declined конечное.
func (m *Monument) Decline(now time.Time) error {
	if m.Status() == StatusDeclined {
		return apperrors.ErrInvalidTransition
	}
	day := Today(now)
	m.IsDeleted = true
	m.DeletedOn = &day
	return nil
}
