package model

import "time"

// State описывает штат или территорию. Удаление мягкое, через IsDeleted и DeletedOn.
type State struct {
	ID        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"type:varchar(200);not null;uniqueIndex:states_name_active_key,expression:lower(name),where:is_deleted = false"`
	IsDeleted bool       `json:"is_deleted" gorm:"not null;default:false"`
	DeletedOn *time.Time `json:"deleted_on,omitempty" gorm:"type:date"`
	CreatedOn time.Time  `json:"created_on" gorm:"type:date;not null"`
	CreatedBy int        `json:"created_by" gorm:"not null"`

	Creator *User `json:"-" gorm:"foreignKey:CreatedBy"`
}

// SoftDelete помечает штат удалённым.
func (s *State) SoftDelete(now time.Time) {
	day := Today(now)
	s.IsDeleted = true
	s.DeletedOn = &day
}

// Today отбрасывает время суток: в базе хранятся только даты.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
