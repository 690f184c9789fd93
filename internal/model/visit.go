package model

import "time"

// Visit хранит оценку памятника пользователем, не больше одной на пару (user, monument).
type Visit struct {
	UserID     int       `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	MonumentID int       `json:"monument_id" gorm:"primaryKey;autoIncrement:false;index"`
	VisitedOn  time.Time `json:"visited_on" gorm:"type:date;not null"`
	Grade      int       `json:"grade" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:varchar(500);not null"`

	User     *User     `json:"-"`
	Monument *Monument `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
