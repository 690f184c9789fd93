package model

// Agency описывает ведомство, ответственное за памятник.
type Agency struct {
	ID         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"type:varchar(200);not null;uniqueIndex:agencies_name_key,expression:lower(name)"`
	Department string `json:"department" gorm:"type:varchar(200);not null"`
}
