package model

// User описывает учётную запись. Пользователи не удаляются.
type User struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string `json:"username" gorm:"type:varchar(200);not null;uniqueIndex"`
	Hash      string `json:"-" gorm:"type:varchar(1000);not null"`
	IsAdmin   bool   `json:"is_admin" gorm:"not null;default:false"`
	FirstName string `json:"first_name" gorm:"type:varchar(100);not null;default:''"`
	LastName  string `json:"last_name" gorm:"type:varchar(100);not null;default:''"`
}
