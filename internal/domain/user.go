package domain

import (
	"time"
)

// User is a registered account. Identity only; trading state lives on the
// user's Portfolio row, provisioned lazily on first portfolio access.
type User struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	Username     string     `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(256);not null" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login"`
}

func (User) TableName() string {
	return "users"
}
