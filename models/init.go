package models

import (
	"gorm.io/gorm"
)

// Init creates or updates all tables. Question and Invite go first, Answer and
// Payment reference them.
func Init(db *gorm.DB) error {
	return db.AutoMigrate(&Question{}, &Invite{}, &Answer{}, &Payment{})
}
