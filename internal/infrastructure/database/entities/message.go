package entities

import "time"

// Message models the persisted representation of a contact-form submission.
type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Message) TableName() string {
	return "messages"
}
