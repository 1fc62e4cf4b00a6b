package model

import "time"

// Inquiry statuses
const (
	InquiryStatusNew      = "new"
	InquiryStatusRead     = "read"
	InquiryStatusArchived = "archived"
)

// Inquiry represents a contact-form submission
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Branch    string    `gorm:"type:varchar(100)" json:"branch"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);default:'new';index" json:"status"`
}
