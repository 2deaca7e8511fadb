package models

import "time"

type ContactStatus string

const (
	ContactNew        ContactStatus = "new"
	ContactInProgress ContactStatus = "in_progress"
	ContactResolved   ContactStatus = "resolved"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactInProgress, ContactResolved:
		return true
	}
	return false
}

// ContactQuery comes from the public contact form or the callback widget.
type ContactQuery struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"size:255;not null" json:"name"`
	Email     string        `gorm:"size:255;not null" json:"email"`
	Phone     *string       `gorm:"size:50" json:"phone"`
	Subject   string        `gorm:"size:255;not null" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    ContactStatus `gorm:"type:varchar(20);not null;default:new" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (ContactQuery) TableName() string { return "contact_queries" }
