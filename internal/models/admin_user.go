package models

import "time"

type UserRole string

// RoleAdmin is the only role; every back-office account is an admin.
const RoleAdmin UserRole = "admin"

// AdminUser is provisioned out of band (or by the bootstrap seed) and is
// read-only to the API.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Email        string    `gorm:"size:255" json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }
