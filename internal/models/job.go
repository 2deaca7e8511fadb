package models

import "time"

const DefaultJobType = "Full-time"

type Job struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Department   string    `gorm:"size:100;not null" json:"department"`
	Location     string    `gorm:"size:100;not null" json:"location"`
	Type         string    `gorm:"size:50;default:'Full-time'" json:"type"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Job) TableName() string { return "jobs" }
