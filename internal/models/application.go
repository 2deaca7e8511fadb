package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationHired       ApplicationStatus = "hired"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Valid reports membership in the closed status set. Any member may follow
// any other; there is no transition table.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending,
		ApplicationReviewed,
		ApplicationInterviewed,
		ApplicationHired,
		ApplicationRejected:
		return true
	}
	return false
}

// JobApplication is unique per (job_id, email). JobID becomes NULL when the
// job is deleted.
type JobApplication struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	JobID       *uint             `gorm:"uniqueIndex:idx_job_applications_job_email" json:"job_id"`
	Job         *Job              `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Email       string            `gorm:"size:255;not null;uniqueIndex:idx_job_applications_job_email" json:"email"`
	Phone       string            `gorm:"size:50;not null" json:"phone"`
	ResumeURL   string            `gorm:"type:text;not null" json:"resume_url"`
	CoverLetter *string           `gorm:"type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`

	// filled by the LEFT JOIN on jobs when listing
	JobTitle *string `gorm:"->;-:migration" json:"job_title,omitempty"`
}

func (JobApplication) TableName() string { return "job_applications" }
