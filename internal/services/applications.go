package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"databridge-api/internal/apperr"
	"databridge-api/internal/database"
	"databridge-api/internal/mailer"
	"databridge-api/internal/models"

	"gorm.io/gorm"
)

var errApplicationNotFound = apperr.New(apperr.NotFound, "Application not found")

type ApplicationInput struct {
	JobID       uint   `json:"jobId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
}

// Notifier accepts a message for delivery without waiting on the outcome.
type Notifier interface {
	Dispatch(msg mailer.Message)
}

type ApplicationService struct {
	DB       *gorm.DB
	Notifier Notifier
	Company  string
	MeetLink string
}

func NewApplicationService(db *gorm.DB, notifier Notifier, company, meetLink string) *ApplicationService {
	return &ApplicationService{
		DB:       db,
		Notifier: notifier,
		Company:  company,
		MeetLink: meetLink,
	}
}

func (s *ApplicationService) withJobTitle(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Model(&models.JobApplication{}).
		Select("job_applications.*, jobs.title AS job_title").
		Joins("LEFT JOIN jobs ON job_applications.job_id = jobs.id")
}

func (s *ApplicationService) List(ctx context.Context) ([]models.JobApplication, error) {
	apps := []models.JobApplication{}
	err := s.withJobTitle(ctx).
		Order("job_applications.created_at desc, job_applications.id desc").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) Get(ctx context.Context, id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.withJobTitle(ctx).Where("job_applications.id = ?", id).Take(&app).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, errApplicationNotFound
		}
		return nil, fmt.Errorf("get application %d: %w", id, err)
	}
	return &app, nil
}

// Create checks the job exists before inserting; the (job_id, email)
// unique index decides between concurrent duplicates.
func (s *ApplicationService) Create(ctx context.Context, in ApplicationInput) (*models.JobApplication, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ResumeURL = strings.TrimSpace(in.ResumeURL)
	if in.JobID == 0 || in.Name == "" || in.Email == "" || in.Phone == "" || in.ResumeURL == "" {
		return nil, apperr.New(apperr.Validation, "Missing required fields")
	}

	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Job{}).Where("id = ?", in.JobID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check job %d: %w", in.JobID, err)
	}
	if count == 0 {
		return nil, errJobNotFound
	}

	jobID := in.JobID
	app := models.JobApplication{
		JobID:     &jobID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		ResumeURL: in.ResumeURL,
	}
	if in.CoverLetter != "" {
		app.CoverLetter = &in.CoverLetter
	}

	if err := db.Create(&app).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Wrap(apperr.Conflict, "You have already applied for this job", err)
		}
		return nil, fmt.Errorf("create application: %w", err)
	}

	if err := db.First(&app, app.ID).Error; err != nil {
		return nil, fmt.Errorf("reload application %d: %w", app.ID, err)
	}
	return &app, nil
}

// UpdateStatus moves an application to any status in the closed set and
// notifies the candidate. The result depends only on the status write;
// the notification is dispatched after commit and never awaited.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.JobApplication, error) {
	if !status.Valid() {
		return nil, apperr.New(apperr.Validation, "Invalid status")
	}

	var app models.JobApplication
	jobTitle := mailer.JobPlaceholder

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errApplicationNotFound
		}

		if err := tx.First(&app, id).Error; err != nil {
			return err
		}

		if app.JobID != nil {
			var job models.Job
			err := tx.Select("title").Where("id = ?", *app.JobID).Take(&job).Error
			switch {
			case err == nil:
				jobTitle = job.Title
			case !database.IsNotFound(err):
				log.Printf("application %d: job title lookup failed: %v", id, err)
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("update application %d status: %w", id, err)
	}
	app.JobTitle = &jobTitle

	s.notify(&app, jobTitle)
	return &app, nil
}

func (s *ApplicationService) notify(app *models.JobApplication, jobTitle string) {
	msg, ok, err := mailer.StatusEmail(app.Status, app.Email, mailer.StatusData{
		Name:     app.Name,
		JobTitle: jobTitle,
		Company:  s.Company,
		MeetLink: s.MeetLink,
	})
	if err != nil {
		log.Printf("application %d: %v", app.ID, err)
		return
	}
	if !ok {
		return
	}
	s.Notifier.Dispatch(msg)
}
