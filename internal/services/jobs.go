package services

import (
	"context"
	"fmt"
	"strings"

	"databridge-api/internal/apperr"
	"databridge-api/internal/database"
	"databridge-api/internal/models"

	"gorm.io/gorm"
)

var errJobNotFound = apperr.New(apperr.NotFound, "Job not found")

// JobInput is the full field set for create and replace.
type JobInput struct {
	Title        string `json:"title"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

func (in *JobInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Department = strings.TrimSpace(in.Department)
	in.Location = strings.TrimSpace(in.Location)
	in.Type = strings.TrimSpace(in.Type)

	if in.Title == "" || in.Department == "" || in.Location == "" || strings.TrimSpace(in.Description) == "" {
		return apperr.New(apperr.Validation, "Missing required fields")
	}
	if in.Type == "" {
		in.Type = models.DefaultJobType
	}
	return nil
}

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := s.DB.WithContext(ctx).Order("created_at desc, id desc").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, errJobNotFound
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, in JobInput) (*models.Job, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	job := models.Job{
		Title:        in.Title,
		Department:   in.Department,
		Location:     in.Location,
		Type:         in.Type,
		Description:  in.Description,
		Requirements: in.Requirements,
	}
	if err := s.DB.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &job, nil
}

// Update replaces every editable column of the job.
func (s *JobService) Update(ctx context.Context, id uint, in JobInput) (*models.Job, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var job models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":        in.Title,
			"department":   in.Department,
			"location":     in.Location,
			"type":         in.Type,
			"description":  in.Description,
			"requirements": in.Requirements,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errJobNotFound
		}
		return tx.First(&job, id).Error
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}
	return &job, nil
}

// Delete leaves the job's applications in place with a NULL job_id.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Job{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete job %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errJobNotFound
	}
	return nil
}
