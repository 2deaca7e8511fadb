package services

import (
	"context"
	"fmt"

	"databridge-api/internal/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalContacts     int64 `json:"totalContacts"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	db := s.DB.WithContext(ctx)

	var stats DashboardStats
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Job{}, &stats.TotalJobs},
		{&models.JobApplication{}, &stats.TotalApplications},
		{&models.ContactQuery{}, &stats.TotalContacts},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count %T: %w", c.model, err)
		}
	}
	return &stats, nil
}
