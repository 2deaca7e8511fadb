package services

import (
	"context"
	"testing"

	"databridge-api/internal/database/dbtest"
	"databridge-api/internal/mailer"
	"databridge-api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// syncNotifier delivers straight into a Recorder so tests can count sends.
type syncNotifier struct{ rec *mailer.Recorder }

func (n syncNotifier) Dispatch(msg mailer.Message) {
	_ = n.rec.Send(context.Background(), msg)
}

type fixture struct {
	db       *gorm.DB
	jobs     *JobService
	apps     *ApplicationService
	contacts *ContactService
	stats    *StatsService
	mail     *mailer.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	rec := &mailer.Recorder{}
	return &fixture{
		db:       db,
		jobs:     NewJobService(db),
		apps:     NewApplicationService(db, syncNotifier{rec}, "DataBridge Solutions", "https://meet.example/room"),
		contacts: NewContactService(db),
		stats:    NewStatsService(db),
		mail:     rec,
	}
}

func (f *fixture) job(t *testing.T, title string) *models.Job {
	t.Helper()
	job, err := f.jobs.Create(context.Background(), JobInput{
		Title:       title,
		Department:  "Eng",
		Location:    "Remote",
		Description: "Build things",
	})
	require.NoError(t, err)
	return job
}

func (f *fixture) application(t *testing.T, jobID uint, email string) *models.JobApplication {
	t.Helper()
	app, err := f.apps.Create(context.Background(), ApplicationInput{
		JobID:     jobID,
		Name:      "Jane",
		Email:     email,
		Phone:     "123",
		ResumeURL: "http://r",
	})
	require.NoError(t, err)
	return app
}
