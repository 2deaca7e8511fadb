package services

import (
	"context"
	"testing"

	"databridge-api/internal/apperr"
	"databridge-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreate(t *testing.T) {
	f := newFixture(t)

	c, err := f.contacts.Create(context.Background(), ContactInput{
		Name: "Sam", Email: "sam@corp.io", Subject: "Callback", Message: "Call me",
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, models.ContactNew, c.Status)
	assert.Nil(t, c.Phone)

	withPhone, err := f.contacts.Create(context.Background(), ContactInput{
		Name: "Sam", Email: "sam@corp.io", Phone: "+1 555", Subject: "Callback", Message: "Call me",
	})
	require.NoError(t, err)
	require.NotNil(t, withPhone.Phone)
	assert.Equal(t, "+1 555", *withPhone.Phone)
}

func TestContactCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.contacts.Create(ctx, ContactInput{Name: "Sam", Email: "sam@corp.io", Subject: "Hi"})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Missing required fields", e.Message)

	for _, email := range []string{"sam", "sam@corp", "sam @corp.io", "@corp.io"} {
		_, err := f.contacts.Create(ctx, ContactInput{Name: "Sam", Email: email, Subject: "Hi", Message: "m"})
		e, ok := apperr.As(err)
		require.True(t, ok, email)
		assert.Equal(t, "Invalid email format", e.Message, email)
	}
}

func TestContactStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.contacts.Create(ctx, ContactInput{Name: "Sam", Email: "sam@corp.io", Subject: "Hi", Message: "m"})
	require.NoError(t, err)

	updated, err := f.contacts.UpdateStatus(ctx, c.ID, models.ContactInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ContactInProgress, updated.Status)

	_, err = f.contacts.UpdateStatus(ctx, c.ID, "closed")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = f.contacts.UpdateStatus(ctx, c.ID+1, models.ContactResolved)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestContactListAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.contacts.Create(ctx, ContactInput{Name: "A", Email: "a@corp.io", Subject: "s", Message: "m"})
	require.NoError(t, err)
	second, err := f.contacts.Create(ctx, ContactInput{Name: "B", Email: "b@corp.io", Subject: "s", Message: "m"})
	require.NoError(t, err)

	list, err := f.contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	got, err := f.contacts.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = f.contacts.Get(ctx, 999)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job := f.job(t, "Engineer")
	f.job(t, "Analyst")
	f.application(t, job.ID, "jane@x.com")
	_, err := f.contacts.Create(ctx, ContactInput{Name: "A", Email: "a@corp.io", Subject: "s", Message: "m"})
	require.NoError(t, err)

	stats, err := f.stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{TotalJobs: 2, TotalApplications: 1, TotalContacts: 1}, *stats)
}
