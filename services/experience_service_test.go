package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExperienceCurrentClearsEndDate(t *testing.T) {
	setupTestDB(t)
	svc := NewExperienceService()
	ctx := context.Background()

	// is_current işaretliyken forma yazılmış bitiş tarihi yok sayılır.
	created, err := svc.CreateExperience(ctx, 1, ExperienceInput{
		CompanyName: "Acme",
		Position:    "Backend Developer",
		StartDate:   "2023-01-15",
		EndDate:     "2024-06-30",
		IsCurrent:   true,
	})
	require.NoError(t, err)
	assert.True(t, created.IsCurrent)
	assert.Nil(t, created.EndDate)

	reloaded, err := svc.GetExperienceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.EndDate)
}

func TestCreateExperienceParsesDates(t *testing.T) {
	setupTestDB(t)
	svc := NewExperienceService()
	ctx := context.Background()

	t.Run("geçerli tarih aralığı", func(t *testing.T) {
		created, err := svc.CreateExperience(ctx, 1, ExperienceInput{
			CompanyName: "Acme", Position: "Dev",
			StartDate: "2020-03-01", EndDate: "2022-09-30",
		})
		require.NoError(t, err)
		require.NotNil(t, created.EndDate)
		assert.Equal(t, "2020-03-01", created.StartDate.Format("2006-01-02"))
		assert.Equal(t, "2022-09-30", created.EndDate.Format("2006-01-02"))
	})

	t.Run("bozuk tarih reddedilir", func(t *testing.T) {
		_, err := svc.CreateExperience(ctx, 1, ExperienceInput{
			CompanyName: "Acme", Position: "Dev", StartDate: "15.01.2023",
		})
		assert.ErrorIs(t, err, ErrExperienceInvalidDate)
	})

	t.Run("boş bitiş tarihi null olur", func(t *testing.T) {
		created, err := svc.CreateExperience(ctx, 1, ExperienceInput{
			CompanyName: "Acme", Position: "Dev", StartDate: "2024-01-01",
		})
		require.NoError(t, err)
		assert.Nil(t, created.EndDate)
	})
}

func TestCreateExperienceRequiredFields(t *testing.T) {
	setupTestDB(t)
	svc := NewExperienceService()

	_, err := svc.CreateExperience(context.Background(), 1, ExperienceInput{
		CompanyName: "Acme", StartDate: "2024-01-01",
	})
	assert.ErrorIs(t, err, ErrExperienceFieldsRequired)
}

func TestCreateExperienceAppendsOrder(t *testing.T) {
	setupTestDB(t)
	svc := NewExperienceService()
	ctx := context.Background()

	first, err := svc.CreateExperience(ctx, 1, ExperienceInput{
		CompanyName: "A", Position: "Dev", StartDate: "2020-01-01",
	})
	require.NoError(t, err)
	second, err := svc.CreateExperience(ctx, 1, ExperienceInput{
		CompanyName: "B", Position: "Dev", StartDate: "2022-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, first.OrderIndex)
	assert.Equal(t, 1, second.OrderIndex)
}

func TestUpdateExperienceKeepsOrderAndTechnologies(t *testing.T) {
	setupTestDB(t)
	svc := NewExperienceService()
	ctx := context.Background()

	created, err := svc.CreateExperience(ctx, 1, ExperienceInput{
		CompanyName: "Acme", Position: "Dev", StartDate: "2020-01-01",
		Technologies: "Go, Docker",
	})
	require.NoError(t, err)

	err = svc.UpdateExperience(ctx, created.ID, 1, ExperienceInput{
		CompanyName: "Acme", Position: "Senior Dev", StartDate: "2020-01-01",
		Technologies: "Go, Docker, Kubernetes",
	})
	require.NoError(t, err)

	reloaded, err := svc.GetExperienceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Dev", reloaded.Position)
	assert.Equal(t, created.OrderIndex, reloaded.OrderIndex)
	assert.Equal(t, []string{"Go", "Docker", "Kubernetes"}, []string(reloaded.Technologies))
}
