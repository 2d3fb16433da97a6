package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSkillLevel(t *testing.T) {
	assert.Equal(t, 1, ClampSkillLevel(0))
	assert.Equal(t, 1, ClampSkillLevel(-3))
	assert.Equal(t, 3, ClampSkillLevel(3))
	assert.Equal(t, 5, ClampSkillLevel(6))
}

func TestCreateSkillClampsLevel(t *testing.T) {
	setupTestDB(t)
	svc := NewSkillService()
	ctx := context.Background()

	// Form 1-5'i zorlar ama doğrudan gelen 6 veritabanına 5 olarak iner.
	created, err := svc.CreateSkill(ctx, 1, SkillInput{Name: "Go", Category: "Backend", Level: 6})
	require.NoError(t, err)
	assert.Equal(t, 5, created.Level)

	reloaded, err := svc.GetSkillByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Level)
}

func TestCreateSkillNormalizesCategory(t *testing.T) {
	setupTestDB(t)
	svc := NewSkillService()
	ctx := context.Background()

	created, err := svc.CreateSkill(ctx, 1, SkillInput{Name: "Figma", Category: "Bilinmeyen", Level: 3})
	require.NoError(t, err)
	assert.Equal(t, "Other", created.Category)
}

func TestCreateSkillRequiresName(t *testing.T) {
	setupTestDB(t)
	svc := NewSkillService()

	_, err := svc.CreateSkill(context.Background(), 1, SkillInput{Name: "   ", Level: 3})
	assert.ErrorIs(t, err, ErrSkillNameRequired)
}

func TestGetSkillsGrouped(t *testing.T) {
	setupTestDB(t)
	svc := NewSkillService()
	ctx := context.Background()

	seed := []SkillInput{
		{Name: "Go", Category: "Backend", Level: 5},
		{Name: "PostgreSQL", Category: "Database", Level: 4},
		{Name: "Fiber", Category: "Backend", Level: 4},
	}
	for _, input := range seed {
		_, err := svc.CreateSkill(ctx, 1, input)
		require.NoError(t, err)
	}

	groups, err := svc.GetSkillsGrouped(ctx)
	require.NoError(t, err)
	assert.Len(t, groups["Backend"], 2)
	assert.Len(t, groups["Database"], 1)
	assert.NotContains(t, groups, "Frontend")
}

func TestUpdateAndDeleteSkill(t *testing.T) {
	setupTestDB(t)
	svc := NewSkillService()
	ctx := context.Background()

	created, err := svc.CreateSkill(ctx, 1, SkillInput{Name: "Docker", Category: "DevOps", Level: 3})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSkill(ctx, created.ID, 1, SkillInput{Name: "Docker", Category: "DevOps", Level: 4}))
	reloaded, err := svc.GetSkillByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.Level)

	require.NoError(t, svc.DeleteSkill(ctx, created.ID, 1))
	_, err = svc.GetSkillByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSkillNotFound)

	assert.ErrorIs(t, svc.DeleteSkill(ctx, created.ID, 1), ErrSkillNotFound)
}
