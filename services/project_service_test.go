package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolyo.link/models"
	"portfolyo.link/pkg/queryparams"
	"portfolyo.link/pkg/storage"
)

func newProjectServiceForTest(t *testing.T) (IProjectService, *storage.DiskStore) {
	t.Helper()
	setupTestDB(t)
	store, _ := setupTestStore(t)
	return NewProjectService(), store
}

func TestCreateProjectTagsRoundTrip(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, 1, ProjectInput{
		Title:       "Portfolyo",
		Description: "Kişisel site",
		Tags:        "React, TypeScript, ,Go",
		Category:    models.ProjectCategoryWebsites,
	})
	require.NoError(t, err)

	// Yeniden yüklenen kayıtta etiketler normalize edilmiş sırada korunur.
	reloaded, err := svc.GetProjectByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "TypeScript", "Go"}, []string(reloaded.Tags))
}

func TestCreateProjectValidation(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)
	ctx := context.Background()

	t.Run("başlık zorunlu", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, 1, ProjectInput{Description: "açıklama"})
		assert.ErrorIs(t, err, ErrProjectTitleRequired)
	})

	t.Run("geçersiz kategori reddedilir", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, 1, ProjectInput{
			Title: "X", Description: "Y", Category: "desktop",
		})
		assert.ErrorIs(t, err, ErrProjectInvalidCategory)
	})

	t.Run("boş kategori varsayılana çekilir", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, 1, ProjectInput{Title: "X", Description: "Y"})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectCategoryWebsites, created.Category)
	})
}

func TestSearchProjectsIntersection(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)
	ctx := context.Background()

	seed := []ProjectInput{
		{Title: "Mobile Banking", Description: "Bankacılık uygulaması", Category: models.ProjectCategoryMobile, Tags: "Flutter"},
		{Title: "API Gateway", Description: "Mobile istemciler için backend", Category: models.ProjectCategoryBackend, Tags: "Go"},
		{Title: "Kurumsal Site", Description: "Tanıtım sitesi", Category: models.ProjectCategoryWebsites, Tags: "React"},
	}
	for _, input := range seed {
		_, err := svc.CreateProject(ctx, 1, input)
		require.NoError(t, err)
	}

	t.Run("arama ve kategori kesişimi", func(t *testing.T) {
		// "mobile" hem mobil uygulamada hem backend açıklamasında geçer;
		// kategori filtresi kesişimi backend'e daraltır.
		results, err := svc.SearchProjects(ctx, "mobile", models.ProjectCategoryBackend)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "API Gateway", results[0].Title)
	})

	t.Run("etiketlerde arama", func(t *testing.T) {
		results, err := svc.SearchProjects(ctx, "react", "all")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Kurumsal Site", results[0].Title)
	})

	t.Run("boş kesişim boş liste döner", func(t *testing.T) {
		results, err := svc.SearchProjects(ctx, "flutter", models.ProjectCategoryWebsites)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("boş terim tüm kategoriyi döner", func(t *testing.T) {
		results, err := svc.SearchProjects(ctx, "", "all")
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}

func TestGetTeaserProjects(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)
	ctx := context.Background()

	for i, title := range []string{"A", "B", "C", "D"} {
		_, err := svc.CreateProject(ctx, 1, ProjectInput{
			Title:       title,
			Description: "öne çıkan",
			Category:    models.ProjectCategoryWebsites,
			Featured:    true,
			OrderIndex:  i,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateProject(ctx, 1, ProjectInput{
		Title: "Sıradan", Description: "öne çıkmayan", Category: models.ProjectCategoryWebsites,
	})
	require.NoError(t, err)

	teaser, err := svc.GetTeaserProjects(ctx, "all")
	require.NoError(t, err)
	require.Len(t, teaser, TeaserProjectLimit)
	assert.Equal(t, "A", teaser[0].Title)

	// Kategori filtresi eşleşmeyince boş döner.
	teaser, err = svc.GetTeaserProjects(ctx, models.ProjectCategoryMobile)
	require.NoError(t, err)
	assert.Empty(t, teaser)
}

func TestDeleteProjectPersists(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, 1, ProjectInput{
		Title: "Silinecek", Description: "geçici", Category: models.ProjectCategoryWebsites,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, created.ID, 1))

	// Silme kalıcıdır: yeniden çekildiğinde kayıt yok.
	_, err = svc.GetProjectByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	all, err := svc.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetProjectsPaginated(t *testing.T) {
	svc, _ := newProjectServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateProject(ctx, 1, ProjectInput{
			Title: "P", Description: "x", Category: models.ProjectCategoryWebsites, OrderIndex: i,
		})
		require.NoError(t, err)
	}

	params := queryparams.ListParams{Page: 2, PerPage: 2}
	projects, meta, err := svc.GetProjectsPaginated(ctx, params)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, int64(5), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.CurrentPage)
}

func TestUploadProjectImageValidation(t *testing.T) {
	svc, store := newProjectServiceForTest(t)
	ctx := context.Background()

	t.Run("resim olmayan dosya reddedilir", func(t *testing.T) {
		_, err := svc.UploadProjectImage(ctx, "a.txt", "text/plain", 100, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrProjectImageInvalid)
	})

	t.Run("boyut sınırı aşılırsa reddedilir", func(t *testing.T) {
		_, err := svc.UploadProjectImage(ctx, "a.png", "image/png", MaxProjectImageSize+1, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrProjectImageTooLarge)
	})

	// Reddedilen denemeler depoya hiçbir şey yazmamış olmalı.
	objects, err := store.List(ctx, storage.BucketProjectImages, "")
	require.NoError(t, err)
	assert.Empty(t, objects)

	t.Run("geçerli görsel yüklenir", func(t *testing.T) {
		url, err := svc.UploadProjectImage(ctx, "foto.jpg", "image/jpeg", 3, strings.NewReader("img"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/storage/project-images/projects/"))
		assert.True(t, strings.HasSuffix(url, ".jpg"))
	})
}
