package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryService(t *testing.T) (CategoryService, *memStorage) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	store := newMemStorage()
	return NewCategoryService(repository.NewCategoryRepository(database), NewAssetSyncer(store)), store
}

func TestCategoryService_CreateNormalizesSlug(t *testing.T) {
	svc, _ := setupCategoryService(t)

	category, warnings, err := svc.Create(context.Background(),
		CategoryInput{NameEN: "Dog Leashes", NameZH: "狗绳", Slug: "Dog Leashes"}, nil)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "dog-leashes", category.Slug)

	found, err := svc.GetBySlug("dog-leashes")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
}

func TestCategoryService_GetBySlugNotFound(t *testing.T) {
	svc, _ := setupCategoryService(t)

	_, err := svc.GetBySlug("no-such-slug")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_UpdateDeleteDirectiveClearsImage(t *testing.T) {
	svc, store := setupCategoryService(t)

	category, _, err := svc.Create(context.Background(),
		CategoryInput{NameEN: "Dog Beds", Slug: "dog-beds"},
		&FileUpload{Filename: "beds.jpg", Content: []byte("img")})
	require.NoError(t, err)
	imageURL := category.Image
	require.NotEmpty(t, imageURL)

	store.deleteCalls = nil

	updated, warnings, err := svc.Update(context.Background(), category.ID,
		CategoryInput{NameEN: "Dog Beds", Slug: "dog-beds"},
		AssetChange{Delete: true})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, updated.Image)
	require.Len(t, store.deleteCalls, 1)
	assert.Equal(t, []string{imageURL}, store.deleteCalls[0])
}

func TestCategoryService_DeleteFailureKeepsRowMutation(t *testing.T) {
	svc, store := setupCategoryService(t)

	category, _, err := svc.Create(context.Background(),
		CategoryInput{NameEN: "Dog Bowls", Slug: "dog-bowls"},
		&FileUpload{Filename: "bowls.jpg", Content: []byte("img")})
	require.NoError(t, err)

	store.deleteErr = errors.New("store unavailable")

	warnings, err := svc.Delete(context.Background(), category.ID)

	require.NoError(t, err, "a failed blob delete must not block removing the row")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Could not delete image from blob storage")

	_, err = svc.GetByID(category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
