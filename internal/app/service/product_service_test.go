package service

import (
	"context"
	"testing"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductService(t *testing.T) (ProductService, *memStorage, *gorm.DB) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	store := newMemStorage()
	svc := NewProductService(
		repository.NewProductRepository(database),
		repository.NewFeedbackRepository(database),
		NewAssetSyncer(store),
	)
	return svc, store, database
}

func seedCategory(t *testing.T, database *gorm.DB) *model.Category {
	t.Helper()
	category := &model.Category{NameEN: "Dog Toys", NameZH: "狗玩具", Slug: "dog-toys"}
	require.NoError(t, database.Create(category).Error)
	return category
}

func TestProductService_CreateUploadsAssets(t *testing.T) {
	svc, store, database := setupProductService(t)
	category := seedCategory(t, database)

	product, warnings, err := svc.Create(context.Background(),
		ProductInput{CategoryID: category.ID, TitleEN: "Rope Ball", TitleZH: "绳球", Price: 9.99},
		&FileUpload{Filename: "rope.jpg", Content: []byte("img")},
		[]FileUpload{
			{Filename: "a.jpg", Content: []byte("a")},
			{Filename: "b.jpg", Content: []byte("b")},
		})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.NotZero(t, product.ID)
	assert.Equal(t, memBaseURL+"/uploads/main_rope.jpg", product.MainImage)
	assert.Equal(t, []string{
		memBaseURL + "/uploads/aplus_a.jpg",
		memBaseURL + "/uploads/aplus_b.jpg",
	}, product.GalleryURLs())
	assert.Len(t, store.putCalls, 3)
}

func TestProductService_UpdateWithoutFilesKeepsAssets(t *testing.T) {
	svc, store, database := setupProductService(t)
	category := seedCategory(t, database)

	product, _, err := svc.Create(context.Background(),
		ProductInput{CategoryID: category.ID, TitleEN: "Rope Ball", Price: 9.99},
		&FileUpload{Filename: "rope.jpg", Content: []byte("img")},
		[]FileUpload{{Filename: "a.jpg", Content: []byte("a")}})
	require.NoError(t, err)

	store.putCalls = nil
	store.deleteCalls = nil

	updated, warnings, err := svc.Update(context.Background(), product.ID,
		ProductInput{CategoryID: category.ID, TitleEN: "Rope Ball XL", Price: 12.99},
		AssetChange{}, nil)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Rope Ball XL", updated.TitleEN)
	assert.Equal(t, product.MainImage, updated.MainImage)
	assert.Equal(t, product.GalleryURLs(), updated.GalleryURLs())
	assert.Empty(t, store.putCalls, "scalar-only edit must not touch the store")
	assert.Empty(t, store.deleteCalls)
}

func TestProductService_UpdateReplacesMainImage(t *testing.T) {
	svc, store, database := setupProductService(t)
	category := seedCategory(t, database)

	product, _, err := svc.Create(context.Background(),
		ProductInput{CategoryID: category.ID, TitleEN: "Rope Ball", Price: 9.99},
		&FileUpload{Filename: "old.jpg", Content: []byte("old")}, nil)
	require.NoError(t, err)
	oldURL := product.MainImage

	store.putCalls = nil
	store.deleteCalls = nil

	updated, _, err := svc.Update(context.Background(), product.ID,
		ProductInput{CategoryID: category.ID, TitleEN: "Rope Ball", Price: 9.99},
		AssetChange{File: &FileUpload{Filename: "new.jpg", Content: []byte("new")}}, nil)

	require.NoError(t, err)
	assert.Equal(t, memBaseURL+"/uploads/main_new.jpg", updated.MainImage)
	require.Len(t, store.deleteCalls, 1)
	assert.Equal(t, []string{oldURL}, store.deleteCalls[0])
}

func TestProductService_DeleteBatchesGalleryCleanup(t *testing.T) {
	svc, store, database := setupProductService(t)
	category := seedCategory(t, database)

	product, _, err := svc.Create(context.Background(),
		ProductInput{CategoryID: category.ID, TitleEN: "Rope Ball", Price: 9.99},
		&FileUpload{Filename: "main.jpg", Content: []byte("m")},
		[]FileUpload{
			{Filename: "a.jpg", Content: []byte("a")},
			{Filename: "b.jpg", Content: []byte("b")},
			{Filename: "c.jpg", Content: []byte("c")},
		})
	require.NoError(t, err)
	gallery := product.GalleryURLs()

	store.deleteCalls = nil

	warnings, err := svc.Delete(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, store.deleteCalls, 2, "one call for the main image, one batched call for the gallery")
	assert.Equal(t, []string{product.MainImage}, store.deleteCalls[0])
	assert.Equal(t, gallery, store.deleteCalls[1])

	_, err = svc.GetByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_GetByIDNotFound(t *testing.T) {
	svc, _, _ := setupProductService(t)

	_, err := svc.GetByID(4242)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_GetDetailResolvesLanguage(t *testing.T) {
	svc, _, database := setupProductService(t)
	category := seedCategory(t, database)

	product, _, err := svc.Create(context.Background(), ProductInput{
		CategoryID:     category.ID,
		TitleEN:        "Rope Ball",
		TitleZH:        "绳球",
		Price:          9.99,
		BulletPointsEN: "Durable\nWashable",
		BulletPointsZH: "耐用\n可水洗",
	}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, database.Create(&model.Feedback{
		ProductID: product.ID,
		Rating:    5,
		TextEN:    "Great toy",
	}).Error)

	detail, err := svc.GetDetail(product.ID, model.LangZH)
	require.NoError(t, err)
	assert.Equal(t, []string{"耐用", "可水洗"}, detail.Bullets)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Great toy", detail.Reviews[0].TextEN)
}
