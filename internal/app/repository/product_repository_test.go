package repository

import (
	"testing"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTestCatalog(t *testing.T, database *gorm.DB) *model.Category {
	t.Helper()

	category := &model.Category{NameEN: "Toys", Slug: "toys"}
	require.NoError(t, database.Create(category).Error)

	products := []model.Product{
		{CategoryID: category.ID, TitleEN: "Rope Ball", Price: 9.99, IsFeatured: true, IsNew: true},
		{CategoryID: category.ID, TitleEN: "Squeaky Bone", Price: 4.99, IsDeal: true},
		{CategoryID: category.ID, TitleEN: "Frisbee", Price: 7.49, IsFeatured: true},
	}
	for i := range products {
		require.NoError(t, database.Create(&products[i]).Error)
	}
	return category
}

func TestProductRepository_FlagListings(t *testing.T) {
	database := setupTestDB(t)
	repo := NewProductRepository(database)
	seedTestCatalog(t, database)

	featured, err := repo.FindFeatured(0)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "Frisbee", featured[0].TitleEN, "newest first")

	limited, err := repo.FindFeatured(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Frisbee", limited[0].TitleEN)

	deals, err := repo.FindDeals()
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Squeaky Bone", deals[0].TitleEN)

	arrivals, err := repo.FindNewArrivals()
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "Rope Ball", arrivals[0].TitleEN)
}

func TestProductRepository_FindByCategory(t *testing.T) {
	database := setupTestDB(t)
	repo := NewProductRepository(database)
	category := seedTestCatalog(t, database)

	other := &model.Category{NameEN: "Beds", Slug: "beds"}
	require.NoError(t, database.Create(other).Error)

	products, err := repo.FindByCategory(category.ID)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	empty, err := repo.FindByCategory(other.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductRepository_FindAllWithCategoryPreloads(t *testing.T) {
	database := setupTestDB(t)
	repo := NewProductRepository(database)
	seedTestCatalog(t, database)

	products, err := repo.FindAllWithCategory()
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i := range products {
		require.NotNil(t, products[i].Category)
		assert.Equal(t, "toys", products[i].Category.Slug)
	}
}
