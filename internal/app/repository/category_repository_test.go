package repository

import (
	"testing"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_FindAllNavigationOrder(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))

	leashes := &model.Category{NameEN: "Leashes", Slug: "leashes", SortOrder: 1}
	toys := &model.Category{NameEN: "Toys", Slug: "toys", SortOrder: 5}
	beds := &model.Category{NameEN: "Beds", Slug: "beds", SortOrder: 5}
	for _, c := range []*model.Category{leashes, toys, beds} {
		require.NoError(t, repo.Create(c))
	}

	categories, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	// Higher sort_order first; newest row breaks the tie.
	assert.Equal(t, "beds", categories[0].Slug)
	assert.Equal(t, "toys", categories[1].Slug)
	assert.Equal(t, "leashes", categories[2].Slug)
}

func TestCategoryRepository_FindBySlug(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&model.Category{NameEN: "Toys", Slug: "toys"}))

	category, err := repo.FindBySlug("toys")
	require.NoError(t, err)
	assert.Equal(t, "Toys", category.NameEN)

	_, err = repo.FindBySlug("missing")
	assert.Error(t, err)
}
