package service

import (
	"context"
	"errors"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"github.com/jlin/peacepet-backend/pkg/util"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// categoryImagePrefix names category images in the object store.
const categoryImagePrefix = "cat"

// CategoryInput carries the scalar fields of a create/edit request. The
// slug is normalized before persisting.
type CategoryInput struct {
	NameEN    string
	NameZH    string
	Slug      string
	SortOrder int
}

type CategoryService interface {
	List() ([]model.Category, error)
	GetBySlug(slug string) (*model.Category, error)
	GetByID(id uint) (*model.Category, error)
	Create(ctx context.Context, input CategoryInput, image *FileUpload) (*model.Category, []string, error)
	Update(ctx context.Context, id uint, input CategoryInput, image AssetChange) (*model.Category, []string, error)
	Delete(ctx context.Context, id uint) ([]string, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	assets       *AssetSyncer
}

func NewCategoryService(categoryRepo repository.CategoryRepository, assets *AssetSyncer) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		assets:       assets,
	}
}

func (s *categoryService) List() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, input CategoryInput, image *FileUpload) (*model.Category, []string, error) {
	imageURL, warnings, err := s.assets.SyncField(ctx, "", AssetChange{File: image}, categoryImagePrefix)
	if err != nil {
		return nil, warnings, err
	}

	category := &model.Category{
		NameEN:    input.NameEN,
		NameZH:    input.NameZH,
		Slug:      util.Slugify(input.Slug),
		Image:     imageURL,
		SortOrder: input.SortOrder,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, warnings, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return category, warnings, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, input CategoryInput, image AssetChange) (*model.Category, []string, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	imageURL, warnings, err := s.assets.SyncField(ctx, category.Image, image, categoryImagePrefix)
	if err != nil {
		return nil, warnings, err
	}

	category.NameEN = input.NameEN
	category.NameZH = input.NameZH
	category.Slug = util.Slugify(input.Slug)
	category.Image = imageURL
	category.SortOrder = input.SortOrder

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, warnings, err
	}

	logger.Info("Category updated", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return category, warnings, nil
}

// Delete removes the category row after a best-effort delete of its image.
func (s *categoryService) Delete(ctx context.Context, id uint) ([]string, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if category.Image != "" {
		s.assets.DeleteRefs(ctx, &warnings, category.Image)
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return warnings, err
	}

	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return warnings, nil
}
