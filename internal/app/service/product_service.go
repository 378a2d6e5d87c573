package service

import (
	"context"
	"errors"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// Object-store name prefixes for the two product asset fields.
const (
	mainImagePrefix = "main"
	galleryPrefix   = "aplus"
)

// ProductInput carries the scalar fields of a create/edit request.
type ProductInput struct {
	CategoryID     uint
	TitleEN        string
	TitleZH        string
	Price          float64
	BulletPointsEN string
	BulletPointsZH string
	DescriptionEN  string
	DescriptionZH  string
	MonthlySales   int
	AvgRating      float64
	IsNew          bool
	IsDeal         bool
	IsFeatured     bool
}

// ProductDetail bundles a product with its reviews and language-resolved
// presentation fields for the public detail endpoint.
type ProductDetail struct {
	Product *model.Product   `json:"product"`
	Bullets []string         `json:"bullets"`
	Gallery []string         `json:"gallery"`
	Reviews []model.Feedback `json:"reviews"`
}

type ProductService interface {
	GetFeatured(limit int) ([]model.Product, error)
	GetDeals() ([]model.Product, error)
	GetNewArrivals() ([]model.Product, error)
	GetByCategory(categoryID uint) ([]model.Product, error)
	ListAll() ([]model.Product, error)
	GetByID(id uint) (*model.Product, error)
	GetDetail(id uint, lang string) (*ProductDetail, error)
	Create(ctx context.Context, input ProductInput, mainImage *FileUpload, gallery []FileUpload) (*model.Product, []string, error)
	Update(ctx context.Context, id uint, input ProductInput, mainImage AssetChange, gallery []FileUpload) (*model.Product, []string, error)
	Delete(ctx context.Context, id uint) ([]string, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	feedbackRepo repository.FeedbackRepository
	assets       *AssetSyncer
}

func NewProductService(productRepo repository.ProductRepository, feedbackRepo repository.FeedbackRepository, assets *AssetSyncer) ProductService {
	return &productService{
		productRepo:  productRepo,
		feedbackRepo: feedbackRepo,
		assets:       assets,
	}
}

func (s *productService) GetFeatured(limit int) ([]model.Product, error) {
	return s.productRepo.FindFeatured(limit)
}

func (s *productService) GetDeals() ([]model.Product, error) {
	return s.productRepo.FindDeals()
}

func (s *productService) GetNewArrivals() ([]model.Product, error) {
	return s.productRepo.FindNewArrivals()
}

func (s *productService) GetByCategory(categoryID uint) ([]model.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

func (s *productService) ListAll() ([]model.Product, error) {
	return s.productRepo.FindAllWithCategory()
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetDetail(id uint, lang string) (*ProductDetail, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.feedbackRepo.FindByProduct(id)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product: product,
		Bullets: product.Bullets(lang),
		Gallery: product.GalleryURLs(),
		Reviews: reviews,
	}, nil
}

func (s *productService) Create(ctx context.Context, input ProductInput, mainImage *FileUpload, gallery []FileUpload) (*model.Product, []string, error) {
	mainURL, warnings, err := s.assets.SyncField(ctx, "", AssetChange{File: mainImage}, mainImagePrefix)
	if err != nil {
		return nil, warnings, err
	}

	galleryURLs, galleryWarnings, err := s.assets.SyncGallery(ctx, nil, gallery, galleryPrefix)
	warnings = append(warnings, galleryWarnings...)
	if err != nil {
		return nil, warnings, err
	}

	product := s.apply(&model.Product{}, input)
	product.MainImage = mainURL
	product.SetGalleryURLs(galleryURLs)

	if err := s.productRepo.Create(product); err != nil {
		return nil, warnings, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"title_en":   product.TitleEN,
	})
	return product, warnings, nil
}

func (s *productService) Update(ctx context.Context, id uint, input ProductInput, mainImage AssetChange, gallery []FileUpload) (*model.Product, []string, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	mainURL, warnings, err := s.assets.SyncField(ctx, product.MainImage, mainImage, mainImagePrefix)
	if err != nil {
		return nil, warnings, err
	}

	galleryURLs, galleryWarnings, err := s.assets.SyncGallery(ctx, product.GalleryURLs(), gallery, galleryPrefix)
	warnings = append(warnings, galleryWarnings...)
	if err != nil {
		return nil, warnings, err
	}

	product = s.apply(product, input)
	product.MainImage = mainURL
	product.SetGalleryURLs(galleryURLs)

	if err := s.productRepo.Update(product); err != nil {
		return nil, warnings, err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
		"title_en":   product.TitleEN,
	})
	return product, warnings, nil
}

// Delete removes the product row after best-effort deletes of its assets:
// one call for the main image, one batched call for the whole gallery.
func (s *productService) Delete(ctx context.Context, id uint) ([]string, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if product.MainImage != "" {
		s.assets.DeleteRefs(ctx, &warnings, product.MainImage)
	}
	if urls := product.GalleryURLs(); len(urls) > 0 {
		s.assets.DeleteRefs(ctx, &warnings, urls...)
	}

	if err := s.productRepo.Delete(id); err != nil {
		return warnings, err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return warnings, nil
}

func (s *productService) apply(product *model.Product, input ProductInput) *model.Product {
	product.CategoryID = input.CategoryID
	product.TitleEN = input.TitleEN
	product.TitleZH = input.TitleZH
	product.Price = input.Price
	product.BulletPointsEN = input.BulletPointsEN
	product.BulletPointsZH = input.BulletPointsZH
	product.DescriptionEN = input.DescriptionEN
	product.DescriptionZH = input.DescriptionZH
	product.MonthlySales = input.MonthlySales
	product.AvgRating = input.AvgRating
	product.IsNew = input.IsNew
	product.IsDeal = input.IsDeal
	product.IsFeatured = input.IsFeatured
	return product
}
