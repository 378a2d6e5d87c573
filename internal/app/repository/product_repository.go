package repository

import (
	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindFeatured(limit int) ([]model.Product, error)
	FindDeals() ([]model.Product, error)
	FindNewArrivals() ([]model.Product, error)
	FindByCategory(categoryID uint) ([]model.Product, error)
	FindAllWithCategory() ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"title_en":    product.TitleEN,
		"category_id": product.CategoryID,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"title_en":    product.TitleEN,
			"category_id": product.CategoryID,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return &product, nil
}

// listByFlag returns products carrying the given boolean flag, newest first.
func (r *productRepository) listByFlag(flag string, limit int) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Where(flag+" = ?", true).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to list products by flag in database", err, map[string]interface{}{
			"flag": flag,
		})
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindFeatured(limit int) ([]model.Product, error) {
	return r.listByFlag("is_featured", limit)
}

func (r *productRepository) FindDeals() ([]model.Product, error) {
	return r.listByFlag("is_deal", 0)
}

func (r *productRepository) FindNewArrivals() ([]model.Product, error) {
	return r.listByFlag("is_new", 0)
}

func (r *productRepository) FindByCategory(categoryID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category_id = ?", categoryID).Order("id DESC").Find(&products).Error
	if err != nil {
		logger.Error("Failed to find products by category in database", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	return products, nil
}

// FindAllWithCategory is the admin listing: every product with its category
// preloaded, newest first.
func (r *productRepository) FindAllWithCategory() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("id DESC").Find(&products).Error
	if err != nil {
		logger.Error("Failed to list products with categories in database", err)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"title_en":   product.TitleEN,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}
