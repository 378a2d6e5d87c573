package repository

import (
	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindByProduct(productID uint) ([]model.Feedback, error)
	FindAll() ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	logger.Debug("Creating feedback in database", map[string]interface{}{
		"product_id": feedback.ProductID,
		"rating":     feedback.Rating,
	})

	if err := r.db.Create(feedback).Error; err != nil {
		logger.Error("Failed to create feedback in database", err, map[string]interface{}{
			"product_id": feedback.ProductID,
		})
		return err
	}
	return nil
}

// FindAll returns every review, including ones whose product has been
// deleted since.
func (r *feedbackRepository) FindAll() ([]model.Feedback, error) {
	var reviews []model.Feedback
	if err := r.db.Find(&reviews).Error; err != nil {
		logger.Error("Failed to list feedback in database", err)
		return nil, err
	}
	return reviews, nil
}

func (r *feedbackRepository) FindByProduct(productID uint) ([]model.Feedback, error) {
	var reviews []model.Feedback
	err := r.db.Where("product_id = ?", productID).Order("id DESC").Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to find feedback by product in database", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return reviews, nil
}
