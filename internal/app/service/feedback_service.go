package service

import (
	"context"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/pkg/logger"
)

const feedbackImagePrefix = "fb"

type FeedbackInput struct {
	ProductID uint
	Rating    float64
	TextEN    string
	TextZH    string
}

type FeedbackService interface {
	Create(ctx context.Context, input FeedbackInput, image *FileUpload) (*model.Feedback, []string, error)
	ListByProduct(productID uint) ([]model.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	assets       *AssetSyncer
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, assets *AssetSyncer) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		assets:       assets,
	}
}

func (s *feedbackService) Create(ctx context.Context, input FeedbackInput, image *FileUpload) (*model.Feedback, []string, error) {
	imageURL, warnings, err := s.assets.SyncField(ctx, "", AssetChange{File: image}, feedbackImagePrefix)
	if err != nil {
		return nil, warnings, err
	}

	feedback := &model.Feedback{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		TextEN:    input.TextEN,
		TextZH:    input.TextZH,
		Image:     imageURL,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, warnings, err
	}

	logger.Info("Feedback created", map[string]interface{}{
		"feedback_id": feedback.ID,
		"product_id":  feedback.ProductID,
	})
	return feedback, warnings, nil
}

func (s *feedbackService) ListByProduct(productID uint) ([]model.Feedback, error) {
	return s.feedbackRepo.FindByProduct(productID)
}
