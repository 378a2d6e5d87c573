package reconciler

import (
	"context"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/internal/app/service"
	"github.com/jlin/peacepet-backend/internal/storage"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Reconciler is the opt-in garbage collector for orphaned assets: objects
// under the upload prefix that no database row references anymore. Orphans
// accumulate because deletions are best-effort; the sweep closes that gap.
type Reconciler struct {
	storage      storage.ObjectStorage
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	feedbackRepo repository.FeedbackRepository
	settingRepo  repository.SettingRepository
	cron         *cron.Cron
}

func New(
	st storage.ObjectStorage,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	feedbackRepo repository.FeedbackRepository,
	settingRepo repository.SettingRepository,
) *Reconciler {
	return &Reconciler{
		storage:      st,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		feedbackRepo: feedbackRepo,
		settingRepo:  settingRepo,
		cron:         cron.New(),
	}
}

// Start schedules the sweep. Failures inside a run are logged, never fatal.
func (r *Reconciler) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		if err := r.Sweep(context.Background()); err != nil {
			logger.Error("Asset reconciliation sweep failed", err)
		}
	})
	if err != nil {
		return err
	}
	r.cron.Start()

	logger.Info("Asset reconciler scheduled", map[string]interface{}{
		"schedule": schedule,
	})
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// Sweep deletes every stored object under the upload prefix that no
// asset-reference field points at.
func (r *Reconciler) Sweep(ctx context.Context) error {
	referenced, err := r.referencedURLs()
	if err != nil {
		return err
	}

	stored, err := r.storage.List(ctx, service.UploadFolder+"/")
	if err != nil {
		return err
	}

	var orphans []string
	for _, url := range stored {
		if !referenced[url] {
			orphans = append(orphans, url)
		}
	}

	if len(orphans) == 0 {
		logger.Info("Asset reconciliation found no orphans", map[string]interface{}{
			"stored":     len(stored),
			"referenced": len(referenced),
		})
		return nil
	}

	if err := r.storage.Delete(ctx, orphans...); err != nil {
		return err
	}

	logger.Info("Orphaned assets deleted", map[string]interface{}{
		"deleted":    len(orphans),
		"stored":     len(stored),
		"referenced": len(referenced),
	})
	return nil
}

// referencedURLs collects every asset reference currently stored in the
// database: category images, product main images and galleries, feedback
// photos, and asset-valued settings. Feedback is scanned as a whole table:
// product deletion does not cascade to reviews, so a review image can
// outlive its product and must still count as referenced.
func (r *Reconciler) referencedURLs() (map[string]bool, error) {
	referenced := make(map[string]bool)

	categories, err := r.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.Image != "" {
			referenced[category.Image] = true
		}
	}

	products, err := r.productRepo.FindAllWithCategory()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].MainImage != "" {
			referenced[products[i].MainImage] = true
		}
		for _, url := range products[i].GalleryURLs() {
			referenced[url] = true
		}
	}

	reviews, err := r.feedbackRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, review := range reviews {
		if review.Image != "" {
			referenced[review.Image] = true
		}
	}

	settings, err := r.settingRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, key := range model.AssetSettingKeys() {
		if url := settings[key]; url != "" {
			referenced[url] = true
		}
	}

	return referenced, nil
}
