package service

import (
	"context"

	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/pkg/logger"
)

type SettingService interface {
	GetAll() (map[string]string, error)
	UpsertValue(key, value string) error
	// ApplyAssetSetting runs the synchronizer for an asset-valued setting:
	// a delete directive empties the key, a new file replaces it, anything
	// else leaves both the row and the object store untouched.
	ApplyAssetSetting(ctx context.Context, key, prefix string, change AssetChange) ([]string, error)
}

type settingService struct {
	settingRepo repository.SettingRepository
	assets      *AssetSyncer
}

func NewSettingService(settingRepo repository.SettingRepository, assets *AssetSyncer) SettingService {
	return &settingService{
		settingRepo: settingRepo,
		assets:      assets,
	}
}

func (s *settingService) GetAll() (map[string]string, error) {
	return s.settingRepo.GetAll()
}

func (s *settingService) UpsertValue(key, value string) error {
	return s.settingRepo.Upsert(key, value)
}

func (s *settingService) ApplyAssetSetting(ctx context.Context, key, prefix string, change AssetChange) ([]string, error) {
	if !change.Delete && change.File == nil {
		return nil, nil
	}

	current, err := s.settingRepo.Get(key)
	if err != nil {
		return nil, err
	}

	url, warnings, err := s.assets.SyncField(ctx, current, change, prefix)
	if err != nil {
		return warnings, err
	}

	if err := s.settingRepo.Upsert(key, url); err != nil {
		return warnings, err
	}

	logger.Info("Asset setting updated", map[string]interface{}{
		"key":     key,
		"cleared": url == "",
	})
	return warnings, nil
}
