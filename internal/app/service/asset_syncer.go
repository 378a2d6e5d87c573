package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jlin/peacepet-backend/internal/storage"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"github.com/jlin/peacepet-backend/pkg/util"
)

// UploadFolder is the object-store key prefix for every managed asset.
const UploadFolder = "uploads"

// FileUpload carries one uploaded file into the synchronizer.
type FileUpload struct {
	Filename string
	Content  []byte
}

// AssetChange describes the requested mutation of a single asset field.
// Delete wins over File; when both are zero the field is left untouched.
type AssetChange struct {
	Delete bool
	File   *FileUpload
}

// AssetSyncer keeps relational asset-reference fields consistent with the
// object store. Deletions are best-effort: failures become warnings and
// never block the enclosing write. Upload failures propagate.
type AssetSyncer struct {
	storage storage.ObjectStorage
}

func NewAssetSyncer(st storage.ObjectStorage) *AssetSyncer {
	return &AssetSyncer{storage: st}
}

// SyncField applies the per-field policy and returns the reference to
// persist plus any non-fatal warnings:
//
//  1. explicit delete: remove the old object, reference becomes ""
//  2. new file: remove the old object, upload under prefix, reference
//     becomes the new object URL
//  3. neither: the current reference is returned unchanged and the object
//     store is not touched
func (s *AssetSyncer) SyncField(ctx context.Context, current string, change AssetChange, prefix string) (string, []string, error) {
	var warnings []string

	if change.Delete {
		if current != "" {
			s.bestEffortDelete(ctx, &warnings, current)
		}
		return "", warnings, nil
	}

	if change.File != nil {
		if current != "" {
			s.bestEffortDelete(ctx, &warnings, current)
		}
		url, err := s.put(ctx, prefix, *change.File)
		if err != nil {
			return "", warnings, err
		}
		return url, warnings, nil
	}

	return current, warnings, nil
}

// SyncGallery replaces the whole list when any new files are supplied:
// every existing member is deleted in one batched call, then the full new
// list is uploaded. Without new files the current list stays untouched.
// Partial replacement is not supported.
func (s *AssetSyncer) SyncGallery(ctx context.Context, current []string, files []FileUpload, prefix string) ([]string, []string, error) {
	var warnings []string

	if len(files) == 0 {
		return current, warnings, nil
	}

	if len(current) > 0 {
		s.bestEffortDelete(ctx, &warnings, current...)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.put(ctx, prefix, file)
		if err != nil {
			return nil, warnings, err
		}
		urls = append(urls, url)
	}
	return urls, warnings, nil
}

// DeleteRefs removes the given references on a best-effort basis, for
// entity deletion. Each call covers its URLs with a single store call.
func (s *AssetSyncer) DeleteRefs(ctx context.Context, warnings *[]string, urls ...string) {
	if len(urls) == 0 {
		return
	}
	s.bestEffortDelete(ctx, warnings, urls...)
}

func (s *AssetSyncer) put(ctx context.Context, prefix string, file FileUpload) (string, error) {
	key := fmt.Sprintf("%s/%s_%s", UploadFolder, prefix, util.SanitizeFilename(file.Filename))
	url, err := s.storage.Put(ctx, key, bytes.NewReader(file.Content))
	if err != nil {
		logger.Error("Failed to store asset", err, map[string]interface{}{
			"key": key,
		})
		return "", err
	}
	return url, nil
}

func (s *AssetSyncer) bestEffortDelete(ctx context.Context, warnings *[]string, urls ...string) {
	if err := s.storage.Delete(ctx, urls...); err != nil {
		logger.Warn("Could not delete asset from blob storage", map[string]interface{}{
			"urls":  urls,
			"error": err.Error(),
		})
		*warnings = append(*warnings, fmt.Sprintf("Could not delete image from blob storage: %v", err))
	}
}
