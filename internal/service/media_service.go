package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/imaging"
	"github.com/sunrise-school/cms-api/internal/upload"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/storage"
)

// StagedFile is one file received from a multipart request, held in
// memory until its upload settles.
type StagedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// MediaService runs the upload workflow: an optional crop transform
// followed by a concurrent push to object storage. Files that fail the
// crop never reach the store; files that fail the store produce no URL
// and therefore no content record.
type MediaService struct {
	pipeline *upload.Pipeline
	store    storage.ObjectStorage
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewMediaService constructs the service.
func NewMediaService(pipeline *upload.Pipeline, store storage.ObjectStorage, metrics *MetricsService, logger *zap.Logger) *MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaService{pipeline: pipeline, store: store, metrics: metrics, logger: logger}
}

// UploadBatch stages every file, applies the crop when requested and
// uploads the survivors concurrently. The response reports each file's
// settled state in submission order.
func (s *MediaService) UploadBatch(ctx context.Context, files []StagedFile, crop dto.CropParams) (*dto.UploadBatchResponse, error) {
	if len(files) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no files submitted")
	}

	slots := make([]*upload.PendingUpload, len(files))
	uploadable := make([]*upload.PendingUpload, 0, len(files))
	for i, f := range files {
		slot := upload.NewPendingUpload(f.Name, f.ContentType, f.Data)
		slots[i] = slot
		if crop.Provided() {
			cropped, err := imaging.Crop(f.Data, imaging.Rect{X: crop.X, Y: crop.Y, Width: crop.Width, Height: crop.Height})
			if err != nil {
				s.failSlot(slot, err)
				continue
			}
			slot.ReplaceData(cropped, "image/jpeg")
		}
		uploadable = append(uploadable, slot)
	}

	s.pipeline.RunBatch(ctx, uploadable)

	resp := &dto.UploadBatchResponse{Results: make([]dto.UploadResult, len(slots))}
	for i, slot := range slots {
		snap := slot.Snapshot()
		resp.Results[i] = dto.UploadResult{
			Name:     snap.Name,
			Status:   snap.Status,
			Progress: snap.Progress,
			URL:      snap.ResultURL,
			Error:    snap.Error,
		}
		succeeded := snap.Status == upload.StatusDone
		if succeeded {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
		s.metrics.ObserveUpload(succeeded, int64(len(files[i].Data)))
	}
	return resp, nil
}

// RemoveByURL deletes the stored object behind a public URL. Content
// services call it when a record insert fails after its upload settled,
// so the store never keeps an object no record points at. URLs outside
// this store are ignored.
func (s *MediaService) RemoveByURL(ctx context.Context, publicURL string) {
	key, ok := storage.KeyFromURL(s.store, publicURL)
	if !ok {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		s.logger.Warn("orphaned object cleanup failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.logger.Info("removed orphaned object", zap.String("key", key))
}

// failSlot marks a slot errored before upload, surfacing the typed
// message when the failure came from the crop transform.
func (s *MediaService) failSlot(slot *upload.PendingUpload, err error) {
	slot.MarkFailed(appErrors.FromError(err).Message)
	s.logger.Warn("crop failed", zap.String("file", slot.Name), zap.Error(err))
}
