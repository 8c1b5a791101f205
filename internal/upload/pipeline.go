package upload

import (
	"bytes"
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/pkg/storage"
)

// Pipeline pushes staged files to object storage while reporting
// simulated progress. Supabase's REST upload gives no transfer events,
// so progress is advanced on a timer and snapped to its terminal value
// when the request settles.
type Pipeline struct {
	store    storage.ObjectStorage
	logger   *zap.Logger
	interval time.Duration
}

// NewPipeline constructs a pipeline. interval controls how often the
// simulated progress ticks while an upload is in flight.
func NewPipeline(store storage.ObjectStorage, logger *zap.Logger, interval time.Duration) *Pipeline {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return &Pipeline{store: store, logger: logger, interval: interval}
}

// Run uploads a single slot and returns the public URL on success. The
// slot's status and progress are updated as the upload proceeds; on
// failure the slot is marked errored with progress reset to zero and no
// URL is returned.
func (pl *Pipeline) Run(ctx context.Context, p *PendingUpload) (string, error) {
	key := storage.NewObjectKey(p.Name)
	p.markUploading()

	stop := make(chan struct{})
	var tickWG sync.WaitGroup
	tickWG.Add(1)
	go func() {
		defer tickWG.Done()
		ticker := time.NewTicker(pl.interval)
		defer ticker.Stop()
		percent := 0
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				percent += 3 + rand.Intn(15)
				if percent > 95 {
					percent = 95
				}
				p.setProgress(percent)
			}
		}
	}()

	err := pl.store.Upload(ctx, key, p.ContentType, bytes.NewReader(p.Data))
	close(stop)
	tickWG.Wait()

	if err != nil {
		p.markError(err.Error())
		pl.logger.Error("upload failed",
			zap.String("file", p.Name),
			zap.String("key", key),
			zap.Error(err))
		return "", err
	}

	url := pl.store.PublicURL(key)
	p.markDone(url)
	pl.logger.Info("upload complete",
		zap.String("file", p.Name),
		zap.String("key", key),
		zap.String("url", url))
	return url, nil
}
