package upload

import "sync"

// Status tracks a pending upload through its lifecycle.
type Status string

const (
	StatusReady     Status = "ready"
	StatusUploading Status = "uploading"
	StatusDone      Status = "done"
	StatusError     Status = "error"
)

// PendingUpload is a file staged locally before it becomes a persisted
// record. It exists only in process memory; once the upload settles the
// caller persists the result URL and may discard the slot.
type PendingUpload struct {
	mu sync.Mutex

	Name        string
	ContentType string
	Data        []byte

	status    Status
	progress  int
	resultURL string
	errMsg    string
}

// NewPendingUpload stages a file for upload.
func NewPendingUpload(name, contentType string, data []byte) *PendingUpload {
	return &PendingUpload{
		Name:        name,
		ContentType: contentType,
		Data:        data,
		status:      StatusReady,
	}
}

// Snapshot is a copyable view of the slot's current state.
type Snapshot struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Progress  int    `json:"progress"`
	ResultURL string `json:"url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Snapshot returns the current state under the slot's own lock.
func (p *PendingUpload) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Name:      p.Name,
		Status:    p.status,
		Progress:  p.progress,
		ResultURL: p.resultURL,
		Error:     p.errMsg,
	}
}

// ReplaceData swaps the staged payload, used after an optional crop.
func (p *PendingUpload) ReplaceData(data []byte, contentType string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Data = data
	p.ContentType = contentType
}

func (p *PendingUpload) markUploading() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = StatusUploading
	p.progress = 1
}

// setProgress keeps progress monotonic while uploading: late ticks from the
// simulated progress timer can never move it backwards.
func (p *PendingUpload) setProgress(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusUploading {
		return
	}
	if percent > p.progress {
		p.progress = percent
	}
}

func (p *PendingUpload) markDone(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = StatusDone
	p.progress = 100
	p.resultURL = url
}

// MarkFailed settles the slot as errored before any upload started,
// used when a pre-upload transform rejects the file.
func (p *PendingUpload) MarkFailed(message string) {
	p.markError(message)
}

func (p *PendingUpload) markError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = StatusError
	p.progress = 0
	p.errMsg = message
}
