package history

import (
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"datecalc/internal/history/interfaces"
	"datecalc/internal/models"
	"datecalc/internal/providers"
)

// Archive moves records pruned from the live history into per-month
// zstd-compressed files under its directory, so old calculations stay
// inspectable without growing the live snapshot. An empty directory
// disables archiving.
type Archive struct {
	mu         sync.Mutex
	dir        string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewArchive(dir string, compressor interfaces.CompressorInterface, logger providers.Logger) *Archive {
	return &Archive{
		dir:        dir,
		compressor: compressor,
		logger:     logger,
	}
}

func (a *Archive) Enabled() bool {
	return a.dir != ""
}

// Append stores records into the archive file of their creation month.
func (a *Archive) Append(records []*models.HistoryRecord) error {
	if !a.Enabled() || len(records) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	byMonth := make(map[string][]*models.HistoryRecord)
	for _, r := range records {
		key := r.CreatedAt.UTC().Format("200601")
		byMonth[key] = append(byMonth[key], r)
	}

	for month, batch := range byMonth {
		if err := a.appendToMonth(month, batch); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archive) appendToMonth(month string, batch []*models.HistoryRecord) error {
	path := filepath.Join(a.dir, "history-"+month+".dat")

	existing, err := a.load(path)
	if err != nil {
		return err
	}

	storage := &models.Storage{Records: append(existing, batch...)}
	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := a.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// Load returns the archived records of one month file; a missing file is
// an empty archive.
func (a *Archive) Load(month string) ([]*models.HistoryRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load(filepath.Join(a.dir, "history-"+month+".dat"))
}

func (a *Archive) load(path string) ([]*models.HistoryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	decompressed, err := a.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressed, &storage); err != nil {
		return nil, err
	}
	return storage.Records, nil
}
