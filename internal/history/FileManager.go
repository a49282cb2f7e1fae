package history

import (
	"os"

	json "github.com/goccy/go-json"

	"datecalc/internal/history/interfaces"
	"datecalc/internal/models"
	"datecalc/internal/providers"
	"datecalc/internal/services"
)

// FileManager persists the history snapshot as zstd-compressed JSON,
// written atomically via a temp file.
type FileManager struct {
	service    services.CalculatorServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.CalculatorServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	storage := f.service.GetSnapshot()

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err != nil {
		f.logger.Warnf(providers.TypeHistory, "Inconsistent history file, skipping restore: %s", err)
		return err
	}
	if storage.Records == nil {
		return nil
	}

	f.service.PutRecords(storage.Records)
	return nil
}
