package history

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"datecalc/internal/history/interfaces"
	"datecalc/internal/providers"
	"datecalc/internal/services"
	"datecalc/internal/structures"
)

// Scheduler drives the periodic history work: snapshot persistence and
// retention pruning (with archiving of what gets pruned).
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.CalculatorServiceInterface
	fileManager *FileManager
	archive     *Archive
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.History.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.History.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeHistory, "Error while persisting history: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Infof(providers.TypeHistory, "Persisted history to file %s", s.config.History.FilePath)
	})

	if retention := s.config.History.Retention; retention > 0 {
		pruneInterval := time.Hour
		if retention < pruneInterval {
			pruneInterval = retention
		}
		s.cron.AddFunc(gron.Every(pruneInterval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()
			s.pruneExpired()
		})
	}

	s.cron.Start()
}

func (s *Scheduler) pruneExpired() {
	expired := s.service.PruneExpired()
	if len(expired) == 0 {
		return
	}
	if err := s.archive.Append(expired); err != nil {
		s.logger.Errorf(providers.TypeHistory, "Error while archiving %d pruned records: %s", len(expired), err)
		return
	}
	s.logger.Infof(providers.TypeHistory, "Pruned %d expired records", len(expired))
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.History.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeHistory, "Persisting history to file...")
	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.History.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeHistory, "Error while persisting history: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(
	config *structures.Config,
	logger providers.Logger,
	service services.CalculatorServiceInterface,
	fileManager *FileManager,
	archive *Archive,
	metrics providers.MetricsProviderInterface,
) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		archive:     archive,
		metrics:     metrics,
	}
}

// NewHistoryArchive builds the archive from config, shared with the DI
// injector.
func NewHistoryArchive(config *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *Archive {
	return NewArchive(config.History.ArchiveDir, compressor, logger)
}
