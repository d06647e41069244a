package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"speechprep/internal/audioprobe"
	"speechprep/internal/config"
	"speechprep/internal/logging"
	"speechprep/internal/manifest"
	"speechprep/internal/selector"
	"speechprep/internal/services"
)

// LockFilename guards the output directory against interleaved runs.
const LockFilename = ".speechprep.lock"

// Run executes the full filter pipeline and returns the manifest path.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	runLogger := logging.WithComponent(logger, "pipeline")

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrValidation, "pipeline", "create output directory", "", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.OutputDir, LockFilename))
	locked, err := lock.TryLock()
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "pipeline", "acquire run lock", "", err)
	}
	if !locked {
		return "", services.Wrap(services.ErrValidation, "pipeline", "acquire run lock",
			fmt.Sprintf("another run holds %s", lock.Path()), nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			runLogger.Warn("release run lock", logging.Error(err))
		}
	}()

	prober := audioprobe.NewWAVProber(logger)
	records, err := selector.New(cfg, prober, logger).Run(ctx)
	if err != nil {
		return "", err
	}

	exporter := manifest.NewExporter(cfg.Paths.OutputDir, cfg.Filter.TargetDurationSec, logger)
	csvPath, err := exporter.Export(records)
	if err != nil {
		return "", err
	}

	runLogger.Info("pipeline completed successfully", logging.String("manifest", csvPath))
	return csvPath, nil
}
