package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/SwordForge_Go/internal/config"
	"github.com/osse101/SwordForge_Go/internal/logger"
)

// SetupLogger installs the process logger. With LogDir set every record is
// written to stdout and to a fresh session file; the returned closer must be
// closed on exit. Without LogDir the closer is a no-op.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, cfg.Environment == "dev")

	var closer io.Closer = nopCloser{}
	var out io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := openSessionLog(cfg.LogDir, time.Now())
		if err != nil {
			return nil, err
		}
		closer = logFile
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger.InitLoggerWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingSwordForge,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"forge_config", cfg.ForgeConfigPath,
		"improvement_factor", cfg.ImprovementFactor,
		"sell_countdown", cfg.SellCountdown,
		"sell_rack_size", cfg.SellRackSize)

	return closer, nil
}

func openSessionLog(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(dir, LogFileRetentionCount)

	name := filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}
	return f, nil
}

// cleanupLogs deletes the oldest session logs so at most keep remain.
// Session names embed a sortable timestamp so lexical order is age order.
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
