package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "BOXLAYOUT_DEBUG"

var (
	logFile *os.File
	logger  *zap.Logger
	envOnce sync.Once
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		_ = logger.Sync()
		_ = logFile.Close()
	}
	logFile = f

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	logger = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(f), zap.DebugLevel))
	return nil
}

// Logger returns the debug logger. On first use it honors EnvVar; without
// it, or before Init, the logger discards everything.
func Logger() *zap.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			defer mu.Unlock()
			if logFile == nil {
				// A bad path leaves debug logging off.
				_ = initLocked(path)
			}
		}
	})

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logger.Sync()
		err := logFile.Close()
		logFile = nil
		logger = nil
		return err
	}
	return nil
}
