package keys

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"
)

const (
	keyDirPerm  = 0o740
	keyFilePerm = 0o600
)

// readKeyFile reads at most limit bytes of path under a shared lock.
// Reading more than limit bytes is reported as trailing data. The caller owns and wipes the result.
func readKeyFile(path string, limit int64, log logger.Logger) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open key file: %w", crypto.ErrIO, err)
	}
	defer closeKeyFile(f, log)

	if err := lockFile(f, false); err != nil {
		return nil, fmt.Errorf("%w: error while locking file (shared/reading) %s: %w", crypto.ErrIO, path, err)
	}
	defer unlockKeyFile(f, log)

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: error while reading key file %s: %w", crypto.ErrIO, path, err)
	}

	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("%w: key file %s is empty", crypto.ErrKeyNotSet, path)
	case int64(len(data)) > limit:
		wipe(data)
		return nil, fmt.Errorf("%w: key file %s has trailing data", crypto.ErrInvalidKey, path)
	}

	return data, nil
}

// writeKeyFile replaces the content of path with payload under an exclusive lock,
// creating the parent directory when missing. The file is not truncated before the lock is held.
func writeKeyFile(path string, payload []byte, log logger.Logger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, keyDirPerm); err != nil {
		return fmt.Errorf("%w: directory %q was not created: %w", crypto.ErrIO, dir, err)
	}

	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE, keyFilePerm)
	if err != nil {
		return fmt.Errorf("%w: failed to open key file: %w", crypto.ErrIO, err)
	}
	defer closeKeyFile(f, log)

	if err := lockFile(f, true); err != nil {
		return fmt.Errorf("%w: error while locking file (exclusive/writing) %s: %w", crypto.ErrIO, path, err)
	}
	defer unlockKeyFile(f, log)

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("%w: error while truncating key file %s: %w", crypto.ErrIO, path, err)
	}
	if _, err := f.Write(payload); err != nil {
		return fmt.Errorf("%w: error while writing key file %s: %w", crypto.ErrIO, path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: error while syncing key file %s: %w", crypto.ErrIO, path, err)
	}

	return nil
}

// unlockKeyFile releases the advisory lock. The critical section already completed, so failure is only logged.
func unlockKeyFile(f *os.File, log logger.Logger) {
	if err := unlockFile(f); err != nil {
		log.Warn("Error while unlocking file ", f.Name(), ": ", err)
	}
}

func closeKeyFile(f *os.File, log logger.Logger) {
	if err := f.Close(); err != nil {
		log.Warn("failed to close key file ", f.Name(), ": ", err)
	}
}
