package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const FileName = "engine.lock"

var retryEvery = 200 * time.Millisecond

// Acquire takes the engine lock in dataDir, retrying until timeout.
// The returned func releases it.
func Acquire(dataDir string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return func() {}, err
	}
	lockPath := filepath.Join(dataDir, FileName)
	l := flock.New(lockPath)

	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire engine lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another engine is running on this data dir (lock: %s)", lockPath)
		}
		time.Sleep(retryEvery)
	}
}
