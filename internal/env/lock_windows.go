//go:build windows

// The Windows counterpart of lock.go. There is no flock equivalent used
// here yet: this opens the lock file exclusively-for-read-write but does
// not take a true range lock, so it only protects against this package's
// own double-open, not a second process on the same file.
package env

import (
	"io"
	"os"
)

type fileLock struct {
	f *os.File
}

func lockFile(name string) (io.Closer, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	return &fileLock{f: f}, nil
}

func (l *fileLock) Close() error {
	return l.f.Close()
}
