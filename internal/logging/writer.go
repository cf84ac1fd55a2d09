package logging

import (
	"fmt"
	"os"

	"github.com/algorand/go-deadlock"
)

// DefaultSizeLimit is the size after which the log file is discarded.
const DefaultSizeLimit = 1 << 20

// SizeLimitedWriter appends to a file and deletes it once it would grow past
// the limit, starting a fresh file in its place.
type SizeLimitedWriter struct {
	mu        deadlock.Mutex
	file      *os.File
	path      string
	nextWrite int64
	limit     int64
}

// OpenSizeLimitedWriter opens path for appending.
func OpenSizeLimitedWriter(path string, limit int64) (*SizeLimitedWriter, error) {
	if limit <= 0 {
		limit = DefaultSizeLimit
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	writer := &SizeLimitedWriter{file: file, path: path, limit: limit}
	if info, err := file.Stat(); err == nil {
		writer.nextWrite = info.Size()
	}
	return writer, nil
}

// Write appends p, deleting the current file first if p does not fit.
func (writer *SizeLimitedWriter) Write(p []byte) (int, error) {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file == nil {
		return 0, os.ErrClosed
	}
	if int64(len(p)) > writer.limit {
		return 0, fmt.Errorf("log entry of %d bytes exceeds limit of %d", len(p), writer.limit)
	}

	if writer.nextWrite+int64(len(p)) > writer.limit {
		if err := writer.rollLocked(); err != nil {
			return 0, err
		}
	}

	n, err := writer.file.Write(p)
	writer.nextWrite += int64(n)
	return n, err
}

// Close closes the underlying file.
func (writer *SizeLimitedWriter) Close() error {
	writer.mu.Lock()
	defer writer.mu.Unlock()
	if writer.file == nil {
		return nil
	}
	err := writer.file.Close()
	writer.file = nil
	return err
}

func (writer *SizeLimitedWriter) rollLocked() error {
	if err := writer.file.Close(); err != nil {
		return fmt.Errorf("close full log file: %w", err)
	}
	if err := os.Remove(writer.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete full log file: %w", err)
	}
	file, err := os.OpenFile(writer.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		writer.file = nil
		return fmt.Errorf("reopen log file: %w", err)
	}
	writer.file = file
	writer.nextWrite = 0
	return nil
}
