package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	defaultLogFileName   = "dozer.log"
	defaultMaxSizeMB     = 10
	defaultMaxBackups    = 3
	bytesPerMB           = 1024 * 1024
	logFilePerm          = 0o600
	rotationTimestampFmt = "2006-01-02-15-04-05"
)

// RotatorConfig configures a LogRotator. Zero sizes fall back to defaults.
type RotatorConfig struct {
	Dir        string
	FileName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.Writer that rolls the log file over by size and
// prunes backups by age and count.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) the current log file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.FileName == "" {
		cfg.FileName = defaultLogFileName
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultMaxBackups
	}

	r := &LogRotator{
		baseDir:    cfg.Dir,
		baseName:   cfg.FileName,
		maxSize:    int64(cfg.MaxSizeMB) * bytesPerMB,
		maxAge:     time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		maxBackups: cfg.MaxBackups,
		compress:   cfg.Compress,
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *LogRotator) openCurrentFile() error {
	logPath := filepath.Join(r.baseDir, r.baseName)

	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

// Write implements io.Writer, rotating first when p would overflow the file.
func (r *LogRotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.currentFile.Write(p)
	if err != nil {
		return n, err
	}

	r.currentSize += int64(n)
	return n, nil
}

func (r *LogRotator) rotate() error {
	if r.currentFile != nil {
		if err := r.currentFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "dozer: close log file: %v\n", err)
		}
	}

	currentPath := filepath.Join(r.baseDir, r.baseName)
	backupPath := currentPath + "." + time.Now().Format(rotationTimestampFmt)

	if err := os.Rename(currentPath, backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		r.compressBackup(backupPath)
	}

	r.cleanup()

	r.currentSize = 0
	return r.openCurrentFile()
}

// compressBackup gzips a rotated file; failures keep the plain backup.
func (r *LogRotator) compressBackup(path string) {
	if err := r.compressFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "dozer: compress log %s: %v\n", path, err)
		return
	}
	if err := os.Remove(path); err != nil {
		fmt.Fprintf(os.Stderr, "dozer: remove uncompressed log %s: %v\n", path, err)
	}
}

func (r *LogRotator) compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer closeQuietly(in)

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// backup is a rotated log file, plain or gzipped.
type backup struct {
	path    string
	modTime time.Time
}

// backups lists rotated files for this log, oldest first.
func (r *LogRotator) backups() []backup {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil
	}

	prefix := r.baseName + "."
	var out []backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, backup{path: filepath.Join(r.baseDir, entry.Name()), modTime: info.ModTime()})
	}

	slices.SortFunc(out, func(a, b backup) int { return a.modTime.Compare(b.modTime) })
	return out
}

// cleanup drops backups past maxAge, then the oldest ones beyond maxBackups.
func (r *LogRotator) cleanup() {
	kept := r.backups()

	if r.maxAge > 0 {
		cutoff := time.Now().Add(-r.maxAge)
		fresh := kept[:0]
		for _, b := range kept {
			if b.modTime.Before(cutoff) {
				removeBackup(b.path)
				continue
			}
			fresh = append(fresh, b)
		}
		kept = fresh
	}

	if r.maxBackups > 0 && len(kept) > r.maxBackups {
		for _, b := range kept[:len(kept)-r.maxBackups] {
			removeBackup(b.path)
		}
	}
}

func removeBackup(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "dozer: remove log backup %s: %v\n", path, err)
	}
}

func closeQuietly(f *os.File) {
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "dozer: close %s: %v\n", f.Name(), err)
	}
}

// Close closes the current file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile != nil {
		return r.currentFile.Close()
	}
	return nil
}
