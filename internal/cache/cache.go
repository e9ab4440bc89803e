package cache

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Kind partitions the cache namespace by document type. Entries cached under
// one kind are never visible under another, even for identical content.
type Kind string

const (
	KindResume Kind = "resume"
	KindJob    Kind = "job"
)

// Entry is a single persisted cache record. The field names match the on-disk
// JSON format, one file per record.
type Entry struct {
	// FilePath is the source location at caching time. Informational only;
	// lookups key on content, not path.
	FilePath   string  `json:"file_path"`
	ParsedText string  `json:"parsed_text"`
	// Timestamp is the source file's modification time at caching time,
	// as fractional unix seconds.
	Timestamp float64 `json:"timestamp"`
	CachedAt  string  `json:"cached_at"`
	FileSize  int64   `json:"file_size"`
}

// Cache stores extracted document text on disk, keyed by document kind and an
// MD5 digest of the source file's bytes. A record is served only while the
// source's modification time has not advanced past the time captured at
// caching. Records never expire by age and are removed only by Clear.
//
// No cross-process or cross-goroutine safety is provided; callers must
// serialize access externally.
type Cache struct {
	dir    string
	logger *zap.Logger
}

// New creates a Cache rooted at dir, creating the directory if needed.
func New(dir string, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %q: %w", dir, err)
	}

	logger.Debug("cache directory ready", zap.String("dir", dir))

	return &Cache{dir: dir, logger: logger}, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

// Lookup returns the cached text for the file at path under the given kind.
// A missing, corrupted, or stale record is a miss (hit=false, nil error); an
// unreadable source file is an error. Stale records are left in place.
func (c *Cache) Lookup(kind Kind, path string) (string, bool, error) {
	hash, err := hashFile(path)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(c.entryPath(kind, hash))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		c.logger.Warn("reading cache record", zap.String("path", path), zap.Error(err))
		return "", false, nil
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("corrupted cache record treated as miss",
			zap.String("record", c.entryPath(kind, hash)),
			zap.Error(err),
		)
		return "", false, nil
	}

	mtime, err := fileModTime(path)
	if err != nil {
		return "", false, err
	}

	if mtime > entry.Timestamp {
		c.logger.Info("source file modified, cache record stale",
			zap.String("kind", string(kind)),
			zap.String("path", path),
		)
		return "", false, nil
	}

	c.logger.Info("using cached document",
		zap.String("kind", string(kind)),
		zap.String("path", path),
	)

	return entry.ParsedText, true, nil
}

// Store writes (or overwrites) the record for the file at path under the
// given kind, capturing the source's current modification time and size.
func (c *Cache) Store(kind Kind, path, text string) error {
	hash, err := hashFile(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}

	entry := Entry{
		FilePath:   path,
		ParsedText: text,
		Timestamp:  unixSeconds(info.ModTime()),
		CachedAt:   time.Now().Format(time.RFC3339),
		FileSize:   info.Size(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling cache record: %w", err)
	}

	record := c.entryPath(kind, hash)
	if err := os.WriteFile(record, data, 0o644); err != nil {
		return fmt.Errorf("writing cache record: %w", err)
	}

	c.logger.Info("document cached",
		zap.String("kind", string(kind)),
		zap.String("path", path),
		zap.String("record", record),
	)

	return nil
}

// Clear removes every record in the cache directory. Deletion is best-effort:
// a record that cannot be removed does not stop the rest, and all failures
// are reported together.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("reading cache directory: %w", err)
	}

	var errs []error
	removed := 0
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", e.Name(), err))
			continue
		}
		removed++
	}

	c.logger.Info("cache cleared", zap.Int("removed", removed), zap.Int("failed", len(errs)))

	return errors.Join(errs...)
}

// RecordInfo describes one persisted record in an Info listing.
type RecordInfo struct {
	Record     string `json:"record"`
	SourcePath string `json:"source_path"`
	CachedAt   string `json:"cached_at"`
	SizeBytes  int64  `json:"size_bytes"`
}

// Info summarizes the cache directory contents.
type Info struct {
	Directory  string       `json:"directory"`
	Records    []RecordInfo `json:"records"`
	TotalBytes int64        `json:"total_bytes"`
}

// Info enumerates all persisted records. Records that fail to parse are
// excluded from the listing and the total, but are not deleted.
func (c *Cache) Info() (*Info, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("reading cache directory: %w", err)
	}

	info := &Info{Directory: c.dir, Records: []RecordInfo{}}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}

		path := filepath.Join(c.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			// Corrupted records are skipped, not deleted.
			continue
		}

		info.Records = append(info.Records, RecordInfo{
			Record:     e.Name(),
			SourcePath: entry.FilePath,
			CachedAt:   entry.CachedAt,
			SizeBytes:  int64(len(data)),
		})
		info.TotalBytes += int64(len(data))
	}

	return info, nil
}

func (c *Cache) entryPath(kind Kind, hash string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s.json", kind, hash))
}

func hashFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q for hashing: %w", path, err)
	}
	return fmt.Sprintf("%x", md5.Sum(content)), nil
}

func fileModTime(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %q: %w", path, err)
	}
	return unixSeconds(info.ModTime()), nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
