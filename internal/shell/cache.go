package shell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const cacheFileName = ".status-cache"

// PromptCache holds cached prompt status data.
type PromptCache struct {
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
	Streak    int       `json:"streak"`
	TodayDate string    `json:"today_date"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachePath returns the full path to the status cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// ReadCache reads the status cache from disk. Returns nil if the cache
// does not exist or cannot be parsed.
func ReadCache(dataDir string) *PromptCache {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil
	}
	var c PromptCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// WriteCache writes the status cache to disk.
func WriteCache(dataDir string, c *PromptCache) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CachePath(dataDir), data, 0600)
}

// IsFresh returns true if the cache was written within the TTL and
// still refers to the current calendar day.
func (c *PromptCache) IsFresh(ttl time.Duration) bool {
	if c == nil {
		return false
	}
	if c.TodayDate != time.Now().Format("2006-01-02") {
		return false
	}
	return time.Since(c.UpdatedAt) < ttl
}

// Status converts the cached values back into a Status.
func (c *PromptCache) Status() Status {
	return Status{Completed: c.Completed, Total: c.Total, Streak: c.Streak}
}
