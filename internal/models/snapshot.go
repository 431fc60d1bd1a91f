package models

import "time"

// Snapshot is one fetched profile together with its repositories
type Snapshot struct {
	Profile *Profile      `json:"profile"`
	Repos   []*Repository `json:"repos"`
}

// CachedSnapshot is the stored envelope of a Snapshot
type CachedSnapshot struct {
	CapturedAt int64     `json:"capturedAt"`
	Data       *Snapshot `json:"data"`
}

// NewCachedSnapshot stamps data with capturedAt in epoch milliseconds
func NewCachedSnapshot(data *Snapshot, capturedAt time.Time) *CachedSnapshot {
	return &CachedSnapshot{
		CapturedAt: capturedAt.UnixMilli(),
		Data:       data,
	}
}

// Age returns how old the snapshot is relative to now
func (c *CachedSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(c.CapturedAt))
}

// TotalStars sums stargazers over every repository, forks and archives included
func (s *Snapshot) TotalStars() int {
	total := 0
	for _, repo := range s.Repos {
		total += repo.StargazersCount
	}
	return total
}
