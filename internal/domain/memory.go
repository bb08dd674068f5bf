package domain

import (
	"strings"
	"time"
)

type MemoryID int64

type UserID int64

// Memory is a record as served by the memories API. Position is optional and
// only used as the starting point for cluster centroids.
type Memory struct {
	ID          MemoryID `json:"id" yaml:"id" toml:"id"`
	UserID      UserID   `json:"user_id" yaml:"user_id" toml:"user_id"`
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Desc        string   `json:"desc,omitempty" yaml:"desc,omitempty" toml:"desc,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at,omitempty" toml:"created_at,omitempty"`
	Emotion     string   `json:"emotion,omitempty" yaml:"emotion,omitempty" toml:"emotion,omitempty"`
	ModelPath   string   `json:"model_path,omitempty" yaml:"model_path,omitempty" toml:"model_path,omitempty"`
	MediaPath   string   `json:"media_path,omitempty" yaml:"media_path,omitempty" toml:"media_path,omitempty"`
	MediaType   string   `json:"media_type,omitempty" yaml:"media_type,omitempty" toml:"media_type,omitempty"`
	UnlockAtISO string   `json:"unlock_at_iso,omitempty" yaml:"unlock_at_iso,omitempty" toml:"unlock_at_iso,omitempty"`
	Position    *Vec3    `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
}

// Date returns the calendar day of CreatedAt in YYYY-MM-DD form, or "" when
// the timestamp is missing.
func (m Memory) Date() string {
	raw := strings.TrimSpace(m.CreatedAt)
	if raw == "" {
		return ""
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05", time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(time.DateOnly)
		}
	}

	if len(raw) >= len(time.DateOnly) {
		return raw[:len(time.DateOnly)]
	}

	return raw
}

// SearchQuery mirrors the filters accepted by the memories search endpoint.
type SearchQuery struct {
	UserID   UserID
	Text     string
	Emotion  string
	DateFrom string
	DateTo   string
}

// Matches applies the query locally. Text matches title or date, case-insensitively.
func (q SearchQuery) Matches(m Memory) bool {
	if q.UserID != 0 && m.UserID != 0 && m.UserID != q.UserID {
		return false
	}

	date := m.Date()
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !strings.Contains(strings.ToLower(m.Title), text) && !strings.Contains(date, text) {
			return false
		}
	}

	if emotion := strings.TrimSpace(q.Emotion); emotion != "" && !strings.EqualFold(emotion, m.Emotion) {
		return false
	}

	if q.DateFrom != "" && (date == "" || date < q.DateFrom) {
		return false
	}
	if q.DateTo != "" && (date == "" || date > q.DateTo) {
		return false
	}

	return true
}
