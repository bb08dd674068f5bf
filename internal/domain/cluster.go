package domain

import (
	"fmt"
	"strings"
)

type GroupBy string

const (
	GroupByDate    GroupBy = "date"
	GroupByEmotion GroupBy = "emotion"

	UnknownKey = "unknown"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupByDate, GroupByEmotion:
		return true
	default:
		return false
	}
}

func ParseGroupBy(raw string) (GroupBy, error) {
	g := GroupBy(strings.ToLower(strings.TrimSpace(raw)))
	if g == "" {
		return GroupByDate, nil
	}
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGroupBy, raw)
	}

	return g, nil
}

// Key returns the bucket key of f for this attribute.
func (g GroupBy) Key(f Flower) string {
	var value string
	switch g {
	case GroupByDate:
		value = f.Date
	case GroupByEmotion:
		value = f.Emotion
	}

	if value == "" {
		return UnknownKey
	}

	return value
}

// Cell is a position in the placement grid.
type Cell struct {
	Col int `json:"col" yaml:"col" toml:"col"`
	Row int `json:"row" yaml:"row" toml:"row"`
}

func (c Cell) Key() string {
	return fmt.Sprintf("%d|%d", c.Col, c.Row)
}

type Cluster struct {
	Flowers        []Flower `json:"flowers" yaml:"flowers" toml:"flowers"`
	CenterPosition Vec3     `json:"center_position" yaml:"center_position" toml:"center_position"`
	Size           float64  `json:"size" yaml:"size" toml:"size"`
	Date           string   `json:"date" yaml:"date" toml:"date"`
	Emotion        string   `json:"emotion" yaml:"emotion" toml:"emotion"`
	Cell           *Cell    `json:"cell,omitempty" yaml:"cell,omitempty" toml:"cell,omitempty"`
}
