// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringSlice is a JSON column holding a list of strings.
type StringSlice []string

// GormDataType stores the slice in a json column.
func (StringSlice) GormDataType() string {
	return "json"
}

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	b, err := jsonBytes(src, "StringSlice")
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, s)
}

// SquadHistoryEntry records one squad a player has left.
type SquadHistoryEntry struct {
	SquadID   uint      `json:"squad_id"`
	SquadName string    `json:"squad_name"`
	LeftAt    time.Time `json:"left_at"`
}

// SquadHistory is the append-only list of squads a player used to belong to.
type SquadHistory []SquadHistoryEntry

func (SquadHistory) GormDataType() string {
	return "json"
}

func (h SquadHistory) Value() (driver.Value, error) {
	if h == nil {
		h = SquadHistory{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (h *SquadHistory) Scan(src interface{}) error {
	b, err := jsonBytes(src, "SquadHistory")
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, h)
}

// Names returns the squad names in the order they were left.
func (h SquadHistory) Names() []string {
	names := make([]string, 0, len(h))
	for _, e := range h {
		names = append(names, e.SquadName)
	}
	return names
}

func jsonBytes(src interface{}, typeName string) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s: expected []byte or string, got %T", typeName, src)
	}
}
