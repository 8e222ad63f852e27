package models

import (
	"encoding/json"
	"fmt"
)

// Source identifies where a returned booking came from
type Source string

const (
	SourceCache   Source = "cache"
	SourceService Source = "service"
)

// UnmarshalJSON implements custom JSON unmarshaling for Source
func (s *Source) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	switch str {
	case "cache", "service":
		*s = Source(str)
		return nil
	default:
		return fmt.Errorf("invalid source '%s': must be one of 'cache', 'service'", str)
	}
}

// RetrievalResult is produced for every read and is never persisted.
// Source and IsExpired are recomputed on each call.
type RetrievalResult struct {
	Data      BookingRecord `json:"data"`
	Source    Source        `json:"source"`
	IsExpired bool          `json:"isExpired"`
}
