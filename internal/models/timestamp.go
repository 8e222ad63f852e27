package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is an absolute point in time in epoch seconds.
// On the wire it is always a decimal string ("1678886400"); a bare JSON
// number is accepted on input.
type Timestamp int64

// ParseTimestamp parses a base-10 epoch seconds string
func ParseTimestamp(s string) (Timestamp, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp(v), nil
}

// TimestampFromTime converts t to epoch seconds, floored
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Unix returns the timestamp as epoch seconds
func (t Timestamp) Unix() int64 {
	return int64(t)
}

// Time returns the timestamp as a time.Time in UTC
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// String returns the canonical decimal form
func (t Timestamp) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// MarshalJSON encodes the timestamp as a quoted decimal string
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts either a decimal string or a JSON number
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("expiry timestamp is missing")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", string(data), err)
	}
	parsed, err := ParseTimestamp(n.String())
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
