package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Amount is a numeric backend field that may arrive as a JSON number or as a
// numeric string (salaries typed into free-text inputs end up as strings).
type Amount float64

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		*a = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// Float64 returns the raw value.
func (a Amount) Float64() float64 {
	return float64(a)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a tolerant time field; empty strings and null decode to the
// zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses the layouts the backend is known to emit.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unsupported layout", s)
}

// MarshalJSON writes RFC3339 or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Ref is an opaque foreign key. The backend sends either the bare id or the
// populated document.
type Ref struct {
	ID    string
	Label string
}

// UnmarshalJSON accepts a string id or an object carrying _id/id.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	case '{':
		var doc struct {
			MongoID  string `json:"_id"`
			ID       string `json:"id"`
			FullName string `json:"full_name"`
			Name     string `json:"name"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		id := doc.MongoID
		if id == "" {
			id = doc.ID
		}
		label := doc.FullName
		if label == "" {
			label = doc.Name
		}
		*r = Ref{ID: id, Label: label}
		return nil
	default:
		// numeric ids
		*r = Ref{ID: string(data)}
		return nil
	}
}

// MarshalJSON writes the bare id.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r Ref) String() string {
	return r.ID
}
