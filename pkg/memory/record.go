package memory

import (
	"bytes"
	"encoding/json"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Record is one stored memory. Timestamps are milliseconds since epoch,
// matching the collection's wire format.
type Record struct {
	ID             string
	Content        string
	Timestamp      int64
	LastUpdated    int64
	Source         string
	URL            string
	ConversationID string
	Category       string
	Summary        string
	Type           string
	Platform       string
	// Extra holds arbitrary caller-supplied metadata; it serializes flat
	// alongside the fixed fields.
	Extra map[string]any
}

// newID builds a creation-time id with a random tie-break so records created
// in the same millisecond stay distinct.
func newID(now int64) string {
	suffix, err := gonanoid.New(8)
	if err != nil {
		// Crypto randomness failing is not worth surfacing here; the
		// timestamp prefix still orders the id.
		suffix = "00000000"
	}
	return fmt.Sprintf("%d-%s", now, suffix)
}

// applyMetadata merges caller metadata into the record. String values for
// known field names override the derived values; id, content and timestamps
// are never overridden; everything else lands in Extra.
func (r *Record) applyMetadata(meta map[string]any) {
	for k, v := range meta {
		switch k {
		case "id", "content", "timestamp", "lastUpdated":
			continue
		case "source":
			r.Source = asString(v)
		case "url":
			r.URL = asString(v)
		case "conversationId":
			r.ConversationID = asString(v)
		case "category":
			r.Category = asString(v)
		case "summary":
			r.Summary = asString(v)
		case "type":
			r.Type = asString(v)
		case "platform":
			r.Platform = asString(v)
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[k] = v
		}
	}
}

// Clone returns a deep-enough copy; callers may mutate it freely without
// affecting store state.
func (r *Record) Clone() *Record {
	cp := *r
	if r.Extra != nil {
		cp.Extra = make(map[string]any, len(r.Extra))
		for k, v := range r.Extra {
			cp.Extra[k] = v
		}
	}
	return &cp
}

// MarshalJSON flattens Extra alongside the fixed fields so imported
// collections keep whatever metadata they carried.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Extra)+11)
	for k, v := range r.Extra {
		if reservedField(k) {
			continue
		}
		m[k] = v
	}
	m["id"] = r.ID
	m["content"] = r.Content
	m["timestamp"] = r.Timestamp
	m["source"] = r.Source
	m["conversationId"] = r.ConversationID
	m["category"] = r.Category
	m["summary"] = r.Summary
	if r.LastUpdated != 0 {
		m["lastUpdated"] = r.LastUpdated
	}
	if r.URL != "" {
		m["url"] = r.URL
	}
	if r.Type != "" {
		m["type"] = r.Type
	}
	if r.Platform != "" {
		m["platform"] = r.Platform
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts any object shape: known fields are pulled out
// (numeric ids from older data become strings), the rest goes to Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	for k, v := range m {
		switch k {
		case "id":
			r.ID = asString(v)
		case "content":
			r.Content = asString(v)
		case "timestamp":
			r.Timestamp = asInt64(v)
		case "lastUpdated":
			r.LastUpdated = asInt64(v)
		case "source":
			r.Source = asString(v)
		case "url":
			r.URL = asString(v)
		case "conversationId":
			r.ConversationID = asString(v)
		case "category":
			r.Category = asString(v)
		case "summary":
			r.Summary = asString(v)
		case "type":
			r.Type = asString(v)
		case "platform":
			r.Platform = asString(v)
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[k] = v
		}
	}
	return nil
}

func reservedField(k string) bool {
	switch k {
	case "id", "content", "timestamp", "lastUpdated", "source", "url",
		"conversationId", "category", "summary", "type", "platform":
		return true
	}
	return false
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return ""
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	}
	return 0
}
