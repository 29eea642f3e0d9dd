package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned for export formats outside json, csv and
// txt. Passing one is a programmer error, not a runtime condition.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Export serializes the full collection. Supported formats: "json"
// (indented array), "csv" (fixed header, every field quoted, embedded quotes
// doubled) and "txt" (human-readable digest).
func (s *Store) Export(ctx context.Context, format string) (string, error) {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	records := s.cloneAllLocked()
	s.mu.Unlock()

	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize collection: %w", err)
		}
		return string(data), nil
	case "csv":
		return exportCSV(records), nil
	case "txt":
		return exportText(records), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func exportCSV(records []*Record) string {
	var b strings.Builder
	b.WriteString("Timestamp,Category,Platform,Type,Summary,Content")
	for _, rec := range records {
		fields := []string{
			time.UnixMilli(rec.Timestamp).UTC().Format(time.RFC3339),
			orDefault(rec.Category, "general"),
			orDefault(rec.Platform, "unknown"),
			orDefault(rec.Type, "memory"),
			rec.Summary,
			rec.Content,
		}
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

func exportText(records []*Record) string {
	entries := make([]string, len(records))
	for i, rec := range records {
		body := rec.Summary
		if body == "" {
			body = rec.Content
		}
		entries[i] = fmt.Sprintf("[%s] %s - %s\n%s\n%s\n",
			time.UnixMilli(rec.Timestamp).UTC().Format("2006-01-02"),
			strings.ToUpper(orDefault(rec.Category, "general")),
			strings.ToUpper(orDefault(rec.Platform, "unknown")),
			body,
			strings.Repeat("=", 80),
		)
	}
	return strings.Join(entries, "\n")
}
