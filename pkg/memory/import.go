package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// importSchema guards the payload shape before decoding: a JSON array of
// objects, with loose typing on the known fields so foreign exports (e.g.
// numeric ids) still import.
const importSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"content": { "type": "string" },
			"timestamp": { "type": "number" },
			"source": { "type": "string" },
			"category": { "type": "string" },
			"summary": { "type": "string" }
		}
	}
}`

var importSchemaLoader = gojsonschema.NewStringLoader(importSchema)

// ImportResult reports the outcome of an Import call. Malformed payloads
// come back as Success=false with Error set; Import never panics on bad
// input.
type ImportResult struct {
	Success  bool   `json:"success"`
	Imported int    `json:"imported,omitempty"`
	Total    int    `json:"total,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Import parses a JSON array of records. In merge mode records whose id is
// already present are skipped; in replace mode the existing collection is
// discarded. Both modes re-sort newest-first, truncate to capacity and
// persist.
func (s *Store) Import(ctx context.Context, payload []byte, merge bool) ImportResult {
	if err := validateImportPayload(payload); err != nil {
		return ImportResult{Success: false, Error: err.Error()}
	}

	var imported []*Record
	if err := json.Unmarshal(payload, &imported); err != nil {
		return ImportResult{Success: false, Error: fmt.Sprintf("failed to parse records: %v", err)}
	}

	s.mu.Lock()
	s.ensureLoadedLocked(ctx)

	if merge {
		existing := make(map[string]struct{}, len(s.records))
		for _, rec := range s.records {
			existing[rec.ID] = struct{}{}
		}
		for _, rec := range imported {
			if rec == nil {
				continue
			}
			if _, dup := existing[rec.ID]; dup {
				continue
			}
			s.records = append(s.records, rec)
		}
	} else {
		s.records = s.records[:0]
		for _, rec := range imported {
			if rec != nil {
				s.records = append(s.records, rec)
			}
		}
	}

	sort.SliceStable(s.records, func(a, b int) bool {
		return s.records[a].Timestamp > s.records[b].Timestamp
	})
	if len(s.records) > s.max {
		s.records = s.records[:s.max]
	}

	importedCount := len(imported)
	if !merge {
		importedCount = len(s.records)
	}
	total := len(s.records)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.logger.Info().Int("imported", importedCount).Int("total", total).Bool("merge", merge).Msg("Imported collection")
	return ImportResult{Success: true, Imported: importedCount, Total: total}
}

// validateImportPayload runs the JSON Schema check and folds all violations
// into a single error.
func validateImportPayload(payload []byte) error {
	result, err := gojsonschema.Validate(importSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	if !result.Valid() {
		var msg string
		for i, verr := range result.Errors() {
			if i > 0 {
				msg += "; "
			}
			msg += verr.String()
		}
		return fmt.Errorf("payload validation failed: %s", msg)
	}
	return nil
}
