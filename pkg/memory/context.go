package memory

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// ContextProvider supplies the environment identity stamped onto new
// records. The store never discovers these itself; the surrounding
// collaborator (scraper, CLI, UI) owns them.
type ContextProvider interface {
	// Source is the origin identifier, e.g. a hostname.
	Source() string
	// Location is the current URL-ish location.
	Location() string
}

// StaticContext is a fixed-value ContextProvider, suitable for CLIs and
// tests.
type StaticContext struct {
	Host string
	URL  string
}

func (s StaticContext) Source() string   { return s.Host }
func (s StaticContext) Location() string { return s.URL }

var (
	convPathPattern = regexp.MustCompile(`/c/([a-zA-Z0-9-]+)`)
	nonAlnum        = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// DeriveConversationID produces the stable conversation key for a location:
// the /c/<id> path segment when present, otherwise a short base64 digest of
// the location with its query string stripped.
func DeriveConversationID(location string) string {
	if m := convPathPattern.FindStringSubmatch(location); m != nil {
		return m[1]
	}
	base := location
	if i := strings.Index(location, "?"); i >= 0 {
		base = location[:i]
	}
	enc := base64.StdEncoding.EncodeToString([]byte(base))
	enc = nonAlnum.ReplaceAllString(enc, "")
	if len(enc) > 12 {
		enc = enc[:12]
	}
	return enc
}
