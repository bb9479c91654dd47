package dialect

import (
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultExtensions are the file extensions recognised when no
// configuration overrides them.
var DefaultExtensions = []string{"rust", "rx", "roo", "🦀", "🐓", "🦘"}

// Registry decides whether a file belongs to the dialect by its extension.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	exts map[string]struct{}
}

// NewRegistry builds a registry from the given extensions. Leading dots
// and surrounding whitespace are ignored; empty entries are dropped. With
// no extensions the defaults are used.
func NewRegistry(exts ...string) *Registry {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	r := &Registry{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		if ext = normalizeExt(ext); ext != "" {
			r.exts[ext] = struct{}{}
		}
	}
	return r
}

// Extensions returns the recognised extensions, sorted.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.exts))
	for ext := range r.exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether the file at p has a dialect extension.
func (r *Registry) Matches(p string) bool {
	return r.matchExt(filepath.Ext(p))
}

// MatchesURI is Matches for a document URI such as file:///src/main.rx.
// Percent-encoded (e.g. emoji) extensions are decoded first.
func (r *Registry) MatchesURI(uri string) bool {
	p := uri
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		p = u.Path
	}
	return r.matchExt(path.Ext(p))
}

func (r *Registry) matchExt(ext string) bool {
	if r == nil {
		return false
	}
	ext = normalizeExt(ext)
	if ext == "" {
		return false
	}
	_, ok := r.exts[ext]
	return ok
}

// normalizeExt lower-cases ASCII extensions; non-ASCII ones (emoji) are
// compared exactly.
func normalizeExt(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if isASCII(ext) {
		return strings.ToLower(ext)
	}
	return ext
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
