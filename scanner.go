package twlite

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// FileLocation tracks where a token was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based byte column of the token's first character
	Text   string // Line content (right-trimmed) for source display
}

// Occurrence is the first sighting of a token in the sources.
type Occurrence struct {
	Token    string
	Location FileLocation
}

// Extraction is the result of scanning the source documents.
type Extraction struct {
	Tokens      TokenSet
	Occurrences map[string]Occurrence // First occurrence per token
	Files       []string
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files matched by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped because .gitignore excludes them
}

// scanPattern is one lexical shape that carries class names.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// The first submatch of every pattern is a whitespace-separated class list.
	patterns = []scanPattern{
		{
			name:  "class attribute",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "classList.add call",
			regex: regexp.MustCompile(`classList\.add\('([^']+)'\)`),
		},
		{
			name:  "classList.remove call",
			regex: regexp.MustCompile(`classList\.remove\('([^']+)'\)`),
		},
		{
			name:  "classList.toggle call",
			regex: regexp.MustCompile(`classList\.toggle\('([^']+)'`),
		},
	}

	// Tokens containing this marker are computed at runtime.
	interpolationMarker = "${"

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a glob match is excluded by .gitignore.
// Only relative paths are checked; absolute paths are outside the project.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// hasGlobMeta reports whether a source entry is a pattern rather than a path.
func hasGlobMeta(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}

// ExpandSources resolves the configured source entries to file paths,
// preserving configuration order. Literal entries are kept as-is and must be
// readable later; glob entries are expanded with doublestar and must match
// at least one file.
func ExpandSources(entries []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	keep := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
		stats.FilesScanned++
	}

	for _, entry := range entries {
		if !hasGlobMeta(entry) {
			stats.FilesDiscovered++
			keep(entry)
			continue
		}

		matches, err := doublestar.FilepathGlob(entry)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", entry, err)
		}

		found := 0
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			found++
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			keep(match)
		}
		if found == 0 {
			return nil, stats, fmt.Errorf("glob pattern %q matched no files", entry)
		}
	}

	return files, stats, nil
}

// ExtractTokens reads every file and collects the utility tokens they use.
// Any unreadable file aborts the whole extraction.
func ExtractTokens(files []string) (*Extraction, error) {
	occurrences := make(map[string]Occurrence)
	var tokens []string

	for _, file := range files {
		// #nosec G304 - paths come from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}

		for _, occ := range extractFromText(string(content), file) {
			if _, seen := occurrences[occ.Token]; seen {
				continue
			}
			occurrences[occ.Token] = occ
			tokens = append(tokens, occ.Token)
		}
	}

	return &Extraction{
		Tokens:      NewTokenSet(tokens...),
		Occurrences: occurrences,
		Files:       files,
	}, nil
}

// extractFromText applies every pattern to a whole document and returns the
// surviving tokens, pattern by pattern, in document order.
func extractFromText(text, file string) []Occurrence {
	lines := newLineIndex(text)

	var result []Occurrence
	for _, pattern := range patterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(text, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}

			start := match[2]
			for _, fld := range splitFields(text[start:match[3]]) {
				if strings.Contains(fld.text, interpolationMarker) {
					continue
				}
				result = append(result, Occurrence{
					Token:    fld.text,
					Location: lines.locate(file, start+fld.offset),
				})
			}
		}
	}

	return result
}

type field struct {
	text   string
	offset int
}

// splitFields splits s around runs of whitespace, like strings.Fields, and
// keeps each field's byte offset.
func splitFields(s string) []field {
	var fields []field
	begin := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if begin >= 0 {
				fields = append(fields, field{text: s[begin:i], offset: begin})
				begin = -1
			}
			continue
		}
		if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		fields = append(fields, field{text: s[begin:], offset: begin})
	}
	return fields
}

// lineIndex maps byte offsets in a document to line and column.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{text: text, starts: starts}
}

func (li lineIndex) locate(file string, offset int) FileLocation {
	// Index of the last line start <= offset.
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1

	end := len(li.text)
	if line+1 < len(li.starts) {
		end = li.starts[line+1] - 1
	}
	content := li.text[li.starts[line]:end]

	return FileLocation{
		File:   file,
		Line:   line + 1,
		Column: offset - li.starts[line] + 1,
		Text:   strings.TrimRight(content, " \t\r"),
	}
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return rel
}
