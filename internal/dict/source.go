package dict

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults/*.txt
var defaultFiles embed.FS

// Source provides the default word list of a category.
type Source interface {
	Load(c Category) ([]string, error)
}

// EmbeddedSource serves the word lists compiled into the binary.
type EmbeddedSource struct{}

// Load reads the embedded list for c.
func (EmbeddedSource) Load(c Category) ([]string, error) {
	info, ok := Info(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	f, err := defaultFiles.Open("defaults/" + info.File)
	if err != nil {
		return nil, fmt.Errorf("opening default %s list: %w", c, err)
	}
	defer f.Close()
	return ParseWordList(f)
}

// DirSource reads <category>.txt files from a directory, falling back to
// another source for files the directory does not have.
type DirSource struct {
	Dir      string
	Fallback Source
}

// Load reads the list for c from the directory.
func (d DirSource) Load(c Category) ([]string, error) {
	info, ok := Info(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	path := filepath.Join(d.Dir, info.File)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && d.Fallback != nil {
			return d.Fallback.Load(c)
		}
		return nil, fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	return ParseWordList(file)
}

// ParseWordList reads one word per line, trimming blanks and dropping
// empty lines and duplicates while keeping first-seen order.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	return words, nil
}

// StaticSource serves fixed lists, mostly for tests and fixtures.
type StaticSource map[Category][]string

// Load returns the fixed list for c; unknown categories are empty.
func (s StaticSource) Load(c Category) ([]string, error) {
	return s[c], nil
}
