// Package content reads the flat data files backing the site: the
// downloadable files directory, the links bookmark file, and the portfolio
// document. Missing optional data degrades to empty defaults; only
// malformed JSON is an error.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a requested file does not exist.
var ErrNotFound = errors.New("content: not found")

// Store resolves reads against the configured data locations.
// It holds no state beyond the immutable paths and is safe for
// concurrent use.
type Store struct {
	filesDir      string
	linksFile     string
	portfolioFile string
}

func NewStore(filesDir, linksFile, portfolioFile string) *Store {
	return &Store{
		filesDir:      filesDir,
		linksFile:     linksFile,
		portfolioFile: portfolioFile,
	}
}

// ListFiles returns the names of the entries in the files directory.
// A missing directory yields an empty list, not an error.
func (s *Store) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.filesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading files directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// FilePath resolves a download filename inside the files directory.
// Names that would escape the directory (separators, "..", empty) are
// rejected as not found rather than resolved.
func (s *Store) FilePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", ErrNotFound
	}

	path := filepath.Join(s.filesDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// Links returns the links file contents verbatim. A missing file yields
// an empty JSON array; malformed JSON propagates as an error.
func (s *Store) Links() (json.RawMessage, error) {
	data, err := os.ReadFile(s.linksFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return json.RawMessage("[]"), nil
		}
		return nil, fmt.Errorf("reading links file: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("links file %s contains invalid JSON", s.linksFile)
	}
	return json.RawMessage(data), nil
}

// Portfolio returns the portfolio document verbatim, or ErrNotFound when
// the file is absent.
func (s *Store) Portfolio() (json.RawMessage, error) {
	data, err := os.ReadFile(s.portfolioFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading portfolio file: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("portfolio file %s contains invalid JSON", s.portfolioFile)
	}
	return json.RawMessage(data), nil
}

// PortfolioProjects returns the document's projects field verbatim.
// An absent file or field yields an empty array.
func (s *Store) PortfolioProjects() (json.RawMessage, error) {
	return s.portfolioField("projects", json.RawMessage("[]"))
}

// PortfolioBio returns the document's bio field verbatim.
// An absent file or field yields an empty object.
func (s *Store) PortfolioBio() (json.RawMessage, error) {
	return s.portfolioField("bio", json.RawMessage("{}"))
}

func (s *Store) portfolioField(field string, fallback json.RawMessage) (json.RawMessage, error) {
	doc, err := s.Portfolio()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fallback, nil
		}
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("portfolio file %s is not a JSON object: %w", s.portfolioFile, err)
	}

	value, ok := fields[field]
	if !ok || string(value) == "null" {
		return fallback, nil
	}
	return value, nil
}
