package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"apidocs/internal/logger"
	"apidocs/internal/model"
)

var (
	// ErrReadFile is returned when a data file cannot be read from disk
	ErrReadFile = errors.New("failed to read data file")
	// ErrDecode is returned when a data file is not valid JSON or YAML
	ErrDecode = errors.New("failed to decode data file")
	// ErrNoDataFiles is returned when a directory holds no *.json, *.yaml or *.yml file
	ErrNoDataFiles = errors.New("no data files found")
	// ErrConflictingType is returned when two data files define the same type differently
	ErrConflictingType = errors.New("conflicting type definition")
	// ErrUnknownEncoding is returned for an encoding hint x/text does not know
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// DefaultEncodings is tried in order when no hints are given
var DefaultEncodings = []string{"utf-8", "gb18030", "euc-kr"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadPath loads a single data file, or every data file of a directory in
// lexical order. Schemas are concatenated in file order and types merged.
func LoadPath(path string, encodings []string) (*model.Docs, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}
	if !info.IsDir() {
		return LoadFile(path, encodings)
	}

	files, err := ScanDirectory(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDataFiles, path)
	}

	merged := model.NewDocs()
	for _, file := range files {
		docs, err := LoadFile(file, encodings)
		if err != nil {
			return nil, err
		}
		if err := Merge(merged, docs); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("Loaded %s: %d schemas, %d types", file, len(docs.Schemas), docs.Types.Len())
	}

	return merged, nil
}

// ScanDirectory walks root and returns data files sorted by path.
// Hidden directories are skipped.
func ScanDirectory(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsDataFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// IsDataFile reports whether path has a JSON or YAML extension
func IsDataFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads and decodes one data file
func LoadFile(path string, encodings []string) (*model.Docs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.LogLoadError(path, err, "read")
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	content, err := DecodeText(raw, encodings)
	if err != nil {
		logger.LogLoadError(path, err, "text decoding")
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	docs, err := Decode(content)
	if err != nil {
		logger.LogLoadError(path, err, "data model decoding")
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return docs, nil
}

// Decode parses JSON or YAML text into a data model, keeping mapping order
func Decode(content []byte) (*model.Docs, error) {
	docs := model.NewDocs()
	if len(bytes.TrimSpace(content)) == 0 {
		return docs, nil
	}

	if err := yaml.Unmarshal(content, docs); err != nil {
		return nil, err
	}
	if docs.Schemas == nil {
		docs.Schemas = make([]*model.Schema, 0)
	}
	return docs, nil
}

// DecodeText returns raw as UTF-8 without a byte order mark. Valid UTF-8 is
// used as-is; otherwise each non UTF-8 hint is tried in order and the first
// one that decodes cleanly wins.
func DecodeText(raw []byte, encodings []string) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw, nil
	}

	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	for _, name := range encodings {
		enc, err := lookupEncoding(name)
		if err != nil {
			return nil, err
		}
		if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
			continue
		}

		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil || !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		logger.Debug("Decoded input as %s", name)
		return bytes.TrimPrefix(decoded, utf8BOM), nil
	}

	return nil, fmt.Errorf("input is not valid UTF-8 and no encoding of %v decodes it", encodings)
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Merge appends src's schemas to dst and adds its types. Redefining a type
// with the same content is allowed; a different definition is a conflict.
func Merge(dst, src *model.Docs) error {
	if src == nil {
		return nil
	}

	for _, t := range src.Types.All() {
		if existing, ok := dst.Types.Get(t.Name); ok {
			if *existing != *t {
				return fmt.Errorf("%w %q", ErrConflictingType, t.Name)
			}
			continue
		}
		dst.Types.Set(t)
	}

	for _, schema := range src.Schemas {
		dst.AddSchema(schema)
	}
	return nil
}
