package recordfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/ports"
)

// StdinPath makes LoadRecords read the document from standard input.
const StdinPath = "-"

type Loader struct {
	stdin       io.Reader
	stdinFormat string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{stdin: os.Stdin, stdinFormat: "json"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithStdin replaces os.Stdin, mostly for tests.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithStdinFormat sets the format ("json" or "yaml") assumed for standard input.
func WithStdinFormat(format string) Option {
	return func(l *Loader) { l.stdinFormat = strings.ToLower(strings.TrimSpace(format)) }
}

var _ ports.RecordSource = (*Loader)(nil)

// LoadRecords reads a JSON or YAML document and returns its records.
// Without a selector the document itself is the record set; with one, the
// JSONPath result is. An array yields one record per element and an object
// yields a single record.
func (l *Loader) LoadRecords(path string, selector string) ([]json.RawMessage, error) {
	b, format, err := l.read(path)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(b, format)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recordfile.parse",
			Kind: domain.KindShapeMismatch,
			Path: path,
			Err:  err,
		}
	}

	if expr := strings.TrimSpace(selector); expr != "" {
		doc, err = jsonpath.Get(expr, doc)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "recordfile.select",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("selector %q: %w", expr, err),
			}
		}
	}

	return splitRecords(path, doc)
}

func (l *Loader) read(path string) ([]byte, string, error) {
	if path == StdinPath {
		b, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, "", &domain.OpError{
				Op:   "recordfile.read",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
		return b, l.stdinFormat, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "recordfile.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return b, formatFromExt(path), nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func parseDocument(b []byte, format string) (any, error) {
	if format == "yaml" {
		var doc any
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return normalizeYAML(doc), nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// normalizeYAML turns yaml.v3 values into the shapes encoding/json produces,
// so both formats look the same to jsonpath and to the record decoders.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}

var errNotRecord = errors.New("record must be an object")

func splitRecords(path string, doc any) ([]json.RawMessage, error) {
	var items []any
	switch t := doc.(type) {
	case nil:
		return nil, &domain.OpError{
			Op:   "recordfile.split",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  errors.New("no records found"),
		}
	case []any:
		items = t
	case map[string]any:
		items = []any{t}
	default:
		return nil, &domain.OpError{
			Op:   "recordfile.split",
			Kind: domain.KindShapeMismatch,
			Path: path,
			Err:  errNotRecord,
		}
	}

	out := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		if _, ok := item.(map[string]any); !ok {
			return nil, &domain.OpError{
				Op:   "recordfile.split",
				Kind: domain.KindShapeMismatch,
				Path: path,
				Err:  fmt.Errorf("records[%d]: %w", i, errNotRecord),
			}
		}
		b, err := json.Marshal(item)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "recordfile.split",
				Kind: domain.KindExecution,
				Path: path,
				Err:  fmt.Errorf("records[%d]: %w", i, err),
			}
		}
		out = append(out, b)
	}
	return out, nil
}
