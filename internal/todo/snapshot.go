package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the snapshot format version written by Save.
const SchemaVersion = 1

const schemaURL = "https://github.com/nibzard/tidy/snapshot.schema.json"

//go:embed snapshot.schema.json
var schemaSource []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Schema returns the JSON Schema that snapshot files must satisfy.
func Schema() []byte {
	return bytes.Clone(schemaSource)
}

// Snapshot is the on-disk form of a List.
type Snapshot struct {
	SchemaVersion int    `json:"schema_version" yaml:"schema_version"`
	LastID        int    `json:"last_id" yaml:"last_id"`
	LastOrder     int    `json:"last_order" yaml:"last_order"`
	Tasks         []Task `json:"tasks" yaml:"tasks"`
}

// Snapshot captures the list, including its high-water marks.
func (l List) Snapshot() Snapshot {
	tasks := l.Tasks()
	if tasks == nil {
		tasks = []Task{}
	}
	return Snapshot{
		SchemaVersion: SchemaVersion,
		LastID:        l.LastID(),
		LastOrder:     l.LastOrder(),
		Tasks:         tasks,
	}
}

// List rebuilds a list from the snapshot. It rejects snapshots whose tasks
// break the list invariants.
func (s Snapshot) List() (List, error) {
	seenIDs := make(map[int]bool, len(s.Tasks))
	seenOrders := make(map[int]bool, len(s.Tasks))
	for i, t := range s.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		if seenIDs[t.ID] {
			return List{}, &ValidationError{Path: path + ".id", Err: fmt.Errorf("duplicate id %d", t.ID)}
		}
		if seenOrders[t.Order] {
			return List{}, &ValidationError{Path: path + ".order", Err: fmt.Errorf("duplicate order %d", t.Order)}
		}
		if strings.TrimSpace(t.Text) == "" {
			return List{}, &ValidationError{Path: path + ".text", Err: errors.New("blank text")}
		}
		if !t.Status.Valid() {
			return List{}, &ValidationError{Path: path + ".status", Err: fmt.Errorf("invalid status %q", t.Status)}
		}
		seenIDs[t.ID] = true
		seenOrders[t.Order] = true
	}

	l := NewList(s.Tasks...)
	l.lastID = s.LastID
	l.lastOrder = s.LastOrder
	return l, nil
}

// ValidationError represents a snapshot validation error with context.
type ValidationError struct {
	Path string // dotted path to the error location
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SchemaError collects every schema violation found in a document.
type SchemaError struct {
	Errors []*ValidationError
}

func (e *SchemaError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return "snapshot does not match schema: " + strings.Join(msgs, "; ")
}

// Load reads a snapshot file and returns the list it holds. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("read snapshot: %w", err)
	}
	if isYAML(path) {
		if data, err = yamlToJSON(data); err != nil {
			return List{}, fmt.Errorf("parse snapshot: %w", err)
		}
	}
	return Decode(data)
}

// Decode parses and validates a JSON snapshot.
func Decode(data []byte) (List, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return List{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return List{}, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return List{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return s.List()
}

// Save writes the list to path. JSON output uses 2-space indentation and a
// trailing newline.
func (l List) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(l.Snapshot())
	} else {
		data, err = json.MarshalIndent(l.Snapshot(), "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one
// validation path.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func snapshotSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			compileErr = fmt.Errorf("load snapshot schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

func validateDocument(doc any) error {
	schema, err := snapshotSchema()
	if err != nil {
		return err
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate snapshot: %w", err)
	}
	result := &SchemaError{}
	collectSchemaErrors(result, ve)
	return result
}

func collectSchemaErrors(result *SchemaError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: pointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// pointerToPath turns a JSON pointer such as /tasks/0/id into tasks[0].id.
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.NewReplacer("~1", "/", "~0", "~").Replace(part)
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
