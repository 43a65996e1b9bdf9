// Package config loads homcount job files.
//
// A job names a pattern graph, a target graph and how to count between them:
//
//	pattern:
//	  vertices: 5
//	  edges: [[2, 4], [1, 2]]
//	  undirected: true
//	target:
//	  kind: cycle
//	  n: 4
//	method: brute
//	workers: 4
//	timeout: 30s
//
// Graphs are given either as explicit edge lists or as a builder kind with its
// size parameters. Files ending in .toml are read as TOML with the same keys.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homcount/hom"
)

// Sentinel errors.
var (
	// ErrEmpty is returned for a job file without a document.
	ErrEmpty = errors.New("config: empty job")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid job")

	// ErrUnknownKind reports a graph kind with no builder behind it.
	ErrUnknownKind = errors.New("config: unknown graph kind")
)

// Decomposition kinds accepted by Job.Decomposition.
const (
	DecompositionComplete = "complete"
	DecompositionPath     = "path"
)

// Job is one counting request.
type Job struct {
	Pattern GraphSpec `yaml:"pattern" toml:"pattern"`
	Target  GraphSpec `yaml:"target" toml:"target"`

	// Method is one of hom.Methods(); empty selects brute force.
	Method string `yaml:"method" toml:"method"`

	// Decomposition selects the nice tree decomposition used by the ntd
	// method and by family counting: "complete" (default) or "path".
	Decomposition string `yaml:"decomposition" toml:"decomposition"`

	Workers int           `yaml:"workers" toml:"workers"`
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`

	// Catalog is a badger directory for cached results; empty disables it.
	Catalog string `yaml:"catalog" toml:"catalog"`
}

// Load reads and validates the job file at path, as TOML when the extension
// is .toml and as YAML otherwise.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	j, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

// Parse decodes and validates a job document. Unknown keys are rejected.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// ParseTOML is Parse for TOML documents.
func ParseTOML(data []byte) (*Job, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var j Job
	md, err := toml.Decode(string(data), &j)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if unknown := md.Undecoded(); len(unknown) != 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalid, unknown)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks the job without building any graph.
func (j *Job) Validate() error {
	if j.Method != "" {
		m, err := hom.ParseMethod(j.Method)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		j.Method = string(m)
	}

	j.Decomposition = strings.ToLower(strings.TrimSpace(j.Decomposition))
	switch j.Decomposition {
	case "":
		j.Decomposition = DecompositionComplete
	case DecompositionComplete, DecompositionPath:
	default:
		return fmt.Errorf("%w: decomposition %q", ErrInvalid, j.Decomposition)
	}

	if j.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, j.Workers)
	}
	if j.Timeout < 0 {
		return fmt.Errorf("%w: timeout=%s", ErrInvalid, j.Timeout)
	}

	if err := j.Pattern.validate(); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	if err := j.Target.validate(); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	return nil
}

// MethodValue returns the parsed counting method, brute force when unset.
func (j *Job) MethodValue() hom.Method {
	return j.MethodOr(hom.MethodBruteForce)
}

// MethodOr returns the parsed counting method, or def when the job names none.
func (j *Job) MethodOr(def hom.Method) hom.Method {
	if j.Method == "" {
		return def
	}
	m, err := hom.ParseMethod(j.Method)
	if err != nil {
		return def
	}
	return m
}
