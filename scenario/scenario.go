package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ttn-nguyen42/linkedlist/data"
)

const (
	KindSingly = "singly"
	KindDoubly = "doubly"
	KindBoth   = "both"
)

const (
	OpAddToStart        = "add_to_start"
	OpAddToEnd          = "add_to_end"
	OpInsertAtIndex     = "insert_at_index"
	OpUpdateNodeAtIndex = "update_node_at_index"
	OpRemoveFirstNode   = "remove_first_node"
	OpRemoveLastNode    = "remove_last_node"
	OpRemoveNodeAtIndex = "remove_node_at_index"
	OpRemoveNode        = "remove_node"
	OpSize              = "size"
	OpToSequence        = "to_sequence"
)

var valueOps = map[string]bool{
	OpAddToStart:        true,
	OpAddToEnd:          true,
	OpInsertAtIndex:     true,
	OpUpdateNodeAtIndex: true,
	OpRemoveNode:        true,
}

var knownOps = map[string]bool{
	OpAddToStart:        true,
	OpAddToEnd:          true,
	OpInsertAtIndex:     true,
	OpUpdateNodeAtIndex: true,
	OpRemoveFirstNode:   true,
	OpRemoveLastNode:    true,
	OpRemoveNodeAtIndex: true,
	OpRemoveNode:        true,
	OpSize:              true,
	OpToSequence:        true,
}

// Expected error names usable in a step's error field.
var knownErrors = map[string]error{
	"out_of_bounds": data.ErrOutOfBounds,
	"not_found":     data.ErrNotFound,
}

// File is the top level document of a scenario file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a named list of steps replayed against one or both containers.
type Scenario struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Steps []Step `yaml:"steps"`
}

// Step is a single operation plus the state expected once it has run.
// Expect and Size are only checked when present; an empty Error means the
// operation must succeed.
type Step struct {
	Op     string `yaml:"op"`
	Value  any    `yaml:"value"`
	Index  int    `yaml:"index"`
	Expect *[]any `yaml:"expect"`
	Size   *int   `yaml:"size"`
	Error  string `yaml:"error"`
}

// Kinds expands the scenario kind into the containers it runs against.
func (s Scenario) Kinds() []string {
	if s.Kind == KindBoth {
		return []string{KindSingly, KindDoubly}
	}
	return []string{s.Kind}
}

func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return f, nil
}

func Load(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func applyDefaults(f *File) {
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if sc.Kind == "" {
			sc.Kind = KindBoth
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
}

func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return errors.New("no scenarios defined")
	}
	for _, sc := range f.Scenarios {
		if err := sc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s Scenario) Validate() error {
	switch s.Kind {
	case KindSingly, KindDoubly, KindBoth:
	default:
		return fmt.Errorf("scenario %q: unknown kind %q", s.Name, s.Kind)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("scenario %q step %d: %w", s.Name, i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	if !knownOps[st.Op] {
		return fmt.Errorf("unknown op %q", st.Op)
	}
	if valueOps[st.Op] {
		if st.Value == nil {
			return fmt.Errorf("op %q requires a value", st.Op)
		}
		if !isScalar(st.Value) {
			return fmt.Errorf("value %v is not a scalar", st.Value)
		}
	}
	if st.Error != "" {
		if _, ok := knownErrors[st.Error]; !ok {
			return fmt.Errorf("unknown error %q", st.Error)
		}
	}
	if st.Size != nil && *st.Size < 0 {
		return fmt.Errorf("negative size %d", *st.Size)
	}
	if st.Expect != nil {
		for _, v := range *st.Expect {
			if !isScalar(v) {
				return fmt.Errorf("expected value %v is not a scalar", v)
			}
		}
	}
	return nil
}

// isScalar reports whether v is safe to compare with ==.
func isScalar(v any) bool {
	switch v.(type) {
	case nil, bool, int, int64, uint64, float64, string:
		return true
	}
	return false
}

// NewSequence returns an empty container of the given kind.
func NewSequence(kind string) (data.Sequence[any], error) {
	switch kind {
	case KindSingly:
		return data.NewSinglyLinkedList[any](), nil
	case KindDoubly:
		return data.NewDoublyLinkedList[any](), nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}
