// Package scenario runs scripted inventory operations loaded from YAML.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/slotgrid/internal/inventory"
)

// Step operations
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpHas    = "has"
	OpPrint  = "print"
)

var (
	ErrUnknownOp         = errors.New("scenario: unknown op")
	ErrUnknownItem       = errors.New("scenario: unknown item")
	ErrExpectationFailed = errors.New("scenario: expectation failed")
)

// Scenario is an ordered list of steps run against one inventory.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single operation. Item is resolved by name through the
// inventory's registry.
type Step struct {
	Op     string              `yaml:"op"`
	Item   string              `yaml:"item,omitempty"`
	Amount int                 `yaml:"amount,omitempty"`
	At     *inventory.Position `yaml:"at,omitempty"`     // target a single slot
	Drop   *bool               `yaml:"drop,omitempty"`   // remove only; defaults to true
	Expect *bool               `yaml:"expect,omitempty"` // expected outcome, checked when set
}

func (s Step) String() string {
	out := s.Op
	if s.Item != "" {
		out += fmt.Sprintf(" %s %d", s.Item, s.Amount)
	}
	if s.At != nil {
		out += " at " + s.At.String()
	}
	return out
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scenario: empty document")
		}
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	for i, st := range sc.Steps {
		switch st.Op {
		case OpAdd, OpRemove, OpHas:
			if st.Item == "" {
				return nil, fmt.Errorf("step %d (%s): item is required", i, st.Op)
			}
		case OpPrint:
		default:
			return nil, fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, st.Op)
		}
	}
	return &sc, nil
}
