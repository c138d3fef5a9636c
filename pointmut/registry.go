package pointmut

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/psjs/matrix"
)

// Spec describes one named point-mutation model.
type Spec struct {
	// Name is the identifier used for dispatch, e.g. "HKY".
	Name string

	// NumParams is the length of the log-scale parameter slice.
	NumParams int

	// Alphabet is the number of symbols the model is defined over.
	Alphabet int

	// Rates builds the Alphabet×Alphabet rate table from natural-scale
	// parameters (exp of the log-scale slice). The diagonal is overwritten
	// with minus the row sums by the caller.
	Rates func(theta []float64) (*matrix.Dense, error)
}

func (s Spec) validate() error {
	if s.Name == "" || s.NumParams <= 0 || s.Alphabet <= 1 || s.Rates == nil {
		return fmt.Errorf("Register(%q): %w", s.Name, ErrInvalidSpec)
	}

	return nil
}

var registry = struct {
	mu    sync.RWMutex
	specs map[string]Spec
}{
	specs: map[string]Spec{
		HKY: hkySpec,
	},
}

// Register adds a named model. Names are unique; re-registering fails with
// ErrDuplicateModel.
func Register(s Spec) error {
	if err := s.validate(); err != nil {
		return err
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.specs[s.Name]; ok {
		return fmt.Errorf("Register(%q): %w", s.Name, ErrDuplicateModel)
	}
	registry.specs[s.Name] = s

	return nil
}

// Lookup returns the Spec registered under name.
func Lookup(name string) (Spec, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	s, ok := registry.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnsupportedModel, name)
	}

	return s, nil
}

// Supported lists registered model names in ascending order.
func Supported() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.specs))
	for name := range registry.specs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
