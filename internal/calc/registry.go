package calc

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and caches Calculators by backend name.
type CalculatorFactory interface {
	// Get returns the cached Calculator for name, creating it on first use.
	Get(name string) (Calculator, error)

	// List returns the sorted names of all registered backends.
	List() []string

	// Register adds or replaces a backend creator.
	Register(name string, creator func() Backend) error

	// GetAll returns every registered Calculator by name.
	GetAll() map[string]Calculator
}

// DefaultFactory is a thread-safe registry of backend creators. Calculators
// are built lazily and cached.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() Backend
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with the "fft" and "big" backends
// registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() Backend),
		calculators: make(map[string]Calculator),
	}
	_ = f.Register("fft", func() Backend { return FFTBackend{} })
	_ = f.Register("big", func() Backend { return BigBackend{} })
	return f
}

// Register adds a backend creator under name, replacing any previous one.
// The creator runs when the calculator is first requested.
func (f *DefaultFactory) Register(name string, creator func() Backend) error {
	if name == "" || creator == nil {
		return fmt.Errorf("calc: invalid registration for backend %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Get returns the Calculator for name.
//
// Returns an error if no backend is registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns the registered backend names in alphabetical order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll initializes every registered calculator and returns a copy of the
// name to Calculator map.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = NewCalculator(creator())
		}
	}
	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

// Has reports whether a backend is registered under name.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory. Optional backends such as
// gmp register themselves here from init.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterBackend registers a backend in the global factory.
func RegisterBackend(name string, creator func() Backend) error {
	return globalFactory.Register(name, creator)
}
