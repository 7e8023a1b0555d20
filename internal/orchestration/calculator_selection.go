package orchestration

import (
	"fmt"

	"github.com/agbru/widecalc/internal/calc"
)

// AllBackends selects every registered backend.
const AllBackends = "all"

// GetCalculatorsToRun resolves a backend selection. "all" returns every
// registered backend in alphabetical order; any other name returns exactly
// that backend.
//
// Parameters:
//   - backend: A backend name or AllBackends.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []calc.Calculator: The calculators to execute.
//   - error: Non-nil when the name is unknown or nothing is registered.
func GetCalculatorsToRun(backend string, factory calc.CalculatorFactory) ([]calc.Calculator, error) {
	if backend == AllBackends {
		keys := factory.List()
		calculators := make([]calc.Calculator, 0, len(keys))
		for _, k := range keys {
			if c, err := factory.Get(k); err == nil {
				calculators = append(calculators, c)
			}
		}
		if len(calculators) == 0 {
			return nil, fmt.Errorf("no backend registered")
		}
		return calculators, nil
	}
	c, err := factory.Get(backend)
	if err != nil {
		return nil, err
	}
	return []calc.Calculator{c}, nil
}
