package data

import "fmt"

// LoadAll loads every static registry in dependency order.
// Any validation error is fatal for the caller: the process must not run
// with an inconsistent data table.
func LoadAll() error {
	if err := LoadAttributes(); err != nil {
		return fmt.Errorf("loading attributes: %w", err)
	}
	if err := LoadEffects(); err != nil {
		return fmt.Errorf("loading effects: %w", err)
	}
	if err := LoadItems(); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	if err := LoadBlocks(); err != nil {
		return fmt.Errorf("loading blocks: %w", err)
	}
	if err := LoadFluids(); err != nil {
		return fmt.Errorf("loading fluids: %w", err)
	}
	return nil
}
