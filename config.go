package strbuild

import (
	"fmt"
)

func validateConfig(config Config) error {
	if config.InitialCapacity < 0 {
		return fmt.Errorf("initial capacity cannot be negative")
	}

	if config.InitialCapacity > MaxCapacity {
		return fmt.Errorf("initial capacity exceeds maximum of %d bytes", MaxCapacity)
	}

	return nil
}
