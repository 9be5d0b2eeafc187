package main

import (
	"fmt"
)

// flagSet represents a flag that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// requireWith returns an error if dependent is set without dependency.
func requireWith(dependent, dependency flagSet) error {
	if dependent.isSet && !dependency.isSet {
		return fmt.Errorf("%s requires %s", dependent.name, dependency.name)
	}
	return nil
}
