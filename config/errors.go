package config

import "fmt"

// Error is returned for any config that can't be loaded or is invalid.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
