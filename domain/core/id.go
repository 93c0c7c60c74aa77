package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// RunID identifies one complete acquisition + analysis run.
	RunID ID
	// ConfigName identifies one benchmarked configuration (one Sample).
	ConfigName string
)

func (id RunID) String() string     { return ID(id).String() }
func (n ConfigName) String() string { return string(n) }
func (n ConfigName) IsEmpty() bool  { return strings.TrimSpace(string(n)) == "" }

// NewRunID creates a fresh run identifier.
func NewRunID() RunID {
	return RunID(NewID())
}

// ParseConfigName parses a string into ConfigName
func ParseConfigName(s string) (ConfigName, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("configuration name cannot be empty")
	}
	return ConfigName(s), nil
}
