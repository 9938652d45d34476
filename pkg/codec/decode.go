package codec

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/tendril/pkg/term"
)

// Decode converts a resolved term tree into plain Go values and decodes it
// into out, which must be a pointer to a struct or map. Field mapping
// follows mapstructure conventions.
//
// The tree should be fully resolved: leftover references decode as their
// "@name" string form, and function values are rejected.
func Decode(t term.Term, out any) error {
	plain, err := term.ToGo(t)
	if err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	if err := mapstructure.Decode(plain, out); err != nil {
		return fmt.Errorf("codec: decode into %T: %w", out, err)
	}
	return nil
}
