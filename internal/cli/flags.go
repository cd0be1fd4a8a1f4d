package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// formatFlag is a string flag restricted to a fixed set of values.
type formatFlag struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*formatFlag)(nil)

func newFormatFlag(def string, allowed ...string) *formatFlag {
	f := &formatFlag{allowed: allowed}
	if err := f.Set(def); err != nil {
		// Bad environment default: fall back to the first allowed value.
		f.value = allowed[0]
	}
	return f
}

func (f *formatFlag) String() string { return f.value }

func (f *formatFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(f.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(f.allowed, "|"))
	}
	f.value = s
	return nil
}

func (f *formatFlag) Type() string { return "format" }
