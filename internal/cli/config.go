package cli

import (
	"fmt"
	"strings"

	"github.com/dl/bytelit/internal/lang"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// DefaultMmapThreshold is the file size from which inputs are memory-mapped.
const DefaultMmapThreshold = 1 << 20

// Config holds all configuration for a bytelit run.
type Config struct {
	Style         string
	Wrap          int
	Name          string
	Comment       string
	JSONOutput    bool
	Color         ColorMode
	Recursive     bool
	NoIgnore      bool
	Hidden        bool
	Globs         []string
	MaxSize       int64
	Workers       int
	MmapThreshold int64
	Paths         []string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Style:         "c",
		Wrap:          lang.DefaultWrap,
		MmapThreshold: DefaultMmapThreshold,
	}
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	style, err := lang.ParseStyle(c.Style)
	if err != nil {
		return err
	}
	if !style.HasLiteral() {
		return fmt.Errorf("style %s only supports comments", style)
	}
	if c.Wrap < 1 {
		return fmt.Errorf("invalid wrap width: %d", c.Wrap)
	}
	if c.Name != "" && !IsIdentifier(c.Name) {
		return fmt.Errorf("invalid variable name %q", c.Name)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("invalid max size: %d", c.MaxSize)
	}
	if c.Recursive && len(c.Paths) == 0 {
		return fmt.Errorf("cannot use -r (recursive) without a path")
	}
	return nil
}

// multiSource reports whether several inputs share the output stream.
func (c *Config) multiSource() bool {
	return c.Recursive || len(c.Paths) > 1
}
