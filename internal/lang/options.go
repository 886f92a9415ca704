package lang

// DefaultWrap is the line width used when Options.Wrap is not positive.
const DefaultWrap = 60

// DefaultName is the variable name used by most styles when Options.Name is empty.
const DefaultName = "buf"

// Options configures a single formatting call. The zero value selects the defaults:
// DefaultWrap for the width and the style's default variable name.
type Options struct {
	// Wrap is the line width in characters, counted over encoded units and
	// line delimiters but not over the header line.
	Wrap int

	// Name is the variable or array name used in the declaration.
	Name string
}

func (o Options) wrap() int {
	return normalizeWrap(o.Wrap)
}

func (o Options) nameOr(def string) string {
	if o.Name == "" {
		return def
	}
	return o.Name
}

func normalizeWrap(wrap int) int {
	if wrap <= 0 {
		return DefaultWrap
	}
	return wrap
}
