package dropdown

// Option is a single selectable entry. Entries are identified by Value.
type Option struct {
	Value    string `validate:"required"`
	Label    string `validate:"required"`
	Disabled bool
}

// Catalog is the ordered, read-only list of options supplied by the caller.
type Catalog []Option

// Len returns the number of options.
func (c Catalog) Len() int {
	return len(c)
}

// Lookup finds the option with the given value. It is a best-effort match: an empty or
// unknown value reports false.
func (c Catalog) Lookup(value string) (Option, int, bool) {
	if value == "" {
		return Option{}, -1, false
	}
	for i, opt := range c {
		if opt.Value == value {
			return opt, i, true
		}
	}
	return Option{}, -1, false
}

// Values returns the option values in catalog order.
func (c Catalog) Values() []string {
	values := make([]string, len(c))
	for i, opt := range c {
		values[i] = opt.Value
	}
	return values
}
