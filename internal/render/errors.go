package render

import "fmt"

// UnsupportedFeatureError reports a clause the target dialect cannot
// express. The capability check raises it before any SQL text is
// produced, so a failed compile never leaks a partial statement, and
// the clause is never silently dropped or rewritten.
type UnsupportedFeatureError struct {
	Feature string // the offending clause, e.g. "RETURNING"
	Dialect string
	Hint    string // optional workaround, shown after the message
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError builds the error for a dialect and feature
// pair. A hint, when given, names the closest supported alternative.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
