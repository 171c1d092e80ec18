// Package codes implements the product-code construction and tag
// normalization rules applied on catalog writes.
package codes

import (
	"fmt"
	"strings"
)

// ValidationError indicates an input that cannot produce a full code.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FullCode derives the stored catalog code from a raw product code and a
// manufacturer name. The manufacturer is uppercased and trimmed; if the raw
// code already carries that prefix (compared case-insensitively) it is
// returned as-is, otherwise the prefix is applied. A hyphen inside the raw
// code that is not the manufacturer prefix does not count as one.
func FullCode(rawCode, manufacturer string) (string, error) {
	mfr := strings.ToUpper(strings.TrimSpace(manufacturer))
	if mfr == "" {
		return "", &ValidationError{Field: "manufacturer", Message: "must not be empty"}
	}

	raw := strings.TrimSpace(rawCode)
	if raw == "" {
		return "", &ValidationError{Field: "code", Message: "must not be empty"}
	}

	if strings.HasPrefix(strings.ToUpper(raw), mfr+"-") {
		return raw, nil
	}
	return mfr + "-" + raw, nil
}

// NormalizeTags guarantees a non-nil tag slice. Order, case and duplicates
// are preserved exactly as supplied; tags are deliberately not deduplicated
// or case-folded.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
