// Package datasource holds shared helpers for the table loaders.
package datasource

import (
	"fmt"
	"regexp"
)

// identPattern accepts plain and schema-qualified SQL identifiers
// ("customers", "public.customers", "dbo.orders"). Table names are
// interpolated into SELECT statements, so anything else is rejected.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateIdent rejects table names that are not safe to interpolate.
func ValidateIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}
