package datasource

import "testing"

// TestValidateIdent verifies what may be interpolated into a SELECT: plain
// and schema-qualified identifiers only, everything else rejected.
func TestValidateIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"plain", "customers", true},
		{"underscore start", "_tmp", true},
		{"schema qualified", "public.customers", true},
		{"digits inside", "orders2024", true},
		{"empty", "", false},
		{"leading digit", "1table", false},
		{"double dot", "a.b.c", false},
		{"semicolon injection", "x; drop table y", false},
		{"quotes", `"customers"`, false},
		{"spaces", "my table", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateIdent(tt.in)
			if tt.ok && err != nil {
				t.Fatalf("ValidateIdent(%q) = %v, want nil", tt.in, err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("ValidateIdent(%q) = nil, want error", tt.in)
			}
		})
	}
}
