package inspect

import (
	"reflect"
	"testing"

	"inspector/internal/table"
)

// cells builds a cell slice for tests; nil marks a missing cell.
func cells(vals ...any) []table.Cell {
	out := make([]table.Cell, 0, len(vals))
	for _, v := range vals {
		if v == nil {
			out = append(out, table.Missing())
			continue
		}
		out = append(out, table.String(v.(string)))
	}
	return out
}

//
// Classify
//

// TestClassifyPrecedence verifies the type inference ladder: numeric, then
// date, then boolean, then email-like, then mixed, else text.
//
// Inference is best-effort and must never fail: a column with no usable
// values falls back to text.
func TestClassifyPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		column string
		vals   []any
		want   Type
	}{
		{
			name:   "plain numeric",
			column: "amount",
			vals:   []any{"1", "2.5", "3"},
			want:   TypeNumeric,
		},
		{
			name:   "decorated numeric is still numeric",
			column: "price",
			vals:   []any{"$10", "$20.50", "15"},
			want:   TypeNumeric,
		},
		{
			name:   "numeric tolerates missing cells",
			column: "amount",
			vals:   []any{"1", nil, "3", nil},
			want:   TypeNumeric,
		},
		{
			name:   "iso dates",
			column: "created",
			vals:   []any{"2024-01-02", "2024-03-04", "2024-05-06"},
			want:   TypeDate,
		},
		{
			name:   "mixed-layout dates still classify date",
			column: "created",
			vals:   []any{"2024-01-02", "02/03/2024", "2024/05/06"},
			want:   TypeDate,
		},
		{
			name:   "yes no boolean",
			column: "active",
			vals:   []any{"yes", "no", "YES"},
			want:   TypeBoolean,
		},
		{
			name:   "one zero set is numeric not boolean",
			column: "flag",
			vals:   []any{"1", "0", "1"},
			want:   TypeNumeric,
		},
		{
			name:   "single boolean token is not boolean",
			column: "flag",
			vals:   []any{"yes", "yes", "yes"},
			want:   TypeText,
		},
		{
			name:   "email by column name",
			column: "email",
			vals:   []any{"a@b.com", "not-an-address"},
			want:   TypeEmail,
		},
		{
			name:   "email by value shape",
			column: "contact",
			vals:   []any{"a@b.com", "c@d.org", "oops"},
			want:   TypeEmail,
		},
		{
			name:   "numbers mixed with text",
			column: "price",
			vals:   []any{"$10", "1", "2", "3", "4", "5", "6", "7", "8", "twenty"},
			want:   TypeMixed,
		},
		{
			name:   "plain text",
			column: "note",
			vals:   []any{"alpha", "beta", "gamma"},
			want:   TypeText,
		},
		{
			name:   "stray boolean token tips text into mixed",
			column: "batch",
			vals:   []any{"alpha", "beta", "gamma", "y"},
			want:   TypeMixed,
		},
		{
			name:   "all missing falls back to text",
			column: "anything",
			vals:   []any{nil, nil, ""},
			want:   TypeText,
		},
		{
			name:   "empty column falls back to text",
			column: "anything",
			vals:   nil,
			want:   TypeText,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.column, cells(tt.vals...), DefaultConfig())
			if got.Type != tt.want {
				t.Fatalf("Classify(%q) = %v, want %v", tt.column, got.Type, tt.want)
			}
		})
	}
}

// TestClassifyEmailLikeIndependentOfType verifies that a column named email
// keeps its email-like flag even when the values classify it as something
// else, so the validator still runs over it.
func TestClassifyEmailLikeIndependentOfType(t *testing.T) {
	t.Parallel()

	got := Classify("email", cells(nil, nil), DefaultConfig())
	if got.Type != TypeText {
		t.Fatalf("Type = %v, want %v", got.Type, TypeText)
	}
	if !got.EmailLike {
		t.Fatal("a column named email must stay email-like")
	}
}

// TestClassifyCompetingOrder verifies that mixed classification lists the
// competing categories by descending share and ignores categories below the
// minority threshold.
func TestClassifyCompetingOrder(t *testing.T) {
	t.Parallel()

	vals := []any{"1", "2", "3", "4", "5", "6", "alpha", "beta", "gamma", "delta"}
	got := Classify("col", cells(vals...), DefaultConfig())
	if got.Type != TypeMixed {
		t.Fatalf("Type = %v, want %v", got.Type, TypeMixed)
	}
	want := []Type{TypeNumeric, TypeText}
	if !reflect.DeepEqual(got.Competing, want) {
		t.Fatalf("Competing = %v, want %v", got.Competing, want)
	}
}

// TestClassifyDeterministic verifies that repeated runs over the same cells
// produce identical classifications.
func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	cs := cells("1", "two", "3.5", "2024-01-02", nil, "yes", "no")
	first := Classify("col", cs, DefaultConfig())
	for i := 0; i < 10; i++ {
		if got := Classify("col", cs, DefaultConfig()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

//
// looksLikeEmailColumn
//

// TestLooksLikeEmailColumn verifies the two heuristics separately.
func TestLooksLikeEmailColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		column string
		values []string
		want   bool
	}{
		{"name contains email", "Customer Email", nil, true},
		{"name ends in mail", "contact_mail", nil, true},
		{"majority at signs", "contact", []string{"a@b.com", "c@d.com", "x"}, true},
		{"exactly half is not majority", "contact", []string{"a@b.com", "x"}, false},
		{"plain column", "city", []string{"Oslo", "Bergen"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := looksLikeEmailColumn(tt.column, tt.values); got != tt.want {
				t.Fatalf("looksLikeEmailColumn(%q) = %v, want %v", tt.column, got, tt.want)
			}
		})
	}
}
