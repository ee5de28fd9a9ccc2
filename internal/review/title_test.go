package review

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"API Proposal: Add Span overloads", "Add Span overloads"},
		{"[API Proposal] Add Span overloads", "Add Span overloads"},
		{"api: lowercase prefix", "lowercase prefix"},
		{"[Feature Request] New thing", "New thing"},
		{"No prefix here", "No prefix here"},
		{"Proposal: trailing   ", "trailing"},
	}
	for _, c := range cases {
		if got := NormalizeTitle(c.in); got != c.want {
			t.Fatalf("NormalizeTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTitle_StackedPrefixes(t *testing.T) {
	// Stacked prefixes collapse even when the outer one appears later in
	// the prefix table than the inner one.
	if got := NormalizeTitle("[API] Feature: Foo"); got != "Foo" {
		t.Fatalf("got %q, want %q", got, "Foo")
	}
	if got := NormalizeTitle("Feature: [API] Foo"); got != "Foo" {
		t.Fatalf("got %q, want %q", got, "Foo")
	}
}
