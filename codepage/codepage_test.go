package codepage

import (
	"testing"

	"github.com/go-test/deep"
)

func TestEscapeRoundTrip(t *testing.T) {
	in := "^|*:\\/?\"<>#12345"
	want := "^^^v^a^c^d^s^q^t^l^r^h12345"

	got := string(ToLossyBytes(in))
	if got != want {
		t.Fatalf("ToLossyBytes(%q) = %q, want %q", in, got, want)
	}

	back := ToLossyString([]byte(got))
	if diff := deep.Equal(back, in); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

func TestColourMarkersPassThrough(t *testing.T) {
	in := "^1Red ^2Green^3"
	bytes := ToLossyBytes(in)
	back := ToLossyString(bytes)
	if back != in {
		t.Fatalf("colour markers not preserved: got %q, want %q", back, in)
	}
}

func TestMixedScriptEncoding(t *testing.T) {
	in := "Árvíztűrő tükörfúrógép"
	want := "Árvízt?r? tükörfúrógép"

	bytes := ToLossyBytes(in)
	got := ToLossyString(bytes)
	if got != want {
		t.Fatalf("ToLossyString(ToLossyBytes(%q)) = %q, want %q", in, got, want)
	}
}

func TestStripColours(t *testing.T) {
	in := "^1Hello^^World^9!"
	want := "Hello^^World!"
	got := StripColours(in)
	if got != want {
		t.Fatalf("StripColours(%q) = %q, want %q", in, got, want)
	}
	if again := StripColours(got); again != got {
		t.Fatalf("StripColours not idempotent: %q != %q", again, got)
	}
}

func TestLatin1RoundTrip(t *testing.T) {
	in := "Hello, world! 123"
	bytes := ToLossyBytes(in)
	got := ToLossyString(bytes)
	if got != in {
		t.Fatalf("round trip mismatch: got %q, want %q", got, in)
	}
}
