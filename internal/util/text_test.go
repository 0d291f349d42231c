package util

import "testing"

func TestConvertArabicDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "arabic indic", input: "٠١٢٣٤٥٦٧٨٩", want: "0123456789"},
		{name: "extended arabic indic", input: "۰۱۲۳", want: "0123"},
		{name: "mixed text", input: "فرع ٣ - 12", want: "فرع 3 - 12"},
		{name: "ascii untouched", input: "abc 42", want: "abc 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertArabicDigits(tt.input); got != tt.want {
				t.Fatalf("ConvertArabicDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces become hyphens", input: "My Coffee Shop", want: "my-coffee-shop"},
		{name: "accents folded", input: "Café Crème", want: "cafe-creme"},
		{name: "underscores and repeats collapse", input: "  pizza__house -- 2  ", want: "pizza-house-2"},
		{name: "arabic digits kept as ascii", input: "مطعم ٢٤", want: "24"},
		{name: "arabic letters dropped", input: "مطعم", want: ""},
		{name: "punctuation dropped", input: "Joe's Burgers!", want: "joes-burgers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhatsApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		code   string
		want   string
		wantOK bool
	}{
		{name: "local with leading zero", input: "01012345678", code: "+20", want: "201012345678", wantOK: true},
		{name: "local without zero", input: "1012345678", code: "+20", want: "201012345678", wantOK: true},
		{name: "arabic digits and separators", input: "٠١٠ ١٢٣٤-٥٦٧٨", code: "+20", want: "201012345678", wantOK: true},
		{name: "international plus", input: "+966 50 123 4567", code: "+20", want: "966501234567", wantOK: true},
		{name: "international double zero", input: "00201012345678", code: "+20", want: "201012345678", wantOK: true},
		{name: "already prefixed", input: "201012345678", code: "+20", want: "201012345678", wantOK: true},
		{name: "too short", input: "123", code: "+20", wantOK: false},
		{name: "too long", input: "+1234567890123456", code: "+20", wantOK: false},
		{name: "empty", input: "", code: "+20", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizeWhatsApp(tt.input, tt.code)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("NormalizeWhatsApp(%q, %q) = (%q, %v), want (%q, %v)", tt.input, tt.code, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
