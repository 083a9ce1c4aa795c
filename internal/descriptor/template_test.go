package descriptor

import (
	"strings"
	"testing"
)

func TestWriteTemplateHeaderBodySplitFooter(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	tmpl := Template{
		Header: "BEGIN %W %H\n",
		Body:   "%n %w %h at %x,%y rot=%f\n",
		Split:  "---\n",
		Footer: "END\n",
	}

	var buf strings.Builder
	if err := WriteTemplate(&buf, result, tmpl); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	want := "BEGIN 64 64\n" +
		"hero 10 20 at 0,0 rot=0\n" +
		"---\n" +
		"sword & shield 8 8 at 10,0 rot=1\n" +
		"END\n"
	if buf.String() != want {
		t.Fatalf("output =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestExpandEscapesAndLiteralPercent(t *testing.T) {
	t.Parallel()

	got := expand(`100%%\tdone\n`, Template{}, sampleResult(), nil)
	want := "100%\tdone\n"
	if got != want {
		t.Fatalf("expand = %q, want %q", got, want)
	}
}

func TestExpandUnknownSpecifierEmitsLiteralAndWarns(t *testing.T) {
	t.Parallel()

	var warnings []string
	tmpl := Template{Warnf: func(format string, args ...any) {
		warnings = append(warnings, format)
	}}

	got := expand(`%Q`, tmpl, sampleResult(), nil)
	if got != "Q" {
		t.Fatalf("expand(%%Q) = %q, want %q", got, "Q")
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}

func TestExpandUnknownEscapeEmitsLiteralAndWarns(t *testing.T) {
	t.Parallel()

	var warnings []string
	tmpl := Template{Warnf: func(format string, args ...any) {
		warnings = append(warnings, format)
	}}

	got := expand(`\Z`, tmpl, sampleResult(), nil)
	if got != "Z" {
		t.Fatalf(`expand(\Z) = %q, want %q`, got, "Z")
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}

func TestEnabledRequiresBody(t *testing.T) {
	t.Parallel()

	if (Template{}).Enabled() {
		t.Fatal("empty Template must not enable template mode")
	}
	if !(Template{Body: "x"}).Enabled() {
		t.Fatal("non-empty Body must enable template mode")
	}
}
