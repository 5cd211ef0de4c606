package transform

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const base = "https://github.com/MahApps/MahApps.Metro"

func TestStripCheckboxes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"checked", "- [x] done", "- done"},
		{"unchecked", "- [ ] todo", "- todo"},
		{"uppercase", "- [X] done", "- done"},
		{"multiple lines", "## Notes\n- [x] a\n- [ ] b\n- c", "## Notes\n- a\n- b\n- c"},
		{"indented", "  - [x] nested", "  - nested"},
		{"repeated checkboxes collapse", "- [x] [ ] twice", "- twice"},
		{"plain list untouched", "- just an item", "- just an item"},
		{"link text untouched", "- [docs](http://x) here", "- [docs](http://x) here"},
		{"no space after box", "- [x]done", "- [x]done"},
		{"no space after dash", "-[x] item", "-[x] item"},
		{"double dash", "-- [x] item", "-- item"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCheckboxes(tt.in); got != tt.want {
				t.Errorf("StripCheckboxes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripCheckboxes_MarkerCount(t *testing.T) {
	in := "intro\n- [x] one\ntext - [ ] two\n- [x] three - [x] four"

	got := StripCheckboxes(in)

	want := "intro\n- one\ntext - two\n- three - four"
	if got != want {
		t.Fatalf("StripCheckboxes() = %q, want %q", got, want)
	}
	if strings.Count(got, "- ") != 4 {
		t.Errorf("got %d list markers, want 4", strings.Count(got, "- "))
	}
	if strings.Contains(got, "[x]") || strings.Contains(got, "[ ]") {
		t.Errorf("checkbox text remains: %q", got)
	}
}

func FuzzStripCheckboxes_Idempotent(f *testing.F) {
	for _, seed := range []string{
		"- [x] done",
		"- [x] [y] [z] a",
		"-- [x] - [ ] b",
		"- [x]- [y] c",
		"- [-] [x] ",
		"",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		once := StripCheckboxes(text)
		twice := StripCheckboxes(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", text, once, twice)
		}
	})
}

func TestLinkReferences_Disabled(t *testing.T) {
	in := "Fixes #12 and #7"
	if got := LinkReferences(in, false, base); got != in {
		t.Errorf("LinkReferences(disabled) = %q, want input unchanged", got)
	}
}

func TestLinkReferences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "duplicates get independent indices",
			in:   "See #12, #7 and #12.",
			want: "See [12][0], [7][1] and [12][2]." +
				"\n[0]: " + base + "/pull/12" +
				"\n[1]: " + base + "/pull/7" +
				"\n[2]: " + base + "/pull/12",
		},
		{
			name: "no tokens",
			in:   "Nothing to link here",
			want: "Nothing to link here",
		},
		{
			name: "hash without digits",
			in:   "# Heading and #tag",
			want: "# Heading and #tag",
		},
		{
			name: "embedded token still matches",
			in:   "v1.0#123abc",
			want: "v1.0[123][0]abc\n[0]: " + base + "/pull/123",
		},
		{
			name: "leading zeros kept",
			in:   "#007",
			want: "[007][0]\n[0]: " + base + "/pull/007",
		},
		{
			name: "trailing newline preserved before definitions",
			in:   "Fixes #5\n",
			want: "Fixes [5][0]\n\n[0]: " + base + "/pull/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkReferences(tt.in, true, base); got != tt.want {
				t.Errorf("LinkReferences() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestLinkReferences_FreshCountersPerCall(t *testing.T) {
	first := LinkReferences("#1 #2", true, base)
	second := LinkReferences("#3", true, base)

	if !strings.HasPrefix(second, "[3][0]") {
		t.Errorf("second call should restart at index 0, got %q (first was %q)", second, first)
	}
}

func TestLinkReferences_EveryTokenDefinedOnce(t *testing.T) {
	in := "#4 #4 #10 text #2 #99 #4"
	out := LinkReferences(in, true, base)
	refs := FindReferences(in)

	lines := strings.Split(out, "\n")
	defs := lines[len(lines)-len(refs):]
	for i, def := range defs {
		prefix := "[" + strconv.Itoa(i) + "]: "
		if !strings.HasPrefix(def, prefix) {
			t.Errorf("definition %d = %q, want prefix %q", i, def, prefix)
		}
	}
}

func TestFindReferences(t *testing.T) {
	got := FindReferences("#12 then #7 then #12")
	want := []Reference{
		{Index: 0, Number: "12"},
		{Index: 1, Number: "7"},
		{Index: 2, Number: "12"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindReferences() mismatch (-want +got):\n%s", diff)
	}

	if refs := FindReferences("none"); len(refs) != 0 {
		t.Errorf("FindReferences(none) = %v, want empty", refs)
	}
}

func TestCounter(t *testing.T) {
	var c Counter
	for want := range 3 {
		if got := c.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want string
	}{
		{
			name: "strip only",
			in:   "## X\n- [ ] done #5",
			opts: Options{LinkIssues: false, LinkBase: base},
			want: "## X\n- done #5",
		},
		{
			name: "strip then link",
			in:   "## Fix #5\n- [x] done",
			opts: Options{LinkIssues: true, LinkBase: base},
			want: "## Fix [5][0]\n- done\n[0]: " + base + "/pull/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.in, tt.opts); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}
