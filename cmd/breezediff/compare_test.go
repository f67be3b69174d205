package main

import (
	"strings"
	"testing"

	"github.com/graceapps/breezediff/internal/profile"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := noColor
	noColor = true
	t.Cleanup(func() { noColor = prev })
}

func TestRenderReport(t *testing.T) {
	withoutColor(t)

	report := []profile.DiffEntry{
		{
			PersonName: "Anderson, Thomas",
			Fields: []profile.FieldDiff{
				{
					Name:            "Communication:Phone",
					OnlyInReference: []string{"(555) 321-0000"},
					OnlyInCurrent:   []string{"(555) 321-0001"},
				},
				{
					Name:          "Main:Campus",
					OnlyInCurrent: []string{"North"},
				},
			},
		},
		{
			PersonName: "Blast, Kate",
			Fields: []profile.FieldDiff{
				{
					Name:            "Spiritual Gifts:Gifts",
					OnlyInReference: []string{"Exhortation"},
				},
			},
		},
	}

	var sb strings.Builder
	renderReport(&sb, report)

	want := strings.Join([]string{
		"Anderson, Thomas",
		"  Communication:Phone",
		"    - (555) 321-0000",
		"    + (555) 321-0001",
		"  Main:Campus",
		"    + North",
		"",
		"Blast, Kate",
		"  Spiritual Gifts:Gifts",
		"    - Exhortation",
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderReport_Empty(t *testing.T) {
	withoutColor(t)

	var sb strings.Builder
	renderReport(&sb, nil)
	if sb.Len() != 0 {
		t.Errorf("expected no output, got %q", sb.String())
	}
}

func TestColorize(t *testing.T) {
	prev := noColor
	t.Cleanup(func() { noColor = prev })

	noColor = true
	if got := colorize(colorRed, "text"); got != "text" {
		t.Errorf("with colors off: got %q", got)
	}

	noColor = false
	if got := colorize(colorRed, "text"); got != colorRed+"text"+colorReset {
		t.Errorf("with colors on: got %q", got)
	}
}
