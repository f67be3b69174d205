package profile

import (
	"encoding/json"
	"testing"

	"github.com/graceapps/breezediff/internal/breeze"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		fieldType string
		want      FieldKind
	}{
		{"single_line", KindSimple},
		{"grade", KindSimple},
		{"birthdate", KindSimple},
		{"date", KindSimple},
		{"notes", KindSimple},
		{"dropdown", KindSingleSelect},
		{"multiple_choice", KindSingleSelect},
		{"checkbox", KindMultiSelect},
		{"email", KindEmail},
		{"phone", KindPhone},
		{"address", KindAddress},
		{"paragraph_with_formatting", KindNone},
		{"", KindNone},
	}
	for _, tt := range tests {
		if got := kindOf(tt.fieldType); got != tt.want {
			t.Errorf("kindOf(%q) = %v, want %v", tt.fieldType, got, tt.want)
		}
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		kind FieldKind
		raw  string
		want Values
	}{
		{"simple string", KindSimple, `"Wilder"`, Values{"Wilder"}},
		{"simple number", KindSimple, `7`, Values{"7"}},
		{"simple empty", KindSimple, `""`, nil},
		{"simple malformed", KindSimple, `{"oops":1}`, nil},

		{"single select", KindSingleSelect, `{"value":"211","name":"Include (Default for adults)"}`,
			Values{"Include (Default for adults)"}},
		{"single select no name", KindSingleSelect, `{"value":"211","name":null}`, nil},

		{"multi select skips placeholder", KindMultiSelect,
			`[{"name":null,"value":"null"},{"name":"Coffee Host","value":"78"},{"name":"Worship","value":"145"}]`,
			Values{"Coffee Host", "Worship"}},
		{"multi select all placeholders", KindMultiSelect, `[{"name":null,"value":"null"}]`, nil},

		{"email primary", KindEmail,
			`[{"address":"kate@example.com","field_type":"email_primary","is_private":"0"}]`,
			Values{"kate@example.com"}},
		{"email private", KindEmail,
			`[{"address":"kate@example.com","field_type":"email_primary","is_private":"1"}]`,
			Values{"kate@example.com(private)"}},
		{"email labeled", KindEmail,
			`[{"address":"kate@work.example.com","field_type":"email_work","is_private":"0"}]`,
			Values{"work:kate@work.example.com"}},
		{"email without address skipped", KindEmail,
			`[{"field_type":"email_primary"},{"address":"kate@example.com","field_type":"email_primary"}]`,
			Values{"kate@example.com"}},

		{"phone primary", KindPhone,
			`[{"phone_number":"(555) 321-0000","phone_type":"primary"}]`,
			Values{"(555) 321-0000"}},
		{"phone markers and label", KindPhone,
			`[{"phone_number":"(333) 543-2100","phone_type":"mobile","is_private":"1","do_not_text":"1"}]`,
			Values{"mobile:(333) 543-2100(private)(no text)"}},
		{"phone missing type skipped", KindPhone,
			`[{"phone_number":"(555) 321-0000"},{"phone_type":"home"}]`, nil},

		{"address", KindAddress,
			`[{"street_address":"205 S Pleasant St","city":"Los Angeles","state":"CA","zip":"12456"}]`,
			Values{"205 S Pleasant St;Los Angeles CA 12456"}},
		{"address multi line street", KindAddress,
			`[{"street_address":"12 Elm St<br />Apt 4","city":"Springfield","state":"IL","zip":"62704"}]`,
			Values{"12 Elm St;Apt 4;Springfield IL 62704"}},
		{"address single object", KindAddress,
			`{"street_address":"1 Main St","city":"Dayton","state":"OH","zip":"45402"}`,
			Values{"1 Main St;Dayton OH 45402"}},
		{"address all blank", KindAddress, `[{}]`, nil},

		{"unknown kind", KindNone, `"whatever"`, nil},
		{"empty raw", KindSimple, ``, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.kind.extract(json.RawMessage(tt.raw))
			if len(got) != len(tt.want) {
				t.Fatalf("extract(%s) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("extract(%s)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name                      string
		first, last, middle, nick string
		want                      string
	}{
		{"plain", "Thomas", "Anderson", "", "", "Anderson, Thomas"},
		{"nickname", "Thomas", "Anderson", "", "Neo", "Anderson, Thomas (Neo)"},
		{"nickname same as first", "Thomas", "Anderson", "", "Thomas", "Anderson, Thomas"},
		{"middle", "Firstname2", "Blast", "Lee", "", "Blast, Firstname2 Lee"},
		{"nickname and middle", "Firstname2", "Blast", "Lee", "Harry", "Blast, Firstname2 (Harry) Lee"},
		{"no last name", "Kate", "", "", "", "Kate"},
		{"no first name", "", "Austen", "", "", "Austen"},
		{"all empty", "", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.first, tt.last, tt.middle, tt.nick); got != tt.want {
				t.Errorf("displayName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractFamily(t *testing.T) {
	family := []breeze.FamilyMember{
		{
			RoleName: "Spouse",
			Details:  &breeze.Person{FirstName: "Kate", LastName: "Austen"},
		},
		{
			// No role: the parenthetical is omitted.
			Details: &breeze.Person{FirstName: "Aaron", LastName: "Austen"},
		},
		{
			// No details record at all: skipped.
			RoleName: "Child",
		},
	}

	got := extractFamily(family)
	want := Values{"Austen, Kate (Spouse)", "Austen, Aaron"}
	if len(got) != len(want) {
		t.Fatalf("extractFamily = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("extractFamily[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := extractFamily(nil); got != nil {
		t.Errorf("extractFamily(nil) = %v, want nil", got)
	}
}
