// Package profile normalizes Breeze profile records and computes per-field
// change reports between two snapshots of the same roster.
//
// A raw profile answers a catalog of typed questions; normalization reduces
// every answered field to display strings so two snapshots can be compared
// even when their catalogs differ. Comparison treats multi-valued fields as
// sets, so reordering alone is never reported as a change.
package profile

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/graceapps/breezediff/internal/breeze"
)

// Values is one field's normalized value: an ordered list of display strings.
// A nil or empty Values means the field has no value and is omitted.
type Values []string

// FieldKind classifies a profile field by how its raw value is extracted.
type FieldKind int

const (
	// KindNone marks field types with no extractor. Such fields are
	// excluded from normalization rather than treated as an error.
	KindNone FieldKind = iota
	KindSimple
	KindSingleSelect
	KindMultiSelect
	KindEmail
	KindPhone
	KindAddress

	// kindName and kindFamily are synthetic: they read the profile's own
	// name parts and family list instead of a detail value.
	kindName
	kindFamily
)

// kindOf maps a Breeze field_type tag to its extraction kind.
func kindOf(fieldType string) FieldKind {
	switch fieldType {
	case "grade", "single_line", "birthdate", "date", "notes":
		return KindSimple
	case "multiple_choice", "dropdown":
		return KindSingleSelect
	case "checkbox":
		return KindMultiSelect
	case "email":
		return KindEmail
	case "phone":
		return KindPhone
	case "address":
		return KindAddress
	default:
		return KindNone
	}
}

// extract converts one raw detail value to its normalized form. Malformed or
// empty data yields nil; nothing here returns an error.
func (k FieldKind) extract(raw json.RawMessage) Values {
	if len(raw) == 0 {
		return nil
	}
	switch k {
	case KindSimple:
		return extractSimple(raw)
	case KindSingleSelect:
		return extractSingleSelect(raw)
	case KindMultiSelect:
		return extractMultiSelect(raw)
	case KindEmail:
		return extractEmail(raw)
	case KindPhone:
		return extractPhone(raw)
	case KindAddress:
		return extractAddress(raw)
	default:
		return nil
	}
}

func extractSimple(raw json.RawMessage) Values {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		return Values{s}
	}
	// Grades occasionally come through as bare numbers.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err == nil {
		return Values{n.String()}
	}
	return nil
}

// selectOption is one choice of a dropdown or checkbox field. Value is the
// internal key; Name is the human-visible text. Checkbox data routinely
// carries a placeholder entry with a null name that must be skipped.
type selectOption struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

func extractSingleSelect(raw json.RawMessage) Values {
	var opt selectOption
	if err := json.Unmarshal(raw, &opt); err != nil || opt.Name == "" {
		return nil
	}
	return Values{opt.Name}
}

func extractMultiSelect(raw json.RawMessage) Values {
	var opts []selectOption
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil
	}
	var vals Values
	for _, opt := range opts {
		if opt.Name != "" {
			vals = append(vals, opt.Name)
		}
	}
	return vals
}

type emailEntry struct {
	Address   string `json:"address"`
	FieldType string `json:"field_type"` // "email_primary", etc.
	IsPrivate string `json:"is_private"`
}

func extractEmail(raw json.RawMessage) Values {
	var entries []emailEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	var vals Values
	for _, e := range entries {
		if e.Address == "" {
			continue
		}
		addr := e.Address
		if e.IsPrivate == "1" {
			addr += "(private)"
		}
		label := strings.TrimPrefix(e.FieldType, "email_")
		if label != "" && label != "primary" {
			addr = label + ":" + addr
		}
		vals = append(vals, addr)
	}
	return vals
}

type phoneEntry struct {
	PhoneNumber string `json:"phone_number"`
	PhoneType   string `json:"phone_type"`
	IsPrivate   string `json:"is_private"`
	DoNotText   string `json:"do_not_text"`
}

func extractPhone(raw json.RawMessage) Values {
	var entries []phoneEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	var vals Values
	for _, e := range entries {
		// Entries missing the number or the type are skipped entirely.
		if e.PhoneNumber == "" || e.PhoneType == "" {
			continue
		}
		phone := e.PhoneNumber
		if e.IsPrivate == "1" {
			phone += "(private)"
		}
		if e.DoNotText == "1" {
			phone += "(no text)"
		}
		if e.PhoneType != "primary" {
			phone = e.PhoneType + ":" + phone
		}
		vals = append(vals, phone)
	}
	return vals
}

type addressEntry struct {
	StreetAddress  string `json:"street_address"`
	StreetAddress2 string `json:"street_address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
}

func extractAddress(raw json.RawMessage) Values {
	// The schema allows a list of addresses even though only one is ever
	// populated today; accept both shapes.
	var entries []addressEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		var single addressEntry
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		entries = []addressEntry{single}
	}
	var vals Values
	for _, e := range entries {
		if s := formatAddress(e); s != "" {
			vals = append(vals, s)
		}
	}
	return vals
}

// formatAddress builds a single display string: street lines (split on the
// embedded line break) followed by "city state zip", joined with semicolons,
// blank components omitted.
func formatAddress(e addressEntry) string {
	var parts []string
	for _, street := range []string{e.StreetAddress, e.StreetAddress2} {
		if street == "" {
			continue
		}
		for _, line := range strings.Split(street, "<br />") {
			if line != "" {
				parts = append(parts, line)
			}
		}
	}
	var csz []string
	for _, f := range []string{e.City, e.State, e.Zip} {
		if f != "" {
			csz = append(csz, f)
		}
	}
	if len(csz) > 0 {
		parts = append(parts, strings.Join(csz, " "))
	}
	return strings.Join(parts, ";")
}

func extractFamily(family []breeze.FamilyMember) Values {
	var vals Values
	for _, m := range family {
		if m.Details == nil {
			continue
		}
		name := displayName(m.Details.FirstName, m.Details.LastName, m.Details.MiddleName, m.Details.NickName)
		if name == "" {
			continue
		}
		if m.RoleName != "" {
			name += " (" + m.RoleName + ")"
		}
		vals = append(vals, name)
	}
	return vals
}

// displayName renders a person's name as "last, first (nick) middle". The
// nickname appears only when present and different from the first name; with
// no last name the leading comma is omitted.
func displayName(first, last, middle, nick string) string {
	if nick != "" && nick != first {
		first += " (" + nick + ")"
	}
	if middle != "" {
		if first != "" {
			first += " "
		}
		first += middle
	}
	full := last
	if first != "" {
		if full != "" {
			full += ", "
		}
		full += first
	}
	return full
}
