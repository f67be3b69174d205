package profile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/graceapps/breezediff/internal/breeze"
)

// FieldDiff records one field whose value sets differ between the reference
// and current snapshots.
type FieldDiff struct {
	Name            string
	OnlyInReference []string
	OnlyInCurrent   []string
}

// DiffEntry is the change report for one person. Only people with at least
// one differing field produce an entry.
type DiffEntry struct {
	PersonName string
	Fields     []FieldDiff
}

// CompareProfiles reports the differences between two snapshots of a roster,
// each paired with the helper for its own catalog version. prevPeople is the
// reference side, curPeople the current side. Field display names come from
// the union of both catalogs, the current catalog winning on id collisions.
func CompareProfiles(prevHelper, curHelper *Helper, prevPeople, curPeople []breeze.Person) []DiffEntry {
	fieldNames := prevHelper.FieldIDToName()
	for id, name := range curHelper.FieldIDToName() {
		fieldNames[id] = name
	}
	refValues := prevHelper.ProcessProfiles(prevPeople)
	curValues := curHelper.ProcessProfiles(curPeople)
	return DiffMerged(MergeOrdered(refValues, curValues), fieldNames)
}

// DiffMerged walks a person-level merge of two normalized rosters and builds
// the change report. fieldNames maps field id to display name; unmapped ids
// appear as-is.
func DiffMerged(merged *orderedmap.OrderedMap[string, MergedValue[*NormalizedProfile]], fieldNames map[string]string) []DiffEntry {
	var report []DiffEntry
	for person := merged.Oldest(); person != nil; person = person.Next() {
		fields := MergeOrdered(person.Value.Right, person.Value.Left)

		var diffs []FieldDiff
		for field := fields.Oldest(); field != nil; field = field.Next() {
			refOnly, curOnly := setDiff(field.Value.Right, field.Value.Left)
			if len(refOnly) == 0 && len(curOnly) == 0 {
				continue
			}
			name := field.Key
			if mapped, ok := fieldNames[field.Key]; ok {
				name = mapped
			}
			diffs = append(diffs, FieldDiff{Name: name, OnlyInReference: refOnly, OnlyInCurrent: curOnly})
		}
		if len(diffs) == 0 {
			continue
		}
		report = append(report, DiffEntry{
			PersonName: personName(person.Value),
			Fields:     diffs,
		})
	}
	return report
}

// setDiff compares two value lists as sets and returns the values exclusive
// to each side, keeping each side's original order (first occurrence wins).
func setDiff(ref, cur Values) (refOnly, curOnly []string) {
	return exclusive(ref, cur), exclusive(cur, ref)
}

func exclusive(vals, other Values) []string {
	otherSet := make(map[string]struct{}, len(other))
	for _, v := range other {
		otherSet[v] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := otherSet[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// personName reads the display name from whichever side has the profile,
// reference first.
func personName(mv MergedValue[*NormalizedProfile]) string {
	for _, p := range []*NormalizedProfile{mv.Right, mv.Left} {
		if p == nil {
			continue
		}
		if vals, ok := p.Get("name"); ok && len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}
