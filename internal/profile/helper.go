package profile

import (
	"log/slog"
	"sync/atomic"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/singleflight"

	"github.com/graceapps/breezediff/internal/breeze"
)

// NormalizedProfile maps field id (plus the synthetic ids "name" and
// "family") to that field's normalized values, in catalog order. It never
// holds an empty value for a catalog field.
type NormalizedProfile = orderedmap.OrderedMap[string, Values]

// Roster maps person id to normalized profile, in roster order.
type Roster = orderedmap.OrderedMap[string, *NormalizedProfile]

// fieldEntry is one extractable field in the catalog index.
type fieldEntry struct {
	name string // qualified display name
	kind FieldKind
}

// catalogIndex is the lookup state derived from a field catalog: the ordered
// extractable fields plus FieldSpec lookups by id and by qualified name.
type catalogIndex struct {
	fields   *orderedmap.OrderedMap[string, fieldEntry]
	byID     map[string]breeze.FieldSpec
	byName   map[string]breeze.FieldSpec
	idToName map[string]string
}

// Helper normalizes profiles against one field catalog snapshot. The catalog
// index is built on first use and cached for the Helper's lifetime; the build
// is guarded so concurrent callers observe a single build.
type Helper struct {
	catalog []breeze.Section
	logger  *slog.Logger

	group singleflight.Group
	idx   atomic.Pointer[catalogIndex]
}

// HelperOption customizes a Helper.
type HelperOption func(*Helper)

// WithUnknownFieldLogger reports catalog fields whose type has no extractor
// at warn level instead of dropping them silently.
func WithUnknownFieldLogger(l *slog.Logger) HelperOption {
	return func(h *Helper) { h.logger = l }
}

// NewHelper creates a Helper for the given profile field catalog, as returned
// by the breeze client's ProfileFields call.
func NewHelper(catalog []breeze.Section, opts ...HelperOption) *Helper {
	h := &Helper{catalog: catalog}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Helper) index() *catalogIndex {
	if idx := h.idx.Load(); idx != nil {
		return idx
	}
	v, _, _ := h.group.Do("index", func() (any, error) {
		if idx := h.idx.Load(); idx != nil {
			return idx, nil
		}
		idx := h.buildIndex()
		h.idx.Store(idx)
		return idx, nil
	})
	return v.(*catalogIndex)
}

func (h *Helper) buildIndex() *catalogIndex {
	idx := &catalogIndex{
		fields:   orderedmap.New[string, fieldEntry](),
		byID:     make(map[string]breeze.FieldSpec),
		byName:   make(map[string]breeze.FieldSpec),
		idToName: make(map[string]string),
	}

	// The synthetic name field always runs first, regardless of catalog.
	idx.fields.Set("name", fieldEntry{name: "Name", kind: kindName})

	for _, section := range h.catalog {
		for _, spec := range section.Fields {
			qualified := section.Name + ":" + spec.Name
			idx.byID[spec.FieldID] = spec
			idx.byName[qualified] = spec

			kind := kindOf(spec.FieldType)
			if kind == KindNone {
				if h.logger != nil {
					h.logger.Warn("no extractor for field type, skipping",
						"field_type", spec.FieldType, "field", qualified)
				}
				continue
			}
			idx.fields.Set(spec.FieldID, fieldEntry{name: qualified, kind: kind})
		}
	}

	idx.fields.Set("family", fieldEntry{name: "family", kind: kindFamily})

	for pair := idx.fields.Oldest(); pair != nil; pair = pair.Next() {
		idx.idToName[pair.Key] = pair.Value.name
	}
	return idx
}

// ProfileFields returns the raw catalog the Helper was built with.
func (h *Helper) ProfileFields() []breeze.Section {
	h.index()
	return h.catalog
}

// FieldSpecByID looks up a field definition by field id.
func (h *Helper) FieldSpecByID(fieldID string) (breeze.FieldSpec, bool) {
	spec, ok := h.index().byID[fieldID]
	return spec, ok
}

// FieldSpecByName looks up a field definition by its qualified
// "section:name" form.
func (h *Helper) FieldSpecByName(qualified string) (breeze.FieldSpec, bool) {
	spec, ok := h.index().byName[qualified]
	return spec, ok
}

// FieldValueFromName extracts a person's normalized value for the field with
// the given qualified name. It returns nil when the field is unknown, has no
// extractor, or has no value.
func (h *Helper) FieldValueFromName(qualified string, p breeze.Person) Values {
	spec, ok := h.index().byName[qualified]
	if !ok {
		return nil
	}
	kind := kindOf(spec.FieldType)
	if kind == KindNone {
		return nil
	}
	return kind.extract(p.Details[spec.FieldID])
}

// FieldIDToName returns a copy of the field id to qualified name mapping,
// including the synthetic "name" and "family" entries.
func (h *Helper) FieldIDToName() map[string]string {
	src := h.index().idToName
	out := make(map[string]string, len(src))
	for id, name := range src {
		out[id] = name
	}
	return out
}

// ProcessMemberProfile extracts all non-empty normalized values from one
// profile. The person's display name is always present under "name".
func (h *Helper) ProcessMemberProfile(p breeze.Person) *NormalizedProfile {
	idx := h.index()
	out := orderedmap.New[string, Values]()
	for pair := idx.fields.Oldest(); pair != nil; pair = pair.Next() {
		var vals Values
		switch pair.Value.kind {
		case kindName:
			out.Set("name", Values{displayName(p.FirstName, p.LastName, p.MiddleName, p.NickName)})
			continue
		case kindFamily:
			vals = extractFamily(p.Family)
		default:
			raw, ok := p.Details[pair.Key]
			if !ok {
				continue
			}
			vals = pair.Value.kind.extract(raw)
		}
		if len(vals) > 0 {
			out.Set(pair.Key, vals)
		}
	}
	return out
}

// ProcessProfiles normalizes a whole roster, keyed by person id in roster
// order.
func (h *Helper) ProcessProfiles(people []breeze.Person) *Roster {
	out := orderedmap.New[string, *NormalizedProfile]()
	for _, p := range people {
		out.Set(p.ID, h.ProcessMemberProfile(p))
	}
	return out
}
