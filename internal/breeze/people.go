package breeze

import "context"

// ListPeopleOptions narrows a roster listing. The zero value returns every
// person with names only; set Details for full profile data. Filter matches
// on profile field values, keyed by field id.
type ListPeopleOptions struct {
	Limit   int
	Offset  int
	Details bool
	Filter  map[string]string
}

// ListPeople lists people from the account's database.
func (c *Client) ListPeople(ctx context.Context, opts ListPeopleOptions) ([]Person, error) {
	p := params{
		"limit":   opts.Limit,
		"offset":  opts.Offset,
		"details": opts.Details,
	}
	if len(opts.Filter) > 0 {
		p["filter_json"] = opts.Filter
	}
	var out []Person
	err := c.get(ctx, endpointPeople, "", p, &out)
	return out, err
}

// PersonDetails retrieves the full record for one person.
func (c *Client) PersonDetails(ctx context.Context, personID string) (Person, error) {
	var out Person
	err := c.get(ctx, endpointPeople, personID, nil, &out)
	return out, err
}

// AddPerson creates a new person. fields carries initial values for any
// profile fields beyond the name; it may be nil.
func (c *Client) AddPerson(ctx context.Context, first, last string, fields []FieldUpdate) (Person, error) {
	p := params{
		"first": first,
		"last":  last,
	}
	if len(fields) > 0 {
		p["fields_json"] = fields
	}
	var out Person
	err := c.get(ctx, endpointPeople, "add", p, &out)
	return out, err
}

// UpdatePerson updates profile field values for an existing person.
func (c *Client) UpdatePerson(ctx context.Context, personID string, fields []FieldUpdate) (Person, error) {
	p := params{
		"person_id":   personID,
		"fields_json": fields,
	}
	var out Person
	err := c.get(ctx, endpointPeople, "update", p, &out)
	return out, err
}

// ProfileFields retrieves the profile field catalog: the ordered list of
// sections, each holding its field definitions.
func (c *Client) ProfileFields(ctx context.Context) ([]Section, error) {
	var out []Section
	err := c.get(ctx, endpointProfileFields, "", nil, &out)
	return out, err
}
