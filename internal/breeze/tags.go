package breeze

import "context"

// ListTags lists tags, optionally only those in the given folder.
func (c *Client) ListTags(ctx context.Context, folderID string) ([]Tag, error) {
	var p params
	if folderID != "" {
		p = params{"folder_id": folderID}
	}
	var out []Tag
	err := c.get(ctx, endpointTags, "list_tags", p, &out)
	return out, err
}

// ListTagFolders lists the tag folder tree.
func (c *Client) ListTagFolders(ctx context.Context) ([]TagFolder, error) {
	var out []TagFolder
	err := c.get(ctx, endpointTags, "list_folders", nil, &out)
	return out, err
}

// AssignTag adds a tag to a person.
func (c *Client) AssignTag(ctx context.Context, personID, tagID string) (bool, error) {
	p := params{
		"person_id": personID,
		"tag_id":    tagID,
	}
	var out bool
	err := c.get(ctx, endpointTags, "assign", p, &out)
	return out, err
}

// UnassignTag removes a tag from a person.
func (c *Client) UnassignTag(ctx context.Context, personID, tagID string) (bool, error) {
	p := params{
		"person_id": personID,
		"tag_id":    tagID,
	}
	var out bool
	err := c.get(ctx, endpointTags, "unassign", p, &out)
	return out, err
}

// ListFormEntries returns the submissions for a form. With details set the
// full response values are included rather than just names.
func (c *Client) ListFormEntries(ctx context.Context, formID string, details bool) ([]FormEntry, error) {
	p := params{
		"form_id": formID,
		"details": details,
	}
	var out []FormEntry
	err := c.get(ctx, endpointForms, "list_form_entries", p, &out)
	return out, err
}
