package breeze

import "context"

// ListCalendars returns the account's calendars.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	var out []Calendar
	err := c.get(ctx, endpointEvents, "calendars/list", nil, &out)
	return out, err
}

// ListEventsOptions bounds an event listing. Dates are YYYY-MM-DD; empty
// values default server-side to the current month.
type ListEventsOptions struct {
	Start string
	End   string
}

// ListEvents retrieves events in the given date range.
func (c *Client) ListEvents(ctx context.Context, opts ListEventsOptions) ([]Event, error) {
	p := params{
		"start": opts.Start,
		"end":   opts.End,
	}
	var out []Event
	err := c.get(ctx, endpointEvents, "", p, &out)
	return out, err
}

// Event retrieves a single event instance.
func (c *Client) Event(ctx context.Context, instanceID string) (Event, error) {
	var out Event
	err := c.get(ctx, endpointEvents, "list_event", params{"instance_id": instanceID}, &out)
	return out, err
}

// AddEventRequest describes a new event. StartsOn and EndsOn are epoch
// seconds. EventID links the instance into an existing series.
type AddEventRequest struct {
	Name        string
	StartsOn    int64
	EndsOn      int64
	AllDay      bool
	Description string
	CategoryID  string
	EventID     string
}

// AddEvent creates an event.
func (c *Client) AddEvent(ctx context.Context, req AddEventRequest) (Event, error) {
	p := params{
		"name":        req.Name,
		"starts_on":   req.StartsOn,
		"ends_on":     req.EndsOn,
		"all_day":     req.AllDay,
		"description": req.Description,
		"category_id": req.CategoryID,
		"event_id":    req.EventID,
	}
	var out Event
	err := c.get(ctx, endpointEvents, "add", p, &out)
	return out, err
}

// CheckIn records event attendance for a person.
func (c *Client) CheckIn(ctx context.Context, personID, instanceID string) (bool, error) {
	return c.attendanceAdd(ctx, personID, instanceID, "in")
}

// CheckOut records a check-out for a person. Unlike DeleteAttendance this
// adds a record (including a check-in when none exists yet).
func (c *Client) CheckOut(ctx context.Context, personID, instanceID string) (bool, error) {
	return c.attendanceAdd(ctx, personID, instanceID, "out")
}

func (c *Client) attendanceAdd(ctx context.Context, personID, instanceID, direction string) (bool, error) {
	p := params{
		"person_id":   personID,
		"instance_id": instanceID,
		"direction":   direction,
	}
	var out bool
	err := c.get(ctx, endpointEvents, "attendance/add", p, &out)
	return out, err
}

// DeleteAttendance removes every attendance record a person has for an event.
func (c *Client) DeleteAttendance(ctx context.Context, personID, instanceID string) (bool, error) {
	p := params{
		"person_id":   personID,
		"instance_id": instanceID,
	}
	var out bool
	err := c.get(ctx, endpointEvents, "attendance/delete", p, &out)
	return out, err
}

// ListAttendance lists who attended an event.
func (c *Client) ListAttendance(ctx context.Context, instanceID string, details bool) ([]Person, error) {
	p := params{"instance_id": instanceID}
	if details {
		p["details"] = "true"
	}
	var out []Person
	err := c.get(ctx, endpointEvents, "attendance/list", p, &out)
	return out, err
}

// ListEligiblePeople lists people eligible to attend an event.
func (c *Client) ListEligiblePeople(ctx context.Context, instanceID string) ([]Person, error) {
	var out []Person
	err := c.get(ctx, endpointEvents, "attendance/eligible", params{"instance_id": instanceID}, &out)
	return out, err
}
