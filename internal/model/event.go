package model

// Event is a gathering created by a host. Guests join it so the host can see
// the union of everyone's allergies.
type Event struct {
	ID     string  `json:"id"`
	HostID string  `json:"hostID"`
	Name   *string `json:"name,omitempty"`
	Page   *string `json:"page,omitempty"`
	// nil until the first guest with allergies joins
	TotalAllergies []string `json:"totalAllergies,omitempty"`
}

// EventField names a host-editable field of an Event.
type EventField string

const (
	EventFieldName EventField = "name"
	EventFieldPage EventField = "page"
)

// IsHost reports whether userID created the event.
func (e *Event) IsHost(userID string) bool {
	return e.HostID == userID
}

// Set assigns value to the named field.
func (e *Event) Set(field EventField, value string) {
	switch field {
	case EventFieldName:
		e.Name = &value
	case EventFieldPage:
		e.Page = &value
	}
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	if e.Name != nil {
		name := *e.Name
		c.Name = &name
	}
	if e.Page != nil {
		page := *e.Page
		c.Page = &page
	}
	if e.TotalAllergies != nil {
		c.TotalAllergies = append([]string(nil), e.TotalAllergies...)
	}
	return &c
}
