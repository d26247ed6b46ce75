package model

// User is a Messenger sender who has registered an allergy profile.
// ID is the page-scoped sender id delivered by the webhook.
type User struct {
	ID        string   `json:"id"`
	Allergies []string `json:"allergies"`
}

// Clone returns a deep copy so callers never share the store's slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Allergies != nil {
		c.Allergies = append([]string(nil), u.Allergies...)
	}
	return &c
}
