package domain

// Contact holds the fields collected by the lead-capture flow.
// Email may be empty: an invalid address is dropped rather than blocking.
type Contact struct {
	Name         string
	Phone        string
	Email        string
	Organization string
	Preference   string
}

// MissingFields returns the required contact fields that are empty, in
// collection order. Email and preference are optional.
func (c Contact) MissingFields() []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	if c.Organization == "" {
		missing = append(missing, "organization")
	}
	return missing
}

// Lead packages contact details with the latest calculation for hand-off
// to the CRM. It is assembled at lead-flow completion and not persisted.
type Lead struct {
	Contact    Contact
	Submission *Submission
}
