package resource

// StatusActive is the status every record gets on creation.
const StatusActive = "active"

// Record is a single stored resource.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Status is free text; only "active" has a meaning, as the create default.
	Status string `json:"status"`
}

// Fields are the caller-controlled parts of a Record.
type Fields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Fields returns the caller-controlled parts of r.
func (r Record) Fields() Fields {
	return Fields{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
	}
}

func (f Fields) withID(id string) Record {
	return Record{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Status:      f.Status,
	}
}

// DefaultSeed returns the records a new store starts with.
func DefaultSeed() []Record {
	return []Record{
		{ID: "1", Name: "Example 1", Description: "First example", Status: StatusActive},
		{ID: "2", Name: "Example 2", Description: "Second example", Status: StatusActive},
	}
}
