package league

import "fmt"

const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

// League is a competition container players join; membership is
// many-to-many and tracked by the repository.
type League struct {
	ID     string
	Name   string
	Season string
	Status string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Status != StatusActive && l.Status != StatusEnded {
		return fmt.Errorf("league status %q is not valid", l.Status)
	}

	return nil
}
