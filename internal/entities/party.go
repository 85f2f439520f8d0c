package entities

import (
	"time"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// Party is a group of characters, used for encounter balancing.
type Party struct {
	Name       string       `json:"name"`
	Characters []*Character `json:"characters"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Size returns the number of characters in the party.
func (p *Party) Size() int {
	return len(p.Characters)
}

// AverageLevel is the mean number of terms served across the party, a
// rough experience measure for balancing.
func (p *Party) AverageLevel() float64 {
	if len(p.Characters) == 0 {
		return 0
	}

	total := 0
	for _, c := range p.Characters {
		total += c.TermsServed
	}
	return float64(total) / float64(len(p.Characters))
}

// Validate checks the party and its members.
func (p *Party) Validate() error {
	if p.Name == "" {
		return cerrors.InvalidArgument("party name is required")
	}
	for _, c := range p.Characters {
		if err := c.Validate(); err != nil {
			return cerrors.Wrapf(err, "invalid party member %q", c.Name)
		}
	}
	return nil
}
