// Package entities holds the Cepheus Engine data models: characters,
// NPCs, parties, and their attributes, skills, and equipment.
package entities

import (
	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/pseudohex"
)

// AttributeType names one of the six Cepheus Engine attributes.
type AttributeType string

const (
	AttributeStrength       AttributeType = "strength"
	AttributeDexterity      AttributeType = "dexterity"
	AttributeEndurance      AttributeType = "endurance"
	AttributeIntelligence   AttributeType = "intelligence"
	AttributeEducation      AttributeType = "education"
	AttributeSocialStanding AttributeType = "social_standing"
)

// AttributeTypes lists the attributes in their canonical sheet order.
var AttributeTypes = []AttributeType{
	AttributeStrength,
	AttributeDexterity,
	AttributeEndurance,
	AttributeIntelligence,
	AttributeEducation,
	AttributeSocialStanding,
}

// Attributes holds the six attribute scores in pseudo-hex notation.
type Attributes struct {
	Strength       string `json:"strength"`
	Dexterity      string `json:"dexterity"`
	Endurance      string `json:"endurance"`
	Intelligence   string `json:"intelligence"`
	Education      string `json:"education"`
	SocialStanding string `json:"social_standing"`
}

// NewAttributes builds an Attributes set from decimal scores, normalizing
// each to pseudo-hex.
func NewAttributes(str, dex, end, intel, edu, soc int) (*Attributes, error) {
	a := &Attributes{}

	values := map[AttributeType]int{
		AttributeStrength:       str,
		AttributeDexterity:      dex,
		AttributeEndurance:      end,
		AttributeIntelligence:   intel,
		AttributeEducation:      edu,
		AttributeSocialStanding: soc,
	}

	for attr, v := range values {
		ph, err := pseudohex.FromInt(v)
		if err != nil {
			return nil, cerrors.Wrapf(err, "invalid %s score", attr)
		}
		a.set(attr, ph)
	}

	return a, nil
}

func (a *Attributes) set(attr AttributeType, value string) {
	switch attr {
	case AttributeStrength:
		a.Strength = value
	case AttributeDexterity:
		a.Dexterity = value
	case AttributeEndurance:
		a.Endurance = value
	case AttributeIntelligence:
		a.Intelligence = value
	case AttributeEducation:
		a.Education = value
	case AttributeSocialStanding:
		a.SocialStanding = value
	}
}

// Get returns the pseudo-hex value of an attribute.
func (a *Attributes) Get(attr AttributeType) string {
	switch attr {
	case AttributeStrength:
		return a.Strength
	case AttributeDexterity:
		return a.Dexterity
	case AttributeEndurance:
		return a.Endurance
	case AttributeIntelligence:
		return a.Intelligence
	case AttributeEducation:
		return a.Education
	case AttributeSocialStanding:
		return a.SocialStanding
	default:
		return ""
	}
}

// Value returns the decimal score of an attribute.
func (a *Attributes) Value(attr AttributeType) (int, error) {
	return pseudohex.ToInt(a.Get(attr))
}

// Modifier returns the DM (dice modifier) band for an attribute score.
func (a *Attributes) Modifier(attr AttributeType) (int, error) {
	value, err := a.Value(attr)
	if err != nil {
		return 0, err
	}

	switch {
	case value <= 2:
		return -2, nil
	case value <= 5:
		return -1, nil
	case value <= 8:
		return 0, nil
	case value <= 11:
		return 1, nil
	case value <= 14:
		return 2, nil
	default:
		return 3, nil
	}
}

// Normalize rewrites every attribute into canonical pseudo-hex, accepting
// decimal, 0x-prefixed hex, or pseudo-hex input.
func (a *Attributes) Normalize() error {
	for _, attr := range AttributeTypes {
		normalized, err := pseudohex.Normalize(a.Get(attr))
		if err != nil {
			return cerrors.Wrapf(err, "invalid %s score", attr)
		}
		a.set(attr, normalized)
	}
	return nil
}

// Validate checks that every attribute is valid pseudo-hex.
func (a *Attributes) Validate() error {
	for _, attr := range AttributeTypes {
		if !pseudohex.IsValid(a.Get(attr)) {
			return cerrors.InvalidArgumentf("attribute %s has invalid value %q", attr, a.Get(attr))
		}
	}
	return nil
}
