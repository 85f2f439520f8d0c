package entities

import (
	"fmt"
	"strings"
	"time"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// CareerType is a Cepheus Engine career.
type CareerType string

const (
	CareerArmy      CareerType = "army"
	CareerMarines   CareerType = "marines"
	CareerNavy      CareerType = "navy"
	CareerScouts    CareerType = "scouts"
	CareerMerchants CareerType = "merchants"
	CareerOther     CareerType = "other"
)

// ItemType classifies equipment.
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemEquipment  ItemType = "equipment"
	ItemConsumable ItemType = "consumable"
	ItemVehicle    ItemType = "vehicle"
	ItemShip       ItemType = "ship"
)

// Skill is a named skill with its level and optional specialty.
type Skill struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Specialty string `json:"specialty,omitempty"`
}

// DisplayName includes the specialty when present.
func (s Skill) DisplayName() string {
	if s.Specialty != "" {
		return fmt.Sprintf("%s (%s)", s.Name, s.Specialty)
	}
	return s.Name
}

// Validate checks the skill level range (-3 untrained through 5).
func (s Skill) Validate() error {
	if s.Name == "" {
		return cerrors.InvalidArgument("skill name is required")
	}
	if s.Level < -3 || s.Level > 5 {
		return cerrors.InvalidArgumentf("skill %s level %d out of range [-3, 5]", s.Name, s.Level)
	}
	return nil
}

// Equipment is a piece of gear, with optional weapon and armor fields.
type Equipment struct {
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Description string   `json:"description,omitempty"`
	Weight      float64  `json:"weight,omitempty"`
	Cost        int      `json:"cost,omitempty"`
	TechLevel   int      `json:"tech_level,omitempty"`
	Quantity    int      `json:"quantity"`

	// Weapon fields
	Damage      string `json:"damage,omitempty"`
	RangeShort  int    `json:"range_short,omitempty"`
	RangeMedium int    `json:"range_medium,omitempty"`
	RangeLong   int    `json:"range_long,omitempty"`

	// Armor fields
	Protection int `json:"protection,omitempty"`
}

// Validate checks basic equipment constraints.
func (e Equipment) Validate() error {
	if e.Name == "" {
		return cerrors.InvalidArgument("equipment name is required")
	}
	if e.Quantity < 1 {
		return cerrors.InvalidArgumentf("equipment %s quantity must be at least 1", e.Name)
	}
	if e.TechLevel < 0 || e.TechLevel > 15 {
		return cerrors.InvalidArgumentf("equipment %s tech level %d out of range [0, 15]", e.Name, e.TechLevel)
	}
	return nil
}

// Character is a player character or detailed NPC.
type Character struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Age         int         `json:"age,omitempty"`
	Homeworld   string      `json:"homeworld,omitempty"`
	Career      CareerType  `json:"career,omitempty"`
	TermsServed int         `json:"terms_served"`
	Attributes  *Attributes `json:"attributes"`
	Skills      []Skill     `json:"skills,omitempty"`
	Equipment   []Equipment `json:"equipment,omitempty"`
	Credits     int         `json:"credits"`
	Benefits    []string    `json:"benefits,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Notes       string      `json:"notes,omitempty"`
}

// SkillLevel returns the level of a named skill, or -3 (untrained) when
// the character does not have it. specialty narrows the match when set.
func (c *Character) SkillLevel(name, specialty string) int {
	for _, s := range c.Skills {
		if !strings.EqualFold(s.Name, name) {
			continue
		}
		if specialty == "" || strings.EqualFold(s.Specialty, specialty) {
			return s.Level
		}
	}
	return -3
}

// AddSkill adds or upgrades a skill; an existing entry keeps the higher
// of the two levels.
func (c *Character) AddSkill(name string, level int, specialty string) {
	for i, s := range c.Skills {
		if strings.EqualFold(s.Name, name) && s.Specialty == specialty {
			if level > s.Level {
				c.Skills[i].Level = level
			}
			return
		}
	}
	c.Skills = append(c.Skills, Skill{Name: name, Level: level, Specialty: specialty})
}

// AddEquipment adds gear, merging quantities for identical items.
func (c *Character) AddEquipment(eq Equipment) {
	for i, existing := range c.Equipment {
		if existing.Name == eq.Name && existing.Type == eq.Type && existing.Description == eq.Description {
			c.Equipment[i].Quantity += eq.Quantity
			return
		}
	}
	c.Equipment = append(c.Equipment, eq)
}

// Validate checks the character and everything it owns.
func (c *Character) Validate() error {
	if c.Name == "" {
		return cerrors.InvalidArgument("character name is required")
	}
	if c.Age != 0 && c.Age < 18 {
		return cerrors.InvalidArgumentf("character age %d is below the minimum of 18", c.Age)
	}
	if c.TermsServed < 0 {
		return cerrors.InvalidArgument("terms served cannot be negative")
	}
	if c.Credits < 0 {
		return cerrors.InvalidArgument("credits cannot be negative")
	}
	if c.Attributes == nil {
		return cerrors.InvalidArgument("character attributes are required")
	}
	if err := c.Attributes.Validate(); err != nil {
		return err
	}
	for _, s := range c.Skills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for _, eq := range c.Equipment {
		if err := eq.Validate(); err != nil {
			return err
		}
	}
	return nil
}
