package entities

import (
	"strings"
	"time"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// NPCType classifies how an NPC relates to the party.
type NPCType string

const (
	NPCPatron  NPCType = "patron"
	NPCEnemy   NPCType = "enemy"
	NPCAlly    NPCType = "ally"
	NPCContact NPCType = "contact"
	NPCNeutral NPCType = "neutral"
)

// NPCTypes lists the supported NPC types.
var NPCTypes = []NPCType{NPCPatron, NPCEnemy, NPCAlly, NPCContact, NPCNeutral}

// NPC is a non-player character with simplified stats.
type NPC struct {
	ID            string      `json:"id,omitempty"`
	Name          string      `json:"name"`
	Type          NPCType     `json:"type"`
	Description   string      `json:"description,omitempty"`
	Attributes    *Attributes `json:"attributes,omitempty"`
	NotableSkills []Skill     `json:"notable_skills,omitempty"`
	Equipment     []Equipment `json:"equipment,omitempty"`
	Motivation    string      `json:"motivation,omitempty"`
	Personality   string      `json:"personality,omitempty"`

	// ReactionModifier adjusts reaction rolls, in [-6, 6]
	ReactionModifier int `json:"reaction_modifier"`

	// Patron fields
	PatronType   string   `json:"patron_type,omitempty"`
	MissionTypes []string `json:"mission_types,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	Notes     string    `json:"notes,omitempty"`
}

// SkillLevel returns the level of a notable skill, or -3 when unlisted.
func (n *NPC) SkillLevel(name string) int {
	for _, s := range n.NotableSkills {
		if strings.EqualFold(s.Name, name) {
			return s.Level
		}
	}
	return -3
}

// Validate checks the NPC's fields.
func (n *NPC) Validate() error {
	if n.Name == "" {
		return cerrors.InvalidArgument("npc name is required")
	}
	if n.ReactionModifier < -6 || n.ReactionModifier > 6 {
		return cerrors.InvalidArgumentf("reaction modifier %d out of range [-6, 6]", n.ReactionModifier)
	}

	valid := false
	for _, t := range NPCTypes {
		if n.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		return cerrors.InvalidArgumentf("unknown npc type: %s", n.Type)
	}

	if n.Attributes != nil {
		if err := n.Attributes.Validate(); err != nil {
			return err
		}
	}
	for _, s := range n.NotableSkills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
