package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgw4/cetools/internal/entities"
)

func testAttributes(t *testing.T) *entities.Attributes {
	t.Helper()
	attrs, err := entities.NewAttributes(7, 8, 9, 10, 11, 12)
	require.NoError(t, err)
	return attrs
}

func TestCharacter_SkillLevel(t *testing.T) {
	char := &entities.Character{
		Name:       "Jamison",
		Attributes: testAttributes(t),
		Skills: []entities.Skill{
			{Name: "Piloting", Level: 2},
			{Name: "Gunnery", Level: 1, Specialty: "Turrets"},
		},
	}

	assert.Equal(t, 2, char.SkillLevel("piloting", ""))
	assert.Equal(t, 1, char.SkillLevel("Gunnery", "turrets"))
	assert.Equal(t, -3, char.SkillLevel("Gunnery", "Missiles"))
	assert.Equal(t, -3, char.SkillLevel("Streetwise", ""))
}

func TestCharacter_AddSkill(t *testing.T) {
	char := &entities.Character{Name: "Jamison", Attributes: testAttributes(t)}

	char.AddSkill("Mechanics", 1, "")
	char.AddSkill("mechanics", 0, "")
	assert.Len(t, char.Skills, 1)
	assert.Equal(t, 1, char.SkillLevel("Mechanics", ""), "existing skill keeps the higher level")

	char.AddSkill("Mechanics", 3, "")
	assert.Equal(t, 3, char.SkillLevel("Mechanics", ""))

	char.AddSkill("Gunnery", 1, "Turrets")
	char.AddSkill("Gunnery", 2, "Missiles")
	assert.Len(t, char.Skills, 3, "different specialties are distinct skills")
}

func TestCharacter_AddEquipment(t *testing.T) {
	char := &entities.Character{Name: "Jamison", Attributes: testAttributes(t)}

	char.AddEquipment(entities.Equipment{Name: "Standard Ration", Type: entities.ItemConsumable, Quantity: 5})
	char.AddEquipment(entities.Equipment{Name: "Standard Ration", Type: entities.ItemConsumable, Quantity: 3})
	require.Len(t, char.Equipment, 1)
	assert.Equal(t, 8, char.Equipment[0].Quantity)

	char.AddEquipment(entities.Equipment{Name: "Pistol", Type: entities.ItemWeapon, Quantity: 1})
	assert.Len(t, char.Equipment, 2)
}

func TestCharacter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entities.Character)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *entities.Character) {}},
		{name: "missing name", mutate: func(c *entities.Character) { c.Name = "" }, wantErr: true},
		{name: "underage", mutate: func(c *entities.Character) { c.Age = 12 }, wantErr: true},
		{name: "age unset is fine", mutate: func(c *entities.Character) { c.Age = 0 }},
		{name: "negative credits", mutate: func(c *entities.Character) { c.Credits = -1 }, wantErr: true},
		{name: "nil attributes", mutate: func(c *entities.Character) { c.Attributes = nil }, wantErr: true},
		{name: "skill level too high", mutate: func(c *entities.Character) {
			c.Skills = []entities.Skill{{Name: "Piloting", Level: 6}}
		}, wantErr: true},
		{name: "zero quantity equipment", mutate: func(c *entities.Character) {
			c.Equipment = []entities.Equipment{{Name: "Pistol", Type: entities.ItemWeapon, Quantity: 0}}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			char := &entities.Character{
				Name:       "Jamison",
				Age:        34,
				Attributes: testAttributes(t),
				Credits:    100,
			}
			tt.mutate(char)

			err := char.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSkill_DisplayName(t *testing.T) {
	assert.Equal(t, "Piloting", entities.Skill{Name: "Piloting"}.DisplayName())
	assert.Equal(t, "Gunnery (Turrets)", entities.Skill{Name: "Gunnery", Specialty: "Turrets"}.DisplayName())
}

func TestNPC_Validate(t *testing.T) {
	npc := &entities.NPC{Name: "Dalia", Type: entities.NPCPatron, ReactionModifier: 2}
	assert.NoError(t, npc.Validate())

	npc.ReactionModifier = 7
	assert.Error(t, npc.Validate())

	npc.ReactionModifier = 0
	npc.Type = "villain"
	assert.Error(t, npc.Validate())

	npc.Type = entities.NPCNeutral
	npc.Name = ""
	assert.Error(t, npc.Validate())
}

func TestNPC_SkillLevel(t *testing.T) {
	npc := &entities.NPC{
		Name: "Dalia",
		Type: entities.NPCContact,
		NotableSkills: []entities.Skill{
			{Name: "Streetwise", Level: 2},
		},
	}

	assert.Equal(t, 2, npc.SkillLevel("streetwise"))
	assert.Equal(t, -3, npc.SkillLevel("Piloting"))
}

func TestParty(t *testing.T) {
	party := &entities.Party{Name: "Free Traders"}
	assert.Equal(t, 0, party.Size())
	assert.Equal(t, 0.0, party.AverageLevel())

	party.Characters = []*entities.Character{
		{Name: "A", TermsServed: 2, Attributes: testAttributes(t)},
		{Name: "B", TermsServed: 4, Attributes: testAttributes(t)},
	}
	assert.Equal(t, 2, party.Size())
	assert.Equal(t, 3.0, party.AverageLevel())

	assert.NoError(t, party.Validate())

	party.Characters[1].Name = ""
	assert.Error(t, party.Validate())

	party.Characters[1].Name = "B"
	party.Name = ""
	assert.Error(t, party.Validate())
}
