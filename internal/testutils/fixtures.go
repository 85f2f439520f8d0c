package testutils

import (
	"time"

	"github.com/lgw4/cetools/internal/entities"
)

// CreateTestAttributes returns a fixed attribute block for tests.
func CreateTestAttributes() *entities.Attributes {
	attrs, err := entities.NewAttributes(7, 8, 9, 10, 11, 12)
	if err != nil {
		panic(err)
	}
	return attrs
}

// CreateTestCharacter creates a fully formed test character
func CreateTestCharacter(id, name string) *entities.Character {
	return &entities.Character{
		ID:          id,
		Name:        name,
		Age:         34,
		Homeworld:   "Regina",
		Career:      entities.CareerScouts,
		TermsServed: 3,
		Attributes:  CreateTestAttributes(),
		Skills: []entities.Skill{
			{Name: "Piloting", Level: 2},
			{Name: "Gunnery", Level: 1, Specialty: "Turrets"},
		},
		Equipment: []entities.Equipment{
			{Name: "Autopistol", Type: entities.ItemWeapon, Quantity: 1, Damage: "3d6-3", TechLevel: 6},
		},
		Credits:   1000,
		Benefits:  []string{"Ship Share"},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// CreateTestNPC creates a fully formed test NPC
func CreateTestNPC(id, name string, npcType entities.NPCType) *entities.NPC {
	return &entities.NPC{
		ID:          id,
		Name:        name,
		Type:        npcType,
		Attributes:  CreateTestAttributes(),
		Personality: "gruff",
		Motivation:  "wealth",
		NotableSkills: []entities.Skill{
			{Name: "Streetwise", Level: 1},
		},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
