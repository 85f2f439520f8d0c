package character

import (
	"sort"

	"github.com/lgw4/cetools/internal/entities"
)

// Template is a career package: the skills, gear, and starting credit
// range a generated character draws from.
type Template struct {
	Name    string
	Career  entities.CareerType
	Skills  []entities.Skill
	Gear    []entities.Equipment
	Credits CreditRange
}

// CreditRange bounds starting credits, inclusive on both ends.
type CreditRange struct {
	Min int
	Max int
}

// DefaultTemplate is used when no template is named.
const DefaultTemplate = "traveller"

var templates = map[string]Template{
	"traveller": {
		Name:   "traveller",
		Career: entities.CareerOther,
		Skills: []entities.Skill{
			{Name: "Streetwise", Level: 1},
			{Name: "Carousing", Level: 0},
			{Name: "Vehicle", Level: 0, Specialty: "Wheeled"},
		},
		Gear: []entities.Equipment{
			{Name: "Autopistol", Type: entities.ItemWeapon, Quantity: 1, Damage: "3d6-3", TechLevel: 6, Cost: 300},
			{Name: "Comm", Type: entities.ItemEquipment, Quantity: 1, TechLevel: 9, Cost: 250},
		},
		Credits: CreditRange{Min: 500, Max: 5000},
	},
	"soldier": {
		Name:   "soldier",
		Career: entities.CareerArmy,
		Skills: []entities.Skill{
			{Name: "Gun Combat", Level: 1, Specialty: "Slug Rifle"},
			{Name: "Melee Combat", Level: 0},
			{Name: "Tactics", Level: 0},
			{Name: "Recon", Level: 0},
		},
		Gear: []entities.Equipment{
			{Name: "Assault Rifle", Type: entities.ItemWeapon, Quantity: 1, Damage: "3d6", TechLevel: 7, Cost: 500},
			{Name: "Flak Jacket", Type: entities.ItemArmor, Quantity: 1, Protection: 4, TechLevel: 7, Cost: 100},
			{Name: "Standard Ration", Type: entities.ItemConsumable, Quantity: 7, Cost: 10},
		},
		Credits: CreditRange{Min: 1000, Max: 10000},
	},
	"scout": {
		Name:   "scout",
		Career: entities.CareerScouts,
		Skills: []entities.Skill{
			{Name: "Piloting", Level: 1},
			{Name: "Navigation", Level: 0},
			{Name: "Survival", Level: 1},
			{Name: "Comms", Level: 0},
		},
		Gear: []entities.Equipment{
			{Name: "Snub Pistol", Type: entities.ItemWeapon, Quantity: 1, Damage: "3d6-3", TechLevel: 8, Cost: 150},
			{Name: "Vacc Suit", Type: entities.ItemArmor, Quantity: 1, Protection: 2, TechLevel: 8, Cost: 9000},
			{Name: "Survival Kit", Type: entities.ItemEquipment, Quantity: 1, TechLevel: 7, Cost: 500},
		},
		Credits: CreditRange{Min: 2000, Max: 20000},
	},
	"merchant": {
		Name:   "merchant",
		Career: entities.CareerMerchants,
		Skills: []entities.Skill{
			{Name: "Broker", Level: 1},
			{Name: "Admin", Level: 0},
			{Name: "Steward", Level: 0},
			{Name: "Vehicle", Level: 0, Specialty: "Grav"},
		},
		Gear: []entities.Equipment{
			{Name: "Body Pistol", Type: entities.ItemWeapon, Quantity: 1, Damage: "2d6", TechLevel: 8, Cost: 500},
			{Name: "Hand Computer", Type: entities.ItemEquipment, Quantity: 1, TechLevel: 9, Cost: 1000},
		},
		Credits: CreditRange{Min: 5000, Max: 50000},
	},
}

// GetTemplate looks up a career template by name.
func GetTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// TemplateNames lists the available template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
