package npc

import "github.com/lgw4/cetools/internal/entities"

// profile holds the generation tables for one NPC type.
type profile struct {
	motivations   []string
	personalities []string
	skills        []string
}

var profiles = map[entities.NPCType]profile{
	entities.NPCPatron: {
		motivations:   []string{"wealth", "power", "revenge", "discovery", "duty"},
		personalities: []string{"calculating", "charming", "secretive", "impatient", "generous"},
		skills:        []string{"Admin", "Broker", "Liaison", "Streetwise", "Leadership"},
	},
	entities.NPCEnemy: {
		motivations:   []string{"revenge", "greed", "ideology", "jealousy", "survival"},
		personalities: []string{"ruthless", "cunning", "volatile", "cold", "arrogant"},
		skills:        []string{"Gun Combat", "Melee Combat", "Tactics", "Streetwise", "Recon"},
	},
	entities.NPCAlly: {
		motivations:   []string{"loyalty", "friendship", "shared cause", "debt of honor", "adventure"},
		personalities: []string{"steadfast", "cheerful", "pragmatic", "cautious", "bold"},
		skills:        []string{"Piloting", "Mechanics", "Medicine", "Gun Combat", "Comms"},
	},
	entities.NPCContact: {
		motivations:   []string{"profit", "information", "reputation", "curiosity", "favors owed"},
		personalities: []string{"talkative", "nervous", "shrewd", "discreet", "jovial"},
		skills:        []string{"Streetwise", "Carousing", "Admin", "Broker", "Liaison"},
	},
	entities.NPCNeutral: {
		motivations:   []string{"routine", "family", "ambition", "comfort", "curiosity"},
		personalities: []string{"indifferent", "friendly", "wary", "busy", "curious"},
		skills:        []string{"Admin", "Vehicle", "Steward", "Mechanics", "Comms"},
	},
}

var patronTypes = []string{
	"noble", "corporate executive", "crime boss", "government official",
	"ship owner", "scholar", "military officer", "merchant prince",
}

var missionTypes = []string{
	"courier run", "salvage operation", "escort duty", "retrieval",
	"survey expedition", "smuggling run", "bodyguard work", "investigation",
}
