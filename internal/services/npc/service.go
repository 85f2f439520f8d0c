package npc

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lgw4/cetools/internal/dice"
	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/uuid"
)

// RollerFactory builds a dice roller for one generation run. A nil seed
// means a random roller.
type RollerFactory func(seed *int64) dice.Roller

// Service defines the NPC generation service interface
type Service interface {
	// GenerateNPC creates a single NPC
	GenerateNPC(ctx context.Context, input *GenerateInput) (*entities.NPC, error)

	// GenerateBatch creates several NPCs concurrently
	GenerateBatch(ctx context.Context, input *BatchInput) ([]*entities.NPC, error)
}

// GenerateInput contains data for generating an NPC
type GenerateInput struct {
	Name string
	Type entities.NPCType // Optional, defaults to neutral

	// Seed makes generation reproducible
	Seed *int64
}

// BatchInput contains data for generating a batch of NPCs
type BatchInput struct {
	Count int
	Type  entities.NPCType // Optional, defaults to neutral

	// NamePrefix names batch members "<prefix> 1", "<prefix> 2", ...
	NamePrefix string

	// Seed is the base seed: NPC i is generated with seed+i, so a
	// seeded batch is reproducible regardless of goroutine scheduling
	Seed *int64
}

// service implements the Service interface
type service struct {
	uuidGenerator uuid.Generator
	newRoller     RollerFactory
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	UUIDGenerator uuid.Generator // Optional, will use default if nil
	RollerFactory RollerFactory  // Optional, will use the dice engine if nil
}

// NewService creates a new NPC service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		uuidGenerator: cfg.UUIDGenerator,
		newRoller:     cfg.RollerFactory,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.newRoller == nil {
		svc.newRoller = func(seed *int64) dice.Roller {
			return dice.NewEngine(&dice.EngineConfig{Seed: seed})
		}
	}

	return svc
}

// GenerateNPC creates a single NPC
func (s *service) GenerateNPC(ctx context.Context, input *GenerateInput) (*entities.NPC, error) {
	if input == nil {
		return nil, cerrors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, cerrors.InvalidArgument("npc name is required")
	}

	npcType := input.Type
	if npcType == "" {
		npcType = entities.NPCNeutral
	}

	prof, ok := profiles[npcType]
	if !ok {
		return nil, cerrors.InvalidArgumentf("unknown npc type: %s", npcType)
	}

	roller := s.newRoller(input.Seed)

	attrs, err := rollAttributes(roller)
	if err != nil {
		return nil, err
	}

	reaction, err := rollReaction(roller)
	if err != nil {
		return nil, err
	}

	motivation, err := pick(roller, prof.motivations)
	if err != nil {
		return nil, err
	}
	personality, err := pick(roller, prof.personalities)
	if err != nil {
		return nil, err
	}

	skills, err := rollSkills(roller, prof.skills)
	if err != nil {
		return nil, err
	}

	npc := &entities.NPC{
		ID:               s.uuidGenerator.New(),
		Name:             input.Name,
		Type:             npcType,
		Attributes:       attrs,
		NotableSkills:    skills,
		Motivation:       motivation,
		Personality:      personality,
		ReactionModifier: reaction,
		CreatedAt:        time.Now().UTC(),
	}

	if npcType == entities.NPCPatron {
		if err := addPatronDetails(roller, npc); err != nil {
			return nil, err
		}
	}

	if err := npc.Validate(); err != nil {
		return nil, cerrors.Wrap(err, "generated npc failed validation")
	}

	return npc, nil
}

// GenerateBatch creates several NPCs concurrently
func (s *service) GenerateBatch(ctx context.Context, input *BatchInput) ([]*entities.NPC, error) {
	if input == nil {
		return nil, cerrors.InvalidArgument("input cannot be nil")
	}
	if input.Count < 1 {
		return nil, cerrors.InvalidArgumentf("batch count must be positive, got %d", input.Count)
	}

	prefix := input.NamePrefix
	if prefix == "" {
		prefix = "NPC"
	}

	npcs := make([]*entities.NPC, input.Count)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < input.Count; i++ {
		i := i
		g.Go(func() error {
			single := &GenerateInput{
				Name: fmt.Sprintf("%s %d", prefix, i+1),
				Type: input.Type,
			}
			if input.Seed != nil {
				memberSeed := *input.Seed + int64(i)
				single.Seed = &memberSeed
			}

			npc, err := s.GenerateNPC(ctx, single)
			if err != nil {
				return cerrors.Wrapf(err, "failed to generate npc %d", i+1)
			}
			npcs[i] = npc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return npcs, nil
}

// rollAttributes rolls 2d6 for each attribute in sheet order.
func rollAttributes(roller dice.Roller) (*entities.Attributes, error) {
	scores := make([]int, len(entities.AttributeTypes))
	for i := range scores {
		total, err := rollTotal(roller, 2, 6)
		if err != nil {
			return nil, err
		}
		scores[i] = total
	}

	return entities.NewAttributes(scores[0], scores[1], scores[2], scores[3], scores[4], scores[5])
}

// rollReaction rolls 1d6-1d6, clamped to [-6, 6].
func rollReaction(roller dice.Roller) (int, error) {
	a, err := rollTotal(roller, 1, 6)
	if err != nil {
		return 0, err
	}
	b, err := rollTotal(roller, 1, 6)
	if err != nil {
		return 0, err
	}

	reaction := a - b
	if reaction < -6 {
		reaction = -6
	}
	if reaction > 6 {
		reaction = 6
	}
	return reaction, nil
}

// rollSkills picks two notable skills from the table, merging duplicates
// at the higher level. Levels run 0 through 2.
func rollSkills(roller dice.Roller, table []string) ([]entities.Skill, error) {
	var skills []entities.Skill

	for n := 0; n < 2; n++ {
		name, err := pick(roller, table)
		if err != nil {
			return nil, err
		}
		level, err := rollTotal(roller, 1, 3)
		if err != nil {
			return nil, err
		}
		level--

		merged := false
		for i, existing := range skills {
			if existing.Name == name {
				if level > existing.Level {
					skills[i].Level = level
				}
				merged = true
				break
			}
		}
		if !merged {
			skills = append(skills, entities.Skill{Name: name, Level: level})
		}
	}

	return skills, nil
}

// addPatronDetails assigns a patron type and two mission types.
func addPatronDetails(roller dice.Roller, npc *entities.NPC) error {
	patronType, err := pick(roller, patronTypes)
	if err != nil {
		return err
	}
	npc.PatronType = patronType

	for n := 0; n < 2; n++ {
		mission, err := pick(roller, missionTypes)
		if err != nil {
			return err
		}

		duplicate := false
		for _, existing := range npc.MissionTypes {
			if existing == mission {
				duplicate = true
				break
			}
		}
		if !duplicate {
			npc.MissionTypes = append(npc.MissionTypes, mission)
		}
	}

	return nil
}

// pick selects a uniform random entry from a table.
func pick(roller dice.Roller, table []string) (string, error) {
	result, err := rollTotal(roller, 1, len(table))
	if err != nil {
		return "", err
	}
	return table[result-1], nil
}

func rollTotal(roller dice.Roller, count, size int) (int, error) {
	faces, err := roller.RollDice(count, size)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, f := range faces {
		total += f.Result
	}
	return total, nil
}
