package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"time"

	"github.com/lgw4/cetools/internal/dice"
	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/repositories/characters"
	"github.com/lgw4/cetools/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// RollerFactory builds a dice roller for one generation run. A nil seed
// means a random roller.
type RollerFactory func(seed *int64) dice.Roller

// Service defines the character generation service interface
type Service interface {
	// GenerateCharacter creates a character from a career template
	GenerateCharacter(ctx context.Context, input *GenerateInput) (*entities.Character, error)

	// GetCharacter retrieves a stored character by ID
	GetCharacter(ctx context.Context, id string) (*entities.Character, error)

	// ListCharacters lists all stored characters
	ListCharacters(ctx context.Context) ([]*entities.Character, error)

	// DeleteCharacter removes a stored character
	DeleteCharacter(ctx context.Context, id string) error
}

// GenerateInput contains data for generating a character
type GenerateInput struct {
	Name     string
	Template string // Optional, defaults to DefaultTemplate

	// Seed makes generation reproducible: the same seed and input
	// produce the same character (IDs and timestamps aside).
	Seed *int64

	// ExtraSkills are merged into the template's skills; duplicates
	// keep the higher level.
	ExtraSkills []entities.Skill

	Homeworld string

	// Store saves the generated character to the repository
	Store bool
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	newRoller     RollerFactory
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, will use default if nil
	RollerFactory RollerFactory  // Optional, will use the dice engine if nil
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
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

// GenerateCharacter creates a character from a career template
func (s *service) GenerateCharacter(ctx context.Context, input *GenerateInput) (*entities.Character, error) {
	if input == nil {
		return nil, cerrors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, cerrors.InvalidArgument("character name is required")
	}

	templateName := input.Template
	if templateName == "" {
		templateName = DefaultTemplate
	}

	template, ok := GetTemplate(templateName)
	if !ok {
		return nil, cerrors.NotFoundf("unknown character template: %s", templateName).
			WithMeta("template", templateName)
	}

	roller := s.newRoller(input.Seed)

	attrs, err := rollAttributes(roller)
	if err != nil {
		return nil, err
	}

	terms, err := rollTotal(roller, 1, 4)
	if err != nil {
		return nil, err
	}

	credits, err := rollCredits(roller, template.Credits)
	if err != nil {
		return nil, err
	}

	char := &entities.Character{
		ID:          s.uuidGenerator.New(),
		Name:        input.Name,
		Age:         18 + 4*terms,
		Homeworld:   input.Homeworld,
		Career:      template.Career,
		TermsServed: terms,
		Attributes:  attrs,
		Credits:     credits,
		CreatedAt:   time.Now().UTC(),
	}

	for _, skill := range template.Skills {
		char.AddSkill(skill.Name, skill.Level, skill.Specialty)
	}
	for _, skill := range input.ExtraSkills {
		char.AddSkill(skill.Name, skill.Level, skill.Specialty)
	}
	for _, gear := range template.Gear {
		char.AddEquipment(gear)
	}

	if err := char.Validate(); err != nil {
		return nil, cerrors.Wrap(err, "generated character failed validation")
	}

	if input.Store {
		if err := s.repository.Create(ctx, char); err != nil {
			return nil, err
		}
	}

	return char, nil
}

// GetCharacter retrieves a stored character by ID
func (s *service) GetCharacter(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, cerrors.InvalidArgument("character ID is required")
	}
	return s.repository.Get(ctx, id)
}

// ListCharacters lists all stored characters
func (s *service) ListCharacters(ctx context.Context) ([]*entities.Character, error) {
	return s.repository.List(ctx)
}

// DeleteCharacter removes a stored character
func (s *service) DeleteCharacter(ctx context.Context, id string) error {
	if id == "" {
		return cerrors.InvalidArgument("character ID is required")
	}
	return s.repository.Delete(ctx, id)
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

// rollCredits picks starting credits uniformly within the template range.
func rollCredits(roller dice.Roller, r CreditRange) (int, error) {
	span := r.Max - r.Min + 1
	if span <= 1 {
		return r.Min, nil
	}

	result, err := rollTotal(roller, 1, span)
	if err != nil {
		return 0, err
	}
	return r.Min + result - 1, nil
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
