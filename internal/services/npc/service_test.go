package npc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/services/npc"
)

func seed(v int64) *int64 {
	return &v
}

func TestGenerateNPC_Deterministic(t *testing.T) {
	svc := npc.NewService(nil)
	ctx := context.Background()

	input := &npc.GenerateInput{
		Name: "Vik Sarn",
		Type: entities.NPCEnemy,
		Seed: seed(42),
	}

	first, err := svc.GenerateNPC(ctx, input)
	require.NoError(t, err)
	second, err := svc.GenerateNPC(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first.Attributes, second.Attributes)
	assert.Equal(t, first.Motivation, second.Motivation)
	assert.Equal(t, first.Personality, second.Personality)
	assert.Equal(t, first.NotableSkills, second.NotableSkills)
	assert.Equal(t, first.ReactionModifier, second.ReactionModifier)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateNPC_Fields(t *testing.T) {
	svc := npc.NewService(nil)

	generated, err := svc.GenerateNPC(context.Background(), &npc.GenerateInput{
		Name: "Mira Hollis",
		Type: entities.NPCContact,
		Seed: seed(7),
	})
	require.NoError(t, err)

	assert.Equal(t, entities.NPCContact, generated.Type)
	assert.NotEmpty(t, generated.Motivation)
	assert.NotEmpty(t, generated.Personality)
	assert.NotEmpty(t, generated.NotableSkills)
	assert.GreaterOrEqual(t, generated.ReactionModifier, -5)
	assert.LessOrEqual(t, generated.ReactionModifier, 5)
	assert.Empty(t, generated.PatronType, "only patrons get patron details")
	require.NoError(t, generated.Validate())
}

func TestGenerateNPC_DefaultsToNeutral(t *testing.T) {
	svc := npc.NewService(nil)

	generated, err := svc.GenerateNPC(context.Background(), &npc.GenerateInput{
		Name: "Bystander",
		Seed: seed(1),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.NPCNeutral, generated.Type)
}

func TestGenerateNPC_PatronDetails(t *testing.T) {
	svc := npc.NewService(nil)

	generated, err := svc.GenerateNPC(context.Background(), &npc.GenerateInput{
		Name: "Baron Castellan",
		Type: entities.NPCPatron,
		Seed: seed(11),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, generated.PatronType)
	assert.NotEmpty(t, generated.MissionTypes)
	assert.LessOrEqual(t, len(generated.MissionTypes), 2)
}

func TestGenerateNPC_Validation(t *testing.T) {
	svc := npc.NewService(nil)
	ctx := context.Background()

	_, err := svc.GenerateNPC(ctx, nil)
	assert.True(t, cerrors.IsInvalidArgument(err))

	_, err = svc.GenerateNPC(ctx, &npc.GenerateInput{})
	assert.True(t, cerrors.IsInvalidArgument(err))

	_, err = svc.GenerateNPC(ctx, &npc.GenerateInput{Name: "X", Type: "dragon"})
	assert.True(t, cerrors.IsInvalidArgument(err))
}

func TestGenerateBatch_SeededReproducibility(t *testing.T) {
	svc := npc.NewService(nil)
	ctx := context.Background()

	input := &npc.BatchInput{
		Count:      5,
		Type:       entities.NPCAlly,
		NamePrefix: "Crew",
		Seed:       seed(100),
	}

	first, err := svc.GenerateBatch(ctx, input)
	require.NoError(t, err)
	second, err := svc.GenerateBatch(ctx, input)
	require.NoError(t, err)

	require.Len(t, first, 5)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Attributes, second[i].Attributes, "member %d", i)
		assert.Equal(t, first[i].NotableSkills, second[i].NotableSkills, "member %d", i)
	}

	assert.Equal(t, "Crew 1", first[0].Name)
	assert.Equal(t, "Crew 5", first[4].Name)
}

func TestGenerateBatch_MembersDiffer(t *testing.T) {
	svc := npc.NewService(nil)

	npcs, err := svc.GenerateBatch(context.Background(), &npc.BatchInput{
		Count: 4,
		Seed:  seed(200),
	})
	require.NoError(t, err)
	require.Len(t, npcs, 4)

	allSame := true
	for _, n := range npcs[1:] {
		if *n.Attributes != *npcs[0].Attributes {
			allSame = false
			break
		}
	}
	assert.False(t, allSame, "per-member seeds should vary the batch")
}

func TestGenerateBatch_Validation(t *testing.T) {
	svc := npc.NewService(nil)
	ctx := context.Background()

	_, err := svc.GenerateBatch(ctx, nil)
	assert.True(t, cerrors.IsInvalidArgument(err))

	_, err = svc.GenerateBatch(ctx, &npc.BatchInput{Count: 0})
	assert.True(t, cerrors.IsInvalidArgument(err))
}
