// Command cetools is a command-line toolkit for the Cepheus Engine:
// dice rolling, character and NPC generation, and configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lgw4/cetools/internal/config"
	"github.com/lgw4/cetools/internal/dice"
	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/repositories/characters"
	"github.com/lgw4/cetools/internal/serialization"
	charservice "github.com/lgw4/cetools/internal/services/character"
	npcservice "github.com/lgw4/cetools/internal/services/npc"
)

const version = "0.1.0"

// Exit codes: dice expression errors get their own code so scripts can
// tell a typo from a real failure.
const (
	exitOK              = 0
	exitExpressionError = 2
	exitUnexpectedError = 10
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A .env file can supply CETOOLS_* overrides
	_ = godotenv.Load()

	if len(args) == 0 {
		usage()
		return exitUnexpectedError
	}

	var err error
	switch args[0] {
	case "roll":
		err = cmdRoll(args[1:])
	case "character":
		err = cmdCharacter(args[1:])
	case "npc":
		err = cmdNPC(args[1:])
	case "config":
		err = cmdConfig(args[1:])
	case "version":
		fmt.Printf("cetools %s\n", version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		usage()
		return exitUnexpectedError
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cerrors.IsInvalidExpression(err) {
			return exitExpressionError
		}
		return exitUnexpectedError
	}
	return exitOK
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: cetools <command> [options]

Commands:
  roll <expression>        Roll dice (2d6+3, d66, d66u, ...)
  character <subcommand>   Generate and manage characters
  npc gen                  Generate NPCs
  config <subcommand>      Inspect and edit configuration
  version                  Print the version

Run a command with -h for its options.
`)
}

func cmdRoll(args []string) error {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	seedFlag := fs.Int64("seed", 0, "seed for a reproducible roll")
	adv := fs.Bool("adv", false, "roll with advantage")
	dis := fs.Bool("dis", false, "roll with disadvantage")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return cerrors.InvalidArgument("expected exactly one dice expression")
	}
	expression := fs.Arg(0)

	var seed *int64
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = seedFlag
		}
	})

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Rolling %s\n", expression)
	if seed != nil {
		fmt.Printf("Seed: %d\n", *seed)
	}
	if *adv {
		fmt.Println("Rolling with advantage")
	}
	if *dis {
		fmt.Println("Rolling with disadvantage")
	}

	result, err := dice.Roll(expression, &dice.RollOptions{
		Seed:         seed,
		Advantage:    *adv,
		Disadvantage: *dis,
		D66Unordered: cfg.Dice.D66Unordered,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Result: %s\n", result.Breakdown)
	if result.Kind != dice.KindStandard {
		fmt.Printf("D66 Value: %d\n", result.D66Composed)
	}
	return nil
}

func cmdCharacter(args []string) error {
	if len(args) == 0 {
		return cerrors.InvalidArgument("expected a character subcommand: create, list, show, delete")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repo, cleanup, err := newRepository(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := charservice.NewService(&charservice.ServiceConfig{Repository: repo})
	ctx := context.Background()

	switch args[0] {
	case "create":
		return characterCreate(ctx, svc, cfg, args[1:])
	case "list":
		return characterList(ctx, svc)
	case "show":
		return characterShow(ctx, svc, args[1:])
	case "delete":
		return characterDelete(ctx, svc, args[1:])
	default:
		return cerrors.InvalidArgumentf("unknown character subcommand: %s", args[0])
	}
}

func characterCreate(ctx context.Context, svc charservice.Service, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("character create", flag.ContinueOnError)
	name := fs.String("name", "", "character name (required)")
	template := fs.String("template", cfg.Character.DefaultTemplate, "career template")
	seedFlag := fs.Int64("seed", 0, "seed for reproducible generation")
	export := fs.String("export", "", "write the character to a file")
	format := fs.String("format", cfg.General.ExportFormat, "export format: json or csv")
	save := fs.Bool("save", false, "store the character")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var seed *int64
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = seedFlag
		}
	})

	char, err := svc.GenerateCharacter(ctx, &charservice.GenerateInput{
		Name:     *name,
		Template: *template,
		Seed:     seed,
		Store:    *save,
	})
	if err != nil {
		return err
	}

	printCharacter(char)
	if *save {
		fmt.Printf("Stored with ID %s\n", char.ID)
	}

	if *export != "" {
		if err := serialization.SaveFile(char, *export, serialization.Format(*format)); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", *export)
	}
	return nil
}

func characterList(ctx context.Context, svc charservice.Service) error {
	chars, err := svc.ListCharacters(ctx)
	if err != nil {
		return err
	}

	if len(chars) == 0 {
		fmt.Println("No characters stored.")
		return nil
	}

	for _, c := range chars {
		fmt.Printf("%s  %s (%s, %d terms)\n", c.ID, c.Name, c.Career, c.TermsServed)
	}
	return nil
}

func characterShow(ctx context.Context, svc charservice.Service, args []string) error {
	if len(args) != 1 {
		return cerrors.InvalidArgument("expected a character ID")
	}

	char, err := svc.GetCharacter(ctx, args[0])
	if err != nil {
		return err
	}

	data, err := serialization.ToJSON(char)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func characterDelete(ctx context.Context, svc charservice.Service, args []string) error {
	if len(args) != 1 {
		return cerrors.InvalidArgument("expected a character ID")
	}

	if err := svc.DeleteCharacter(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted character %s\n", args[0])
	return nil
}

func cmdNPC(args []string) error {
	if len(args) == 0 || args[0] != "gen" {
		return cerrors.InvalidArgument("expected the npc subcommand: gen")
	}

	fs := flag.NewFlagSet("npc gen", flag.ContinueOnError)
	name := fs.String("name", "NPC", "NPC name, or name prefix for batches")
	npcType := fs.String("type", string(entities.NPCNeutral), "npc type: patron, enemy, ally, contact, neutral")
	count := fs.Int("count", 1, "number of NPCs to generate")
	seedFlag := fs.Int64("seed", 0, "seed for reproducible generation")
	export := fs.String("export", "", "write the NPCs to a file")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var seed *int64
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = seedFlag
		}
	})

	svc := npcservice.NewService(nil)
	ctx := context.Background()

	var npcs []*entities.NPC
	if *count == 1 {
		npc, err := svc.GenerateNPC(ctx, &npcservice.GenerateInput{
			Name: *name,
			Type: entities.NPCType(*npcType),
			Seed: seed,
		})
		if err != nil {
			return err
		}
		npcs = []*entities.NPC{npc}
	} else {
		batch, err := svc.GenerateBatch(ctx, &npcservice.BatchInput{
			Count:      *count,
			Type:       entities.NPCType(*npcType),
			NamePrefix: *name,
			Seed:       seed,
		})
		if err != nil {
			return err
		}
		npcs = batch
	}

	for i, npc := range npcs {
		if i > 0 {
			fmt.Println()
		}
		printNPC(npc)
	}

	if *export != "" {
		var payload any = npcs
		if len(npcs) == 1 {
			payload = npcs[0]
		}
		if err := serialization.SaveFile(payload, *export, serialization.FormatAuto); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", *export)
	}
	return nil
}

func cmdConfig(args []string) error {
	if len(args) == 0 {
		return cerrors.InvalidArgument("expected a config subcommand: get, set, list, path")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			return cerrors.InvalidArgument("expected a configuration key")
		}
		value, err := cfg.Get(args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil

	case "set":
		if len(args) != 3 {
			return cerrors.InvalidArgument("expected a configuration key and value")
		}
		if err := cfg.Set(args[1], args[2]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[1], args[2])
		return nil

	case "list":
		for _, key := range config.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", key, value)
		}
		return nil

	case "path":
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	default:
		return cerrors.InvalidArgumentf("unknown config subcommand: %s", args[0])
	}
}

// newRepository selects the character store: Redis when configured,
// otherwise JSON files in the user's data directory.
func newRepository(cfg *config.Config) (characters.Repository, func(), error) {
	if cfg.Storage.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Storage.RedisURL)
		if err != nil {
			return nil, nil, cerrors.Wrapf(err, "invalid Redis URL %s", cfg.Storage.RedisURL)
		}

		client := redis.NewClient(opts)
		return characters.NewRedis(client), func() { _ = client.Close() }, nil
	}

	dir, err := characters.DefaultDir()
	if err != nil {
		return nil, nil, err
	}

	repo, err := characters.NewFileRepository(dir)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}

func printCharacter(c *entities.Character) {
	fmt.Printf("%s (%s, %d terms)\n", c.Name, c.Career, c.TermsServed)
	fmt.Printf("  UPP: %s\n", upp(c.Attributes))
	fmt.Printf("  Age: %d  Credits: %d\n", c.Age, c.Credits)

	if len(c.Skills) > 0 {
		names := make([]string, len(c.Skills))
		for i, s := range c.Skills {
			names[i] = fmt.Sprintf("%s-%d", s.DisplayName(), s.Level)
		}
		fmt.Printf("  Skills: %s\n", strings.Join(names, ", "))
	}

	if len(c.Equipment) > 0 {
		names := make([]string, len(c.Equipment))
		for i, e := range c.Equipment {
			if e.Quantity > 1 {
				names[i] = fmt.Sprintf("%s x%d", e.Name, e.Quantity)
			} else {
				names[i] = e.Name
			}
		}
		fmt.Printf("  Equipment: %s\n", strings.Join(names, ", "))
	}
}

func printNPC(n *entities.NPC) {
	fmt.Printf("%s (%s)\n", n.Name, n.Type)
	fmt.Printf("  UPP: %s  Reaction: %+d\n", upp(n.Attributes), n.ReactionModifier)
	fmt.Printf("  Motivation: %s  Personality: %s\n", n.Motivation, n.Personality)

	if len(n.NotableSkills) > 0 {
		names := make([]string, len(n.NotableSkills))
		for i, s := range n.NotableSkills {
			names[i] = fmt.Sprintf("%s-%d", s.DisplayName(), s.Level)
		}
		fmt.Printf("  Skills: %s\n", strings.Join(names, ", "))
	}

	if n.PatronType != "" {
		fmt.Printf("  Patron: %s  Missions: %s\n", n.PatronType, strings.Join(n.MissionTypes, ", "))
	}
}

// upp formats the six attributes as a Universal Personality Profile
// string, e.g. 7C4A63.
func upp(a *entities.Attributes) string {
	if a == nil {
		return ""
	}

	var b strings.Builder
	for _, attr := range entities.AttributeTypes {
		b.WriteString(a.Get(attr))
	}
	return b.String()
}
