package client

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/handlers/character/v1alpha1"
)

var (
	createName       string
	createRace       string
	createClass      string
	createMethod     string
	createCampaignID string
	createBackstory  string

	listCampaignID string

	backgroundBackstory   string
	backgroundPersonality []string
	backgroundIdeals      []string
	backgroundBonds       []string
	backgroundFlaws       []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a level 1 character",
	Long:  `Create a character with generated ability scores. The race and class must meet their ability minimums.`,
	RunE:  runCreate,
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up [character-id]",
	Short: "Advance a character one level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelUp,
}

var updateBackgroundCmd = &cobra.Command{
	Use:   "update-background [character-id]",
	Short: "Replace backstory or trait lists",
	Long:  `Replace backstory or trait lists. Only flags that are set change; pass a flag with an empty value to clear a list.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateBackground,
}

var getCmd = &cobra.Command{
	Use:   "get [character-id]",
	Short: "Get a stored character",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a stored character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var rosterCmd = &cobra.Command{
	Use:   "roster [campaign-id]",
	Short: "List the character ids enrolled in a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoster,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Character name")
	createCmd.Flags().StringVar(&createRace, "race", "", "Race, e.g. dwarf or half-elf")
	createCmd.Flags().StringVar(&createClass, "class", "", "Class, e.g. fighter")
	createCmd.Flags().StringVar(&createMethod, "method", "", "Ability generation method: standard, heroic or elite")
	createCmd.Flags().StringVar(&createCampaignID, "campaign", "", "Campaign to enroll the character in")
	createCmd.Flags().StringVar(&createBackstory, "backstory", "", "Backstory text")
	_ = createCmd.MarkFlagRequired("name")  // nolint:errcheck // flag exists
	_ = createCmd.MarkFlagRequired("race")  // nolint:errcheck // flag exists
	_ = createCmd.MarkFlagRequired("class") // nolint:errcheck // flag exists

	listCmd.Flags().StringVar(&listCampaignID, "campaign", "", "Only list characters in this campaign")

	updateBackgroundCmd.Flags().StringVar(&backgroundBackstory, "backstory", "", "New backstory")
	updateBackgroundCmd.Flags().StringSliceVar(&backgroundPersonality, "personality", nil, "Personality traits")
	updateBackgroundCmd.Flags().StringSliceVar(&backgroundIdeals, "ideals", nil, "Ideals")
	updateBackgroundCmd.Flags().StringSliceVar(&backgroundBonds, "bonds", nil, "Bonds")
	updateBackgroundCmd.Flags().StringSliceVar(&backgroundFlaws, "flaws", nil, "Flaws")
}

func runCreate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Creating %s %s '%s' on %s...", createRace, createClass, createName, serverAddr)

	resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{
		Name:       createName,
		Race:       createRace,
		Class:      createClass,
		Method:     createMethod,
		CampaignID: createCampaignID,
		Backstory:  createBackstory,
	})
	if err != nil {
		return callError("create character", err)
	}

	return printJSON(resp)
}

func runLevelUp(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.LevelUpCharacter(ctx, &v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	if err != nil {
		return callError("level up character", err)
	}

	return printJSON(resp)
}

func runUpdateBackground(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.UpdateBackgroundRequest{CharacterID: args[0]}
	flags := cmd.Flags()
	if flags.Changed("backstory") {
		req.Backstory = &backgroundBackstory
	}
	if flags.Changed("personality") {
		req.Personality = nonNil(backgroundPersonality)
	}
	if flags.Changed("ideals") {
		req.Ideals = nonNil(backgroundIdeals)
	}
	if flags.Changed("bonds") {
		req.Bonds = nonNil(backgroundBonds)
	}
	if flags.Changed("flaws") {
		req.Flaws = nonNil(backgroundFlaws)
	}

	resp, err := client.UpdateBackground(ctx, req)
	if err != nil {
		return callError("update background", err)
	}

	return printJSON(resp)
}

func runGet(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	if err != nil {
		return callError("get character", err)
	}

	return printJSON(resp.Character)
}

func runList(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &v1alpha1.ListCharactersRequest{CampaignID: listCampaignID})
	if err != nil {
		return callError("list characters", err)
	}

	log.Printf("Found %d characters", len(resp.Characters))
	return printJSON(resp.Characters)
}

func runDelete(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DeleteCharacter(ctx, &v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	if err != nil {
		return callError("delete character", err)
	}

	log.Printf("Deleted character %s", resp.CharacterID)
	return nil
}

func runRoster(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCampaignCharacters(ctx, &v1alpha1.ListCampaignCharactersRequest{CampaignID: args[0]})
	if err != nil {
		return callError("list campaign characters", err)
	}

	return printJSON(resp.CharacterIDs)
}

// nonNil keeps an explicitly empty flag distinct from an unset one
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// printValidation logs blocking errors and warnings
func printValidation(result *dnd5e.ValidationResult) {
	if result == nil {
		return
	}
	for _, e := range result.Errors {
		log.Printf("error: %s", e)
	}
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
}
