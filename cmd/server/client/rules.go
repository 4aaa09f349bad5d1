package client

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/handlers/character/v1alpha1"
)

var (
	multiclassClass string

	spellKey    string
	spellName   string
	spellLevel  int
	spellSchool string

	exportOutput   string
	importFile     string
	importCampaign string
)

var validateCmd = &cobra.Command{
	Use:   "validate [character-id]",
	Short: "Run rule validation over a stored character",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var multiclassCmd = &cobra.Command{
	Use:   "multiclass [character-id]",
	Short: "Add a secondary class",
	Args:  cobra.ExactArgs(1),
	RunE:  runMulticlass,
}

var learnSpellCmd = &cobra.Command{
	Use:   "learn-spell [character-id]",
	Short: "Learn a spell by SRD key or by name, level and school",
	Args:  cobra.ExactArgs(1),
	RunE:  runLearnSpell,
}

var prepareSpellsCmd = &cobra.Command{
	Use:   "prepare-spells [character-id]",
	Short: "Show today's prepared spells and slots",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrepareSpells,
}

var exportCmd = &cobra.Command{
	Use:   "export [character-id]",
	Short: "Export a character as a portable envelope",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a character from an export envelope",
	RunE:  runImport,
}

func init() {
	multiclassCmd.Flags().StringVar(&multiclassClass, "class", "", "Class to add")
	_ = multiclassCmd.MarkFlagRequired("class") // nolint:errcheck // flag exists

	learnSpellCmd.Flags().StringVar(&spellKey, "key", "", "SRD spell key, e.g. magic-missile")
	learnSpellCmd.Flags().StringVar(&spellName, "name", "", "Spell name when not using --key")
	learnSpellCmd.Flags().IntVar(&spellLevel, "level", 0, "Spell level, 0 for cantrips")
	learnSpellCmd.Flags().StringVar(&spellSchool, "school", "", "School of magic")
	learnSpellCmd.MarkFlagsMutuallyExclusive("key", "name")
	learnSpellCmd.MarkFlagsOneRequired("key", "name")

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the envelope to this file instead of stdout")

	importCmd.Flags().StringVarP(&importFile, "file", "f", "-", "Envelope file, - for stdin")
	importCmd.Flags().StringVar(&importCampaign, "campaign", "", "Campaign to enroll the imported character in")
}

func runValidate(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ValidateCharacter(ctx, &v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	if err != nil {
		return callError("validate character", err)
	}

	printValidation(resp.Validation)
	return printJSON(resp.Validation)
}

func runMulticlass(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.MulticlassCharacter(ctx, &v1alpha1.MulticlassCharacterRequest{
		CharacterID: args[0],
		Class:       multiclassClass,
	})
	if err != nil {
		return callError("multiclass character", err)
	}

	printValidation(resp.Validation)
	return printJSON(resp)
}

func runLearnSpell(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.LearnSpellRequest{
		CharacterID: args[0],
		SpellKey:    spellKey,
	}
	if spellName != "" {
		req.Spell = &dnd5e.Spell{
			Name:   spellName,
			Level:  spellLevel,
			School: spellSchool,
		}
	}

	resp, err := client.LearnSpell(ctx, req)
	if err != nil {
		return callError("learn spell", err)
	}

	if !resp.CanLearn {
		for _, reason := range resp.LearningErrors {
			log.Printf("cannot learn: %s", reason)
		}
	}
	return printJSON(resp)
}

func runPrepareSpells(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PrepareSpells(ctx, &v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	if err != nil {
		return callError("prepare spells", err)
	}

	return printJSON(resp)
}

func runExport(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ExportCharacter(ctx, &v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	if err != nil {
		return callError("export character", err)
	}

	if exportOutput == "" {
		return printJSON(resp.Envelope)
	}
	if err := writeJSONFile(exportOutput, resp.Envelope); err != nil {
		return err
	}
	log.Printf("Wrote export %s to %s", resp.Envelope.ExportID, exportOutput)
	return nil
}

func runImport(_ *cobra.Command, _ []string) error {
	var envelope dnd5e.ExportEnvelope
	if err := readJSONFile(importFile, &envelope); err != nil {
		return err
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportCharacter(ctx, &v1alpha1.ImportCharacterRequest{
		Envelope:   &envelope,
		CampaignID: importCampaign,
	})
	if err != nil {
		return callError("import character", err)
	}

	printValidation(resp.Validation)
	return printJSON(resp)
}
