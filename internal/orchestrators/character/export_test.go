package character_test

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/events"
	"github.com/KirkDiggler/rpg-rules/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	service "github.com/KirkDiggler/rpg-rules/internal/services/character"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

func (s *OrchestratorTestSuite) exportWizard() *dnd5e.ExportEnvelope {
	fixture := testutils.CreateTestWizard("char_1")
	fixture.CampaignID = "camp_1"
	s.expectGet(fixture)

	output, err := s.orchestrator.ExportCharacter(s.ctx, &service.ExportCharacterInput{
		CharacterID: "char_1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Envelope)
	return output.Envelope
}

func (s *OrchestratorTestSuite) TestExportCharacter() {
	envelope := s.exportWizard()

	s.Equal(character.ExportVersion, envelope.Version)
	s.Equal("export_1", envelope.ExportID)
	s.Equal(s.now.UnixMilli(), envelope.Timestamp)
	s.Equal(character.ExportVersion, envelope.Metadata.ExportVersion)
	s.Require().NotNil(envelope.Metadata.ValidationResult)
	s.True(envelope.Metadata.ValidationResult.IsValid)

	exported := envelope.Character
	s.Empty(exported.ID)
	s.Empty(exported.Status)
	s.Empty(exported.CampaignID)
	s.Equal("Elara Moonwhisper", exported.Name)
	s.Len(exported.Spells, 3)
	s.Equal([]string{"character.ExportCharacter"}, s.spanNames())
}

func (s *OrchestratorTestSuite) TestExportCharacterNotFound() {
	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.orchestrator.ExportCharacter(s.ctx, &service.ExportCharacterInput{
		CharacterID: "missing",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestImportRoundTrip() {
	envelope := s.exportWizard()

	s.mockIDGenerator.EXPECT().Generate().Return("char_new")
	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{
		Envelope:   envelope,
		CampaignID: "camp_2",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)
	s.True(output.Validation.IsValid)

	imported := output.Character
	s.Equal("char_new", imported.ID)
	s.Equal(dnd5e.StatusActive, imported.Status)
	s.Equal("camp_2", imported.CampaignID)
	s.Equal(s.now.UnixMilli(), imported.CreatedAt)
	s.Equal(s.now.UnixMilli(), imported.UpdatedAt)
	s.Equal(envelope.Character.Name, imported.Name)
	s.Equal(envelope.Character.AbilityScores, imported.AbilityScores)
	s.Equal(envelope.Character.Spells, imported.Spells)
	s.Equal(imported, saved)

	// the envelope itself is untouched
	s.Empty(envelope.Character.ID)
	s.Equal([]string{events.EventCharacterImported}, s.published)
}

func (s *OrchestratorTestSuite) TestImportVersionMismatch() {
	envelope := s.exportWizard()
	envelope.Version = "0.9.0"

	_, err := s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{Envelope: envelope})
	s.Require().Error(err)
	s.True(errors.IsVersionMismatch(err))
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestImportAgeLimit() {
	testCases := []struct {
		name  string
		age   int64
		stale bool
	}{
		{name: "just exported", age: 0},
		{name: "exactly at the limit", age: character.MaxExportAgeMillis},
		{name: "past the limit", age: character.MaxExportAgeMillis + 1, stale: true},
		{name: "timestamp in the future", age: -60000},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			envelope := &dnd5e.ExportEnvelope{
				Version:   character.ExportVersion,
				ExportID:  "export_x",
				Timestamp: s.now.UnixMilli() - tc.age,
				Character: testutils.CreateTestCharacter(""),
			}

			if !tc.stale {
				s.mockIDGenerator.EXPECT().Generate().Return("char_new")
				var saved *dnd5e.Character
				s.expectSave(&saved)
			}

			output, err := s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{Envelope: envelope})
			if tc.stale {
				s.Require().Error(err)
				s.True(errors.IsStaleExport(err))
				return
			}
			s.Require().NoError(err)
			s.Equal("char_new", output.Character.ID)
		})
	}
}

func (s *OrchestratorTestSuite) TestImportInvalidCharacterIsNotSaved() {
	broken := testutils.CreateTestCharacter("")
	broken.Level = 0
	envelope := &dnd5e.ExportEnvelope{
		Version:   character.ExportVersion,
		ExportID:  "export_x",
		Timestamp: s.now.UnixMilli(),
		Character: broken,
	}
	s.mockIDGenerator.EXPECT().Generate().Return("char_new")

	output, err := s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{Envelope: envelope})
	s.Require().NoError(err)
	s.Nil(output.Character)
	s.False(output.Validation.IsValid)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestImportRejectsOutOfRangeValues() {
	broken := testutils.CreateTestCharacter("")
	broken.HitPoints = -7
	broken.Experience = -500
	broken.Spells = []dnd5e.Spell{{Name: "Glitch", Level: -3, School: "evocation"}}
	envelope := &dnd5e.ExportEnvelope{
		Version:   character.ExportVersion,
		ExportID:  "export_x",
		Timestamp: s.now.UnixMilli(),
		Character: broken,
	}
	s.mockIDGenerator.EXPECT().Generate().Return("char_new")

	output, err := s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{Envelope: envelope})
	s.Require().NoError(err)
	s.Nil(output.Character)
	s.False(output.Validation.IsValid)
	s.Contains(output.Validation.Errors, "hit points -7 must be at least 1")
	s.Contains(output.Validation.Errors, "experience -500 must not be negative")
	s.Contains(output.Validation.Errors, `spell "Glitch" level -3 must not be negative`)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestImportRequiresEnvelope() {
	_, err := s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "envelope: is required")

	_, err = s.orchestrator.ImportCharacter(s.ctx, &service.ImportCharacterInput{
		Envelope: &dnd5e.ExportEnvelope{Version: character.ExportVersion},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "envelope.character: is required")
}
