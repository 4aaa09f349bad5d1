package events_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/events"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

type PublisherTestSuite struct {
	suite.Suite
	ctx       context.Context
	bus       rpgevents.EventBus
	publisher *events.Publisher
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = rpgevents.NewBus()

	publisher, err := events.NewPublisher(s.bus)
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *PublisherTestSuite) TestNewPublisherRequiresBus() {
	_, err := events.NewPublisher(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *PublisherTestSuite) TestPublishDeliversCharacterAndContext() {
	var received []*dnd5e.Character
	var level any
	s.bus.SubscribeFunc(events.EventCharacterLeveledUp, 100, func(_ context.Context, e rpgevents.Event) error {
		character, ok := events.ExtractCharacter(e.Source())
		s.Require().True(ok)
		received = append(received, character)
		level, _ = e.Context().Get(events.ContextLevel)
		return nil
	})

	character := testutils.CreateTestCharacter("char-1")
	err := s.publisher.Publish(s.ctx, events.EventCharacterLeveledUp, character, map[string]any{
		events.ContextLevel: 2,
	})
	s.Require().NoError(err)

	s.Require().Len(received, 1)
	s.Equal("char-1", received[0].ID)
	s.Equal(2, level)

	received[0].Name = "changed by handler"
	s.Equal(testutils.TestCharacterName, character.Name)
}

func (s *PublisherTestSuite) TestPublishOnlyReachesMatchingSubscribers() {
	calls := 0
	s.bus.SubscribeFunc(events.EventCharacterDeleted, 100, func(_ context.Context, _ rpgevents.Event) error {
		calls++
		return nil
	})

	err := s.publisher.Publish(s.ctx, events.EventCharacterCreated, testutils.CreateTestCharacter("char-1"), nil)
	s.Require().NoError(err)
	s.Equal(0, calls)
}

func (s *PublisherTestSuite) TestCharacterEntity() {
	entity := events.WrapCharacter(testutils.CreateTestCharacter("char-9"))
	s.Equal("char-9", entity.GetID())
	s.Equal(events.EntityTypeCharacter, entity.GetType())

	_, ok := events.ExtractCharacter(nil)
	s.False(ok)
}

func (s *PublisherTestSuite) TestAuditLogRecordsEveryLifecycleEvent() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	ids, err := events.SubscribeAuditLog(s.bus)
	s.Require().NoError(err)
	s.Len(ids, len(events.LifecycleEvents))

	character := testutils.CreateTestCharacter("char-1")
	for _, eventType := range events.LifecycleEvents {
		s.Require().NoError(s.publisher.Publish(s.ctx, eventType, character, nil))
	}

	logged := buf.String()
	for _, eventType := range events.LifecycleEvents {
		s.Contains(logged, `"event":"`+eventType+`"`)
	}
	s.Contains(logged, `"character_id":"char-1"`)
}

func (s *PublisherTestSuite) TestAuditLogRequiresBus() {
	_, err := events.SubscribeAuditLog(nil)
	s.True(errors.IsInvalidArgument(err))
}
