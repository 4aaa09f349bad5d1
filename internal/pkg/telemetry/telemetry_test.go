package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"

	"github.com/KirkDiggler/rpg-rules/internal/pkg/telemetry"
)

type TelemetryTestSuite struct {
	suite.Suite
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (s *TelemetryTestSuite) TestNoopWhenEndpointEmpty() {
	before := otel.GetTracerProvider()

	shutdown, err := telemetry.Setup(context.Background(), "rpg-rules-test", "")
	s.Require().NoError(err)
	s.NoError(shutdown(context.Background()))
	s.Equal(before, otel.GetTracerProvider())
}

func (s *TelemetryTestSuite) TestCreatesProviderWhenEndpointSet() {
	// non-routable, nothing is exported
	shutdown, err := telemetry.Setup(context.Background(), "rpg-rules-test", "http://192.0.2.1:4318")
	s.Require().NoError(err)
	s.NoError(shutdown(context.Background()))
}
