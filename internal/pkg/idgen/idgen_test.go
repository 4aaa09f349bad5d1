package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUID() {
	bare := idgen.NewUUID("").Generate()
	_, err := uuid.Parse(bare)
	s.NoError(err)

	prefixed := idgen.NewUUID("char").Generate()
	s.True(strings.HasPrefix(prefixed, "char_"))
	_, err = uuid.Parse(strings.TrimPrefix(prefixed, "char_"))
	s.NoError(err)

	s.NotEqual(bare, idgen.NewUUID("").Generate())
}

func (s *IDGenTestSuite) TestSequential() {
	g := idgen.NewSequential("char")
	s.Equal("char_1", g.Generate())
	s.Equal("char_2", g.Generate())

	s.Equal("1", idgen.NewSequential("").Generate())
}

func (s *IDGenTestSuite) TestPrefixed() {
	g := idgen.NewPrefixed("export")
	first, second := g.Generate(), g.Generate()

	s.True(strings.HasPrefix(first, "export_"))
	s.Len(strings.Split(first, "_"), 3)
	s.NotEqual(first, second)
}
