package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "character ID is required",
			expected: "INVALID_ARGUMENT: character ID is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("character not found").WithMeta("character_id", "char_1")
	wrapped := errors.Wrap(base, "failed to level up character")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("char_1", wrapped.Meta["character_id"])
	s.True(errors.IsNotFound(wrapped))

	wrapped.WithMeta("extra", true)
	s.NotContains(base.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("bad json"), errors.CodeInvalidArgument, "invalid envelope")
	s.True(errors.IsInvalidArgument(wrapped))
	s.Equal("invalid envelope", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestOperationReasons() {
	ineligible := errors.Ineligiblef("%s cannot multiclass into %s", "fighter", "wizard")
	s.True(errors.IsIneligible(ineligible))
	s.True(errors.IsFailedPrecondition(ineligible))
	s.False(errors.IsVersionMismatch(ineligible))

	mismatch := errors.VersionMismatch("0.9.0", "1.0.0")
	s.True(errors.IsVersionMismatch(mismatch))
	s.Contains(mismatch.Error(), "0.9.0")

	stale := errors.StaleExport(400, 365)
	s.True(errors.IsStaleExport(errors.Wrap(stale, "import failed")))
	s.False(errors.IsIneligible(stale))

	s.Equal(errors.Reason(""), errors.GetReason(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetCodeDefaults() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	original := errors.Ineligiblef("fighter cannot multiclass into wizard").
		WithMeta("failures", []string{"wizard multiclass requires intelligence 13 (has 9)"})

	grpcErr := errors.ToGRPCError(original)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())

	restored := errors.FromGRPCError(grpcErr)
	s.True(errors.IsIneligible(restored))
	s.Equal("fighter cannot multiclass into wizard", errors.GetMessage(restored))
	s.Equal([]any{"wizard multiclass requires intelligence 13 (has 9)"}, errors.GetMeta(restored)["failures"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlain() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}
