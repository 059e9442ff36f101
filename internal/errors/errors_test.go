package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
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
			message:  "draft id is required",
			expected: "INVALID_ARGUMENT: draft id is required",
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

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char_123").
		WithMeta("player_id", "player_456")

	s.Equal("char_123", err.Meta["character_id"])
	s.Equal("player_456", err.Meta["player_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain error becomes internal", func() {
		baseErr := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(baseErr, "failed to get character")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("failed to get character", wrapped.Message)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("code of structured cause is kept", func() {
		baseErr := errors.NotFound("record not found").WithMeta("key", "character:1")
		wrapped := errors.Wrapf(baseErr, "character %s not found", "1")

		s.Equal(errors.CodeNotFound, wrapped.Code)
		s.Equal("character 1 not found", wrapped.Message)
		s.Equal("character:1", wrapped.Meta["key"])
	})

	s.Run("wrap with code overrides", func() {
		wrapped := errors.WrapWithCode(errors.NotFound("gone"), errors.CodeFailedPrecondition, "draft expired")
		s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "nothing"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFound := errors.NotFound("missing")
	wrapped := errors.Wrap(notFound, "lookup failed")

	s.True(errors.IsNotFound(notFound))
	s.True(errors.IsNotFound(wrapped))
	s.False(errors.IsInvalidArgument(wrapped))
	s.True(errors.IsInternal(fmt.Errorf("plain")))

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("lookup failed", errors.GetMessage(wrapped))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.NotFound("character not found"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character not found", st.Message())

	s.Equal(codes.Internal, status.Code(errors.ToGRPCError(fmt.Errorf("boom"))))
	s.Nil(errors.ToGRPCError(nil))

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "bad input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("bad input", errors.GetMessage(back))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
