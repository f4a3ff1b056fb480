package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
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
			message:  "game state not found",
			expected: "NOT_FOUND: game state not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "name is required",
			expected: "INVALID_ARGUMENT: name is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain errors become internal", func() {
		baseErr := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(baseErr, "failed to load game state")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("coded errors keep their code", func() {
		baseErr := errors.NotFound("no snapshot").WithMeta("user_id", "u1")
		wrapped := errors.Wrapf(baseErr, "load %s", "u1")

		s.True(errors.IsNotFound(wrapped))
		s.Equal("u1", errors.GetMeta(wrapped)["user_id"])
	})

	s.Run("wrap with code copies meta", func() {
		baseErr := errors.Internal("redis down").WithMeta("store", "redis")
		wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "primary store unavailable")

		s.True(errors.IsUnavailable(wrapped))
		s.Equal("redis", wrapped.Meta["store"])
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "nothing"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestIsMatchesCode() {
	err := errors.Wrap(errors.NotFound("a"), "b")
	s.True(errors.Is(err, errors.NotFound("other message")))
	s.False(errors.Is(err, errors.Internal("a")))
}

func (s *ErrorsTestSuite) TestRetryable() {
	s.True(errors.CodeUnavailable.Retryable())
	s.True(errors.CodeInternal.Retryable())
	s.False(errors.CodeNotFound.Retryable())
	s.False(errors.CodeInvalidArgument.Retryable())
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	s.Run("code and meta survive", func() {
		original := errors.NotFound("game state not found").
			WithMeta("user_id", "user_1").
			WithMeta("attempts", 2)

		grpcErr := errors.ToGRPCError(original)
		st, ok := status.FromError(grpcErr)
		s.Require().True(ok)
		s.Equal(codes.NotFound, st.Code())
		s.Equal("game state not found", st.Message())

		back := errors.FromGRPCError(grpcErr)
		s.True(errors.IsNotFound(back))
		s.Equal("user_1", errors.GetMeta(back)["user_id"])
		s.Equal(float64(2), errors.GetMeta(back)["attempts"])
	})

	s.Run("unsupported meta values are stringified", func() {
		original := errors.InvalidArgument("bad").WithMeta("fields", []string{"a", "b"})

		back := errors.FromGRPCError(errors.ToGRPCError(original))
		s.Equal("[a b]", errors.GetMeta(back)["fields"])
	})

	s.Run("plain errors become internal", func() {
		st := errors.GRPCStatus(fmt.Errorf("boom"))
		s.Equal(codes.Internal, st.Code())
	})

	s.Run("status errors pass through", func() {
		in := status.Error(codes.Unavailable, "down")
		s.Equal(in, errors.ToGRPCError(in))
	})

	s.Run("nil", func() {
		s.Nil(errors.ToGRPCError(nil))
		s.Nil(errors.FromGRPCError(nil))
		s.Equal(codes.OK, errors.GRPCStatus(nil).Code())
	})
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	for _, code := range []errors.Code{
		errors.CodeCanceled, errors.CodeInvalidArgument, errors.CodeNotFound,
		errors.CodeAlreadyExists, errors.CodeInternal, errors.CodeUnavailable,
		errors.CodeDataLoss,
	} {
		s.Run(code.String(), func() {
			back := errors.FromGRPCError(errors.ToGRPCError(errors.New(code, "x")))
			s.Equal(code, errors.GetCode(back))
		})
	}
}
