package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidClause, "literal %d repeated", 7)
	assert.Equal(t, "INVALID_CLAUSE: literal 7 repeated", err.Error())

	wrapped := Wrap(ErrCodeParse, stderrors.New("unexpected EOF"), "reading %s", "g.gml")
	assert.Equal(t, "PARSE_ERROR: reading g.gml: unexpected EOF", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "solver")

	require.ErrorIs(t, err, cause)
	assert.Nil(t, New(ErrCodeInternal, "no cause").Unwrap())
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeTypeMismatch, "expected dag")

	assert.True(t, Is(err, ErrCodeTypeMismatch))
	assert.False(t, Is(err, ErrCodeParse))
	assert.Equal(t, ErrCodeTypeMismatch, GetCode(err))

	// The code survives wrapping with %w by foreign packages.
	outer := fmt.Errorf("loading graph: %w", err)
	assert.True(t, Is(outer, ErrCodeTypeMismatch))

	plain := stderrors.New("plain")
	assert.False(t, Is(plain, ErrCodeTypeMismatch))
	assert.Equal(t, Code(""), GetCode(plain))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "expected dag", UserMessage(New(ErrCodeTypeMismatch, "expected dag")))
	assert.Equal(t, "plain", UserMessage(stderrors.New("plain")))
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"non-negative ok", ValidateNonNegative("pigeons", 0), false},
		{"non-negative fail", ValidateNonNegative("pigeons", -1), true},
		{"positive ok", ValidatePositive("size", 1), false},
		{"positive fail", ValidatePositive("size", 0), true},
		{"probability ok", ValidateProbability("p", 0.5), false},
		{"probability low", ValidateProbability("p", -0.1), true},
		{"probability high", ValidateProbability("p", 1.1), true},
		{"rank ok", ValidateRank(1), false},
		{"rank fail", ValidateRank(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.wantErr {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.True(t, Is(tt.err, ErrCodeInvalidParameter))
		})
	}
}
