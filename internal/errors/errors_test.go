package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestEngineError_Error(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		message   string
		cause     error
		wantParts []string
	}{
		{
			name:      "with cause",
			code:      PatternInvalid,
			message:   "mechanism 'mech:rate_cut_bets' pattern 2",
			cause:     errors.New("missing closing ]"),
			wantParts: []string{"PATTERN_INVALID", "mech:rate_cut_bets", "missing closing ]"},
		},
		{
			name:      "without cause",
			code:      UnknownAsset,
			message:   "fallback asset 'market_general' is not defined",
			cause:     nil,
			wantParts: []string{"UNKNOWN_ASSET", "market_general"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err *EngineError
			if tt.cause != nil {
				err = Wrap(tt.code, tt.cause, tt.message)
			} else {
				err = New(tt.code, tt.message)
			}
			got := err.Error()
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

func TestEngineError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(LexiconInvalid, cause, "bad lexicon")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(InputMissing, "no such file")); got != InputMissing {
		t.Errorf("CodeOf(EngineError) = %v, want %v", got, InputMissing)
	}
	if got := CodeOf(errors.New("plain")); got != InternalError {
		t.Errorf("CodeOf(plain error) = %v, want %v", got, InternalError)
	}
}

func TestWithDetails(t *testing.T) {
	err := New(LexiconInvalid, "duplicate id").WithDetails(map[string]string{"id": "gold"})
	if err.Details == nil {
		t.Error("Details should be set")
	}
}
