package formula

import (
	"slices"
	"testing"

	"github.com/MassimoLauria/cnfgen/pkg/errors"
)

func TestCountingPrinciple(t *testing.T) {
	f, err := CountingPrinciple(4, 2)
	if err != nil {
		t.Fatalf("CountingPrinciple(4, 2) error = %v", err)
	}
	// one variable per 2-subset of {1,2,3,4}
	if got := f.NumVariables(); got != 6 {
		t.Fatalf("NumVariables() = %d, want 6", got)
	}
	if got := f.Label(1); got != "Y_{1,2}" {
		t.Errorf("Label(1) = %q, want %q", got, "Y_{1,2}")
	}
	if got := f.Label(6); got != "Y_{3,4}" {
		t.Errorf("Label(6) = %q, want %q", got, "Y_{3,4}")
	}

	// element 1 lies in subsets 1, 2 and 3: at-most pairs then at-least
	wantFirst := [][]int{
		{-1, -2}, {-1, -3}, {-2, -3}, {1, 2, 3},
	}
	got := f.Clauses()[:4]
	if !slices.EqualFunc(got, wantFirst, slices.Equal) {
		t.Errorf("first clauses = %v, want %v", got, wantFirst)
	}
	// 4 elements, each in C(3,1)=3 subsets: 3 at-most pairs + 1 at-least
	if got := f.NumClauses(); got != 16 {
		t.Errorf("NumClauses() = %d, want 16", got)
	}
}

func TestCountingPrinciple_InvalidParameters(t *testing.T) {
	if _, err := CountingPrinciple(2, 3); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("CountingPrinciple(2, 3) error = %v, want INVALID_PARAMETER", err)
	}
	if _, err := CountingPrinciple(4, 0); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("CountingPrinciple(4, 0) error = %v, want INVALID_PARAMETER", err)
	}
}
