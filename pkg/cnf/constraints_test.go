package cnf

import (
	"slices"
	"testing"
)

func clausesEqual(a, b [][]int) bool {
	return slices.EqualFunc(a, b, slices.Equal)
}

func TestParityClauses(t *testing.T) {
	got := ParityClauses([]int{-1, 2}, false)
	want := [][]int{{1, 2}, {-1, -2}}
	if !clausesEqual(got, want) {
		t.Errorf("ParityClauses([-1,2], even) = %v, want %v", got, want)
	}

	got = ParityClauses([]int{1, 2}, true)
	want = [][]int{{1, 2}, {-1, -2}}
	if !clausesEqual(got, want) {
		t.Errorf("ParityClauses([1,2], odd) = %v, want %v", got, want)
	}
}

func TestParityClauses_Empty(t *testing.T) {
	if got := ParityClauses(nil, false); got != nil {
		t.Errorf("ParityClauses(nil, even) = %v, want none", got)
	}
	got := ParityClauses(nil, true)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("ParityClauses(nil, odd) = %v, want one empty clause", got)
	}
}

func TestAtLeastClauses(t *testing.T) {
	got := AtLeastClauses([]int{-1, 2, -3}, 1)
	want := [][]int{{-1, 2, -3}}
	if !clausesEqual(got, want) {
		t.Errorf("AtLeastClauses(_, 1) = %v, want %v", got, want)
	}

	got = AtLeastClauses([]int{-1, 2, -3}, 3)
	want = [][]int{{-1}, {2}, {-3}}
	if !clausesEqual(got, want) {
		t.Errorf("AtLeastClauses(_, 3) = %v, want %v", got, want)
	}

	if got := AtLeastClauses([]int{1, 2}, 0); got != nil {
		t.Errorf("AtLeastClauses(_, 0) = %v, want none", got)
	}
	got = AtLeastClauses([]int{1, 2}, 5)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("AtLeastClauses(_, 5) = %v, want one empty clause", got)
	}
}

func TestAtMostClauses(t *testing.T) {
	got := AtMostClauses([]int{1, 2, 3}, 1)
	want := [][]int{{-1, -2}, {-1, -3}, {-2, -3}}
	if !clausesEqual(got, want) {
		t.Errorf("AtMostClauses(_, 1) = %v, want %v", got, want)
	}
	if got := AtMostClauses([]int{1, 2}, 2); got != nil {
		t.Errorf("AtMostClauses(_, 2) = %v, want none", got)
	}
}

func TestExactlyClauses_AtMostFirst(t *testing.T) {
	got := ExactlyClauses([]int{1, 2, 3}, 1)
	want := [][]int{{-1, -2}, {-1, -3}, {-2, -3}, {1, 2, 3}}
	if !clausesEqual(got, want) {
		t.Errorf("ExactlyClauses(_, 1) = %v, want %v", got, want)
	}
}

func TestCombinations(t *testing.T) {
	got := Combinations(4, 2)
	want := [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	if !clausesEqual(got, want) {
		t.Errorf("Combinations(4, 2) = %v, want %v", got, want)
	}
	if got := Combinations(3, 0); len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Combinations(3, 0) = %v, want one empty subset", got)
	}
	if got := Combinations(2, 3); got != nil {
		t.Errorf("Combinations(2, 3) = %v, want none", got)
	}
}
