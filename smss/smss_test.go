package smss_test

import (
	"errors"
	"testing"

	"github.com/dshevtsov/jssp-sb/smss"
)

func TestBruteForce_MinimizesLmax(t *testing.T) {
	// Two operations: op0 has a late release but short tail; op1 is ready
	// immediately but has a long tail. Running op1 first minimizes Lmax.
	ops := []smss.Operation{
		{Index: 0, Head: 5, Proc: 1, Tail: 0},
		{Index: 1, Head: 0, Proc: 2, Tail: 10},
	}
	res, err := smss.BruteForce(ops, smss.DefaultBruteForceLimit)
	if err != nil {
		t.Fatalf("BruteForce: %v", err)
	}
	// order [1,0]: t=0->2 (op1 starts at max(0,0)=0, ends 2, Lmax=2+10=12),
	// then op0 starts at max(2,5)=5, ends 6, Lmax=max(12,6)=12.
	// order [0,1]: op0 starts at 5, ends 6, Lmax=6; op1 starts at max(6,0)=6,
	// ends 8, Lmax=max(6,8+10)=18. So [1,0] wins with Lmax=12.
	if res.Lmax != 12 {
		t.Errorf("Lmax = %d; want 12", res.Lmax)
	}
	if len(res.Order) != 2 || res.Order[0] != 1 || res.Order[1] != 0 {
		t.Errorf("Order = %v; want [1 0]", res.Order)
	}
}

func TestBruteForce_TieBreakLexicographic(t *testing.T) {
	// Identical operations in every respect except index; any order gives
	// the same Lmax, so the lexicographically smallest index order wins.
	ops := []smss.Operation{
		{Index: 2, Head: 0, Proc: 1, Tail: 0},
		{Index: 0, Head: 0, Proc: 1, Tail: 0},
		{Index: 1, Head: 0, Proc: 1, Tail: 0},
	}
	res, err := smss.BruteForce(ops, smss.DefaultBruteForceLimit)
	if err != nil {
		t.Fatalf("BruteForce: %v", err)
	}
	want := []int{0, 1, 2}
	for i, idx := range want {
		if res.Order[i] != idx {
			t.Fatalf("Order = %v; want %v", res.Order, want)
		}
	}
}

func TestBruteForce_TooManyOperations(t *testing.T) {
	ops := make([]smss.Operation, 3)
	_, err := smss.BruteForce(ops, 2)
	if !errors.Is(err, smss.ErrTooManyOperations) {
		t.Errorf("BruteForce() error = %v; want ErrTooManyOperations", err)
	}
}

func TestBruteForce_Empty(t *testing.T) {
	res, err := smss.BruteForce(nil, smss.DefaultBruteForceLimit)
	if err != nil {
		t.Fatalf("BruteForce(nil): %v", err)
	}
	if res.Lmax != 0 || len(res.Order) != 0 {
		t.Errorf("BruteForce(nil) = %+v; want zero Result", res)
	}
}

func TestNaive_PreservesInputOrderAndSumsDurations(t *testing.T) {
	ops := []smss.Operation{
		{Index: 5, Head: 100, Proc: 3, Tail: 100},
		{Index: 1, Head: 0, Proc: 4, Tail: 0},
	}
	res := smss.Naive(ops)
	if len(res.Order) != 2 || res.Order[0] != 5 || res.Order[1] != 1 {
		t.Errorf("Naive Order = %v; want [5 1]", res.Order)
	}
	if res.Lmax != 7 {
		t.Errorf("Naive Lmax = %d; want 7", res.Lmax)
	}
}

func TestSolveWithLimit_DispatchesToNaiveAboveLimit(t *testing.T) {
	ops := []smss.Operation{
		{Index: 0, Head: 0, Proc: 1, Tail: 0},
		{Index: 1, Head: 0, Proc: 2, Tail: 0},
		{Index: 2, Head: 0, Proc: 3, Tail: 0},
	}
	res := smss.SolveWithLimit(ops, 2)
	want := smss.Naive(ops)
	if res.Lmax != want.Lmax {
		t.Errorf("SolveWithLimit above the cutoff should fall back to Naive: got Lmax=%d, want %d", res.Lmax, want.Lmax)
	}
}

func TestSolveWithLimit_ExactWithinLimit(t *testing.T) {
	ops := []smss.Operation{
		{Index: 0, Head: 5, Proc: 1, Tail: 0},
		{Index: 1, Head: 0, Proc: 2, Tail: 10},
	}
	res := smss.SolveWithLimit(ops, smss.DefaultBruteForceLimit)
	if res.Lmax != 12 {
		t.Errorf("SolveWithLimit within the cutoff should be exact: got Lmax=%d, want 12", res.Lmax)
	}
}
