package gap_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/gap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func add2(a, b int) int {
	return a + b
}

func add3(a, b, c int) int {
	return a + b + c
}

func TestBindTrailingHole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(add2, 1, gap.Hole)
	got, err := g.Call(2)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != add2(1, 2) {
		t.Logf("g(2) = %v", got)
		t.Error("expected bind(f, 1, _)(2) to equal f(1, 2)")
	}
}

func TestBindLeadingHoleAndAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(add3, gap.Hole, 2)
	got, err := g.Call(1, 3)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != add3(1, 2, 3) {
		t.Logf("g(1, 3) = %v", got)
		t.Error("expected bind(f, _, b)(a, c) to equal f(a, b, c)")
	}
}

func TestBindWithoutHolesAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(add3, 1)
	got, err := g.Call(2, 3)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != 6 {
		t.Logf("g(2, 3) = %v", got)
		t.Error("expected call-time arguments to append after the bound ones")
	}
}

func TestBindCallTimeHoleIsLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	grab := func(a, b any) any {
		return b
	}
	g := gap.Bind(grab, "bound")
	got, err := g.Call(gap.Hole)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != gap.Hole {
		t.Logf("g(Hole) = %v", got)
		t.Error("expected a call-time hole to arrive as a literal value")
	}
}

func TestBindMissingArgIsAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(add2, gap.Hole, gap.Hole)
	got, err := g.Call(40)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != 40 {
		t.Logf("g(40) = %v", got)
		t.Error("expected the unfilled slot to behave as the absent value, zero")
	}
}

func TestBindCallsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(add2, gap.Hole, 10)
	first, _ := g.Call(1)
	second, _ := g.Call(2)
	if first != 11 || second != 12 {
		t.Logf("first = %v, second = %v", first, second)
		t.Error("expected repeated calls of the same bound function to be independent")
	}
}

func TestBindOverBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	inner := gap.Bind(add3, gap.Hole, 2)
	outer := gap.Bind(inner, 1)
	got, err := outer.Call(3)
	if err != nil {
		t.Fatalf("rebound call failed: %v", err)
	}
	if got != 6 {
		t.Logf("outer(3) = %v", got)
		t.Error("expected binding over a bound function to compose")
	}
}

func TestBindTargetNotCallable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(42, gap.Hole)
	_, err := g.Call(1)
	if err == nil {
		t.Fatal("expected binding a non-function to fail at call time, didn't")
	}
	if !errors.Is(err, gap.ErrNotCallable) {
		t.Logf("err = %v", err)
		t.Error("expected the failure to be ErrNotCallable")
	}
}

func TestBindVariadicTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	sum := func(base int, more ...int) int {
		for _, m := range more {
			base += m
		}
		return base
	}
	g := gap.Bind(sum, gap.Hole, 10)
	got, err := g.Call(1, 100, 1000)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != 1111 {
		t.Logf("g(1, 100, 1000) = %v", got)
		t.Error("expected leftover arguments to flow into the variadic tail")
	}
}

func TestBindLifted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	g := gap.Bind(gap.Lift(add2), gap.Hole, 2)
	got, err := g.Call(40)
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	if got != 42 {
		t.Logf("g(40) = %v", got)
		t.Error("expected a lifted function to bind like a raw one")
	}
}
