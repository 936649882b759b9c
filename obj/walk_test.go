package obj_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/gap/obj"
)

func TestWalkReachesEveryNode(t *testing.T) {
	inner := obj.NewDict()
	inner.Set("n", 1)
	l := obj.NewList("x", inner)
	root := obj.NewDict()
	root.Set("list", l)
	root.Set("scalar", 42)
	//
	count := 0
	err := obj.Walk(root, func(node any) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 3 composite nodes below root, visited %d", count)
	}
}

func TestWalkVisitsSharedNodesOnce(t *testing.T) {
	z := obj.NewDict()
	z.Set("payload", true)
	y := obj.NewDict()
	y.Set("left", z)
	y.Set("right", z)
	//
	count := 0
	obj.Walk(y, func(node any) error {
		count++
		return nil
	})
	if count != 2 {
		t.Errorf("expected the shared node to be visited once, total %d visits", count)
	}
}

func TestWalkTerminatesOnCycle(t *testing.T) {
	x := obj.NewDict()
	x.Set("self", x)
	//
	count := 0
	err := obj.Walk(x, func(node any) error {
		count++
		return nil
	})
	if err != nil || count != 1 {
		t.Errorf("expected one visit on a self-referential node, have %d", count)
	}
}

func TestWalkDescendsInKeyOrder(t *testing.T) {
	first := obj.NewList(1)
	second := obj.NewList(2)
	root := obj.NewDict()
	root.Set("b", second)
	root.Set("a", first)
	//
	var order []any
	obj.Walk(root, func(node any) error {
		order = append(order, node)
		return nil
	})
	if len(order) != 3 || order[1] != first || order[2] != second {
		t.Error("expected children in sorted key order")
	}
}

func TestWalkAbortsOnVisitError(t *testing.T) {
	errStop := errors.New("stop")
	root := obj.NewDict()
	root.Set("a", obj.NewDict())
	root.Set("b", obj.NewDict())
	//
	count := 0
	err := obj.Walk(root, func(node any) error {
		count++
		if count == 2 {
			return errStop
		}
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Errorf("expected the visit error to surface, have %v", err)
	}
	if count != 2 {
		t.Errorf("expected the walk to stop after the failing visit, made %d visits", count)
	}
}

func TestWalkScalarRoot(t *testing.T) {
	count := 0
	err := obj.Walk(42, func(node any) error {
		count++
		return nil
	})
	if err != nil || count != 0 {
		t.Error("expected a scalar root to produce no visits")
	}
}
