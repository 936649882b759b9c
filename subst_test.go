package gap

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFillWithoutHoles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	slots := []any{"a", "b"}
	vector := fill(slots, []any{"c", "d"})
	if len(vector) != 4 {
		t.Fatalf("expected final vector of length 4, got %d", len(vector))
	}
	for i, want := range []any{"a", "b", "c", "d"} {
		if vector[i] != want {
			t.Errorf("expected vector[%d] to be %v, is %v", i, want, vector[i])
		}
	}
}

func TestFillConsumesArgsInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	slots := []any{Hole, "b", Hole}
	vector := fill(slots, []any{"x", "y", "z"})
	for i, want := range []any{"x", "b", "y", "z"} {
		if vector[i] != want {
			t.Errorf("expected vector[%d] to be %v, is %v", i, want, vector[i])
		}
	}
}

func TestFillRunsOutOfArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	vector := fill([]any{"a", Hole}, nil)
	if len(vector) != 2 {
		t.Fatalf("expected vector of length 2, got %d", len(vector))
	}
	if vector[1] != nil {
		t.Logf("vector = %v", vector)
		t.Error("expected unfilled hole to resolve to the absent value, didn't")
	}
}

func TestFillKeepsSlotsIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	slots := []any{Hole, "b"}
	_ = fill(slots, []any{"first"})
	vector := fill(slots, []any{"second"})
	if !isHole(slots[0]) {
		t.Error("expected slot list to survive a call unchanged, didn't")
	}
	if vector[0] != "second" {
		t.Logf("vector = %v", vector)
		t.Error("expected second call to resolve independently of the first")
	}
}

func TestFillTreatsArgHolesAsValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	vector := fill([]any{"a"}, []any{Hole})
	if !isHole(vector[1]) {
		t.Logf("vector = %v", vector)
		t.Error("expected a call-time hole to pass through as a literal value")
	}
}

func TestMergeFillsEarliestGaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	//tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	slots := merge([]any{Hole, 2}, []any{1, 3})
	for i, want := range []any{1, 2, 3} {
		if slots[i] != want {
			t.Errorf("expected slot[%d] to be %v, is %v", i, want, slots[i])
		}
	}
}

func TestMergeHoleArgKeepsSlotOpen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	//tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	slots := merge([]any{Hole, 2}, []any{Hole, 3})
	if !isHole(slots[0]) {
		t.Logf("slots = %v", slots)
		t.Error("expected a hole argument to keep the slot open")
	}
	if slots[2] != 3 {
		t.Logf("slots = %v", slots)
		t.Error("expected the leftover argument to append, didn't")
	}
}

func TestMergeAppendsFreshGaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	slots := merge(nil, []any{1, Hole})
	if len(slots) != 2 || !isHole(slots[1]) {
		t.Logf("slots = %v", slots)
		t.Error("expected appended holes to open new slots")
	}
	if gaps(slots) != 1 {
		t.Errorf("expected 1 open gap, counted %d", gaps(slots))
	}
}
