package obj_test

import (
	"testing"

	"github.com/npillmayer/gap"
	"github.com/npillmayer/gap/check"
	"github.com/npillmayer/gap/obj"
	"github.com/npillmayer/gap/seq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func person(name string, age int) *obj.Dict {
	d := obj.NewDict()
	d.Set("name", name)
	d.Set("age", age)
	return d
}

func TestGetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.obj")
	defer teardown()
	//
	name := obj.Getter("name")
	if got := name(person("Ada", 36)); got != "Ada" {
		t.Errorf("expected getter to read 'Ada', have %v", got)
	}
	if name(nil) != nil {
		t.Error("expected a getter on a nil dictionary to read nil")
	}
	if name(obj.NewDict()) != nil {
		t.Error("expected a getter on a missing key to read nil")
	}
}

func TestItemAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.obj")
	defer teardown()
	//
	second := obj.ItemAt(1)
	if got := second(obj.NewList("a", "b", "c")); got != "b" {
		t.Errorf("expected item 'b', have %v", got)
	}
	if second(obj.NewList("a")) != nil {
		t.Error("expected an out-of-range item getter to read nil")
	}
}

func TestPicker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.obj")
	defer teardown()
	//
	public := obj.Picker("name")
	p := public(person("Ada", 36))
	if p.Len() != 1 || p.Get("name") != "Ada" {
		t.Logf("picked = %v", p)
		t.Error("expected the projection to keep the name only")
	}
}

func TestAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.obj")
	defer teardown()
	//
	d := person("Ada", 36)
	rename := obj.Assign("name")(d)
	if err := rename("Grace"); err != nil {
		t.Fatal(err)
	}
	if d.Get("name") != "Grace" {
		t.Errorf("expected the store to write through, name = %v", d.Get("name"))
	}
	//
	obj.Freeze(d)
	if err := rename("Edsger"); err == nil {
		t.Error("expected a store on a frozen dictionary to fail")
	}
}

func TestPredicateBuilders(t *testing.T) {
	people := []*obj.Dict{
		person("Ada", 36),
		person("Grace", 85),
		obj.NewDict(),
	}
	named := seq.Filter(people, obj.HasKey("name"))
	if len(named) != 2 {
		t.Errorf("expected 2 dictionaries with a name, have %d", len(named))
	}
	ada := seq.Filter(people, check.And(obj.HasKey("age"), obj.ValueIs("name", "Ada")))
	if len(ada) != 1 || ada[0].Get("age") != 36 {
		t.Error("expected the combined predicate to single out Ada")
	}
}

func TestDynamicSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	slice := gap.Method("Slice")
	got, err := slice.Call(obj.NewList(1, 2, 3, 4), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	l, ok := got.(*obj.List)
	if !ok {
		t.Fatalf("expected a list back, have %T", got)
	}
	if l.Len() != 2 || l.At(0) != 2 || l.At(1) != 3 {
		t.Logf("sliced = %v", l)
		t.Error("expected the dynamic slice to yield [2 3]")
	}
}

func TestDynamicSliceOnStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gap.core")
	defer teardown()
	//
	slice := gap.Method("Slice")
	got, err := slice.Call(obj.Str("functional"), 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != obj.Str("fun") {
		t.Errorf("expected 'fun', have %v", got)
	}
}
