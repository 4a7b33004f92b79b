package fader

import (
	"bytes"
	"strings"
	"testing"
)

func newTestManager() *Manager {
	return NewManager(NewClock(Discard()), WithDiagnostics(Discard()))
}

func names(faders []*Fader) []string {
	out := make([]string, len(faders))
	for i, f := range faders {
		out[i] = f.Name()
	}
	return out
}

func sameNames(got []*Fader, want ...string) bool {
	n := names(got)
	if len(n) != len(want) {
		return false
	}
	for i := range want {
		if n[i] != want[i] {
			return false
		}
	}
	return true
}

// --- Registration ---

func TestManagerNewFaderRegisters(t *testing.T) {
	m := newTestManager()
	f := m.NewFader(newFakeTarget("menu"), FaderOptions{Tags: []string{"ui"}})
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	if f.clock != m.Clock() {
		t.Error("fader should run on the manager's clock")
	}
	if got := m.Names(); len(got) != 1 || got[0] != "menu" {
		t.Errorf("Names = %v", got)
	}
	if got := m.Tags(); len(got) != 1 || got[0] != "ui" {
		t.Errorf("Tags = %v", got)
	}
}

func TestManagerAddIdempotent(t *testing.T) {
	m := newTestManager()
	f := NewFader(newFakeTarget("a"), FaderOptions{Tags: []string{"t"}})
	m.Add(f)
	m.Add(f)
	if m.Len() != 1 || len(m.Resolve(Tag("t"))) != 1 {
		t.Error("adding twice should register once")
	}
}

func TestManagerAddFillsClock(t *testing.T) {
	m := newTestManager()
	f := NewFader(newFakeTarget("a"), FaderOptions{Diagnostics: Discard()})
	m.Add(f)
	f.Hide(Options{}.WithTime(1), nil)
	if m.Clock().Len() != 1 {
		t.Error("fader added without a clock should pick up the manager's")
	}
}

func TestManagerRemove(t *testing.T) {
	m := newTestManager()
	a := m.NewFader(newFakeTarget("a"), FaderOptions{Tags: []string{"ui"}})
	m.NewFader(newFakeTarget("b"), FaderOptions{Tags: []string{"ui"}})

	m.Remove(a)
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if got := m.Resolve(Name("a")); len(got) != 0 {
		t.Error("removed fader should not resolve by name")
	}
	if got := m.Resolve(Tag("ui")); !sameNames(got, "b") {
		t.Errorf("Tag(ui) = %v, want [b]", names(got))
	}
	if got := m.Names(); len(got) != 1 {
		t.Errorf("empty name index should be dropped, Names = %v", got)
	}
}

// --- Resolution ---

func TestResolveUndefinedWarns(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(NewClock(Discard()), WithDiagnostics(NewDiagnostics(&buf)))
	m.NewFader(newFakeTarget("a"), FaderOptions{})

	if got := m.Resolve(Identifier{}); got != nil {
		t.Errorf("Resolve(undefined) = %v, want nil", names(got))
	}
	if !strings.Contains(buf.String(), "identifier undefined") {
		t.Errorf("warning = %q", buf.String())
	}
	// Dispatching to nothing is a no-op.
	called := false
	m.Show(Identifier{}, Options{}, func() { called = true })
	if called {
		t.Error("callback should not run for an empty resolution")
	}
}

func TestResolveKeyUnionsNameAndTag(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("menu"), FaderOptions{Tags: []string{"ui"}})
	m.NewFader(newFakeTarget("panel"), FaderOptions{Tags: []string{"menu"}})
	m.NewFader(newFakeTarget("other"), FaderOptions{})

	if got := m.Resolve(Key("menu")); !sameNames(got, "menu", "panel") {
		t.Errorf("Key(menu) = %v, want [menu panel]", names(got))
	}
	if got := m.Resolve(Name("menu")); !sameNames(got, "menu") {
		t.Errorf("Name(menu) = %v", names(got))
	}
	if got := m.Resolve(Tag("menu")); !sameNames(got, "panel") {
		t.Errorf("Tag(menu) = %v", names(got))
	}
}

func TestResolveKeyDedupsFaderNamedAndTagged(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("x"), FaderOptions{Tags: []string{"x"}})
	if got := m.Resolve(Key("x")); len(got) != 1 {
		t.Errorf("Key(x) = %v, want one fader", names(got))
	}
}

func TestResolveDuplicateNames(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("item"), FaderOptions{})
	m.NewFader(newFakeTarget("item"), FaderOptions{})
	if got := m.Resolve(Name("item")); len(got) != 2 {
		t.Errorf("Name(item) resolved %d, want 2", len(got))
	}
}

func TestResolveAllDedupsByTarget(t *testing.T) {
	m := newTestManager()
	shared := newFakeTarget("shared")
	m.NewFader(shared, FaderOptions{Name: "one"})
	m.NewFader(shared, FaderOptions{Name: "two"})
	m.NewFader(newFakeTarget("solo"), FaderOptions{})

	if got := m.Resolve(All()); !sameNames(got, "one", "solo") {
		t.Errorf("All = %v, want [one solo]", names(got))
	}
}

func TestResolveAllGroupsByName(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("x1"), FaderOptions{Name: "x"})
	m.NewFader(newFakeTarget("y1"), FaderOptions{Name: "y"})
	last := m.NewFader(newFakeTarget("x2"), FaderOptions{Name: "x"})

	got := m.Resolve(All())
	if !sameNames(got, "x", "x", "y") {
		t.Fatalf("All = %v, want [x x y]", names(got))
	}
	if got[1] != last {
		t.Error("second x should be the later registration")
	}

	m.Remove(got[0])
	m.Remove(last)
	m.NewFader(newFakeTarget("x3"), FaderOptions{Name: "x"})
	if got := m.Resolve(All()); !sameNames(got, "y", "x") {
		t.Errorf("after re-adding x, All = %v, want [y x]", names(got))
	}
}

func TestResolveManyUnion(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("a"), FaderOptions{Tags: []string{"ui"}})
	m.NewFader(newFakeTarget("b"), FaderOptions{Tags: []string{"ui"}})
	m.NewFader(newFakeTarget("c"), FaderOptions{})

	got := m.Resolve(Many(Key("c"), Tag("ui"), Name("a")))
	if !sameNames(got, "c", "a", "b") {
		t.Errorf("Many = %v, want [c a b]", names(got))
	}
	if got := m.Resolve(Keys("a", "a", "b")); !sameNames(got, "a", "b") {
		t.Errorf("Keys = %v, want [a b]", names(got))
	}
}

func TestResolveRef(t *testing.T) {
	m := newTestManager()
	shared := newFakeTarget("shared")
	m.NewFader(shared, FaderOptions{Name: "fade"})
	m.NewFader(shared, FaderOptions{Name: "scale"})
	m.NewFader(newFakeTarget("other"), FaderOptions{})

	if got := m.Resolve(Ref(shared)); !sameNames(got, "fade", "scale") {
		t.Errorf("Ref = %v, want [fade scale]", names(got))
	}
	if got := m.Resolve(Ref(newFakeTarget("unregistered"))); len(got) != 0 {
		t.Errorf("Ref(unregistered) = %v, want none", names(got))
	}
	if got := m.Resolve(Ref(nil)); len(got) != 0 {
		t.Error("Ref(nil) should resolve to nothing")
	}
}

func TestResolveUnknownKey(t *testing.T) {
	m := newTestManager()
	if got := m.Resolve(Key("nope")); len(got) != 0 {
		t.Errorf("Key(nope) = %v", names(got))
	}
}

// --- Dispatch ---

func TestManagerBatchFiresCallbacksOnce(t *testing.T) {
	m := newTestManager()
	targets := []*fakeTarget{newFakeTarget("a"), newFakeTarget("b"), newFakeTarget("c")}
	for _, tg := range targets {
		m.NewFader(tg, FaderOptions{Tags: []string{"ui"}})
	}

	var done, started, completed int
	opts := Instant().
		WithOnStart(func() { started++ }).
		WithOnComplete(func() { completed++ })
	m.Hide(Tag("ui"), opts, func() { done++ })

	if done != 1 || started != 1 || completed != 1 {
		t.Errorf("done=%d started=%d completed=%d, want 1 each", done, started, completed)
	}
	for _, tg := range targets {
		if tg.alpha != 0 {
			t.Errorf("%s alpha = %f, want 0", tg.name, tg.alpha)
		}
	}
}

func TestManagerBatchTimedCallbackOnce(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("fast"), FaderOptions{})
	m.NewFader(newFakeTarget("slow"), FaderOptions{})

	done := 0
	m.Hide(Keys("fast", "slow"), Options{}.WithTime(0.5), func() { done++ })
	tickN(m.Clock(), 4, 0.25)
	if done != 1 {
		t.Errorf("done = %d, want 1", done)
	}
}

func TestManagerSingleFaderGetsOptionsUntouched(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("solo"), FaderOptions{})
	var started, completed, done bool
	opts := Instant().
		WithOnStart(func() { started = true }).
		WithOnComplete(func() { completed = true })
	m.Show(Key("solo"), opts, func() { done = true })
	if !started || !completed || !done {
		t.Errorf("started=%v completed=%v done=%v, want all true", started, completed, done)
	}
}

func TestManagerToggleEachOnOwnIntent(t *testing.T) {
	m := newTestManager()
	shown := m.NewFader(newFakeTarget("shown"), FaderOptions{})
	hidden := m.NewFader(newFakeTarget("hidden"), FaderOptions{Hidden: true})

	m.Toggle(All(), Instant(), nil)
	if shown.VisibilityIntent() {
		t.Error("visible fader should hide on toggle")
	}
	if !hidden.VisibilityIntent() {
		t.Error("hidden fader should show on toggle")
	}
}

func TestManagerSetters(t *testing.T) {
	m := newTestManager()
	a := newFakeTarget("a")
	b := newFakeTarget("b")
	m.NewFader(a, FaderOptions{Tags: []string{"ui"}})
	m.NewFader(b, FaderOptions{Tags: []string{"ui"}})

	m.SetAlpha(Tag("ui"), 0.25)
	if a.alpha != 0.25 || b.alpha != 0.25 {
		t.Errorf("alphas = %f, %f", a.alpha, b.alpha)
	}
	m.SetScale(Key("a"), Vec3{3, 3, 3}, LocalityLocal)
	if a.scale != (Vec3{3, 3, 3}) || b.scale != Vec3One {
		t.Errorf("scales = %+v, %+v", a.scale, b.scale)
	}
	m.SetRect(Key("b"), Rect{Left: 0, Right: 0.5})
	if b.anchors.Left != 0 || b.anchors.Right != 0.5 {
		t.Errorf("anchors = %+v", b.anchors)
	}
}

func TestManagerStop(t *testing.T) {
	m := newTestManager()
	a := m.NewFader(newFakeTarget("a"), FaderOptions{})
	m.Hide(Key("a"), Options{}.WithTime(1), nil)
	m.Stop(Key("a"))
	if a.IsAnimating() || m.Clock().Len() != 0 {
		t.Error("Stop should cancel everything")
	}
}

func TestManagerEventSink(t *testing.T) {
	var got []Event
	sink := EventSinkFunc(func(e Event) { got = append(got, e) })
	m := NewManager(NewClock(Discard()), WithDiagnostics(Discard()), WithEventSink(sink))
	m.NewFader(newFakeTarget("a"), FaderOptions{})
	m.Hide(Key("a"), Instant(), nil)
	if len(got) != 2 || got[0].Type != EventStarted || got[1].Type != EventCompleted {
		t.Errorf("events = %+v", got)
	}

	got = nil
	m.SetEventSink(nil)
	m.Show(Key("a"), Instant(), nil)
	if len(got) != 0 {
		t.Error("cleared sink should receive nothing")
	}
}

func TestManagerClose(t *testing.T) {
	m := newTestManager()
	m.NewFader(newFakeTarget("a"), FaderOptions{Tags: []string{"ui"}})
	m.Hide(All(), Options{}.WithTime(1), nil)
	m.Close()
	if m.Len() != 0 || len(m.Names()) != 0 || len(m.Tags()) != 0 {
		t.Error("Close should empty the indices")
	}
	if m.Clock().Len() != 0 {
		t.Error("Close should stop in-flight animations")
	}
	// Reusable afterwards.
	m.NewFader(newFakeTarget("b"), FaderOptions{})
	if m.Len() != 1 {
		t.Error("manager should be reusable after Close")
	}
}

func TestManagerWithEasings(t *testing.T) {
	var buf bytes.Buffer
	lib := EasingTable{}
	m := NewManager(NewClock(Discard()), WithDiagnostics(NewDiagnostics(&buf)), WithEasings(lib))
	m.NewFader(newFakeTarget("a"), FaderOptions{})
	m.Hide(Key("a"), Instant(), nil)
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("custom empty library should miss QuadraticOut, warning = %q", buf.String())
	}
}

// --- Identifier ---

func TestIdentifierString(t *testing.T) {
	tests := []struct {
		id   Identifier
		want string
	}{
		{Identifier{}, "undefined"},
		{All(), "all"},
		{Key("menu"), `"menu"`},
		{Name("menu"), `name:"menu"`},
		{Tag("ui"), `tag:"ui"`},
		{Ref(newFakeTarget("panel")), `ref:"panel"`},
		{Keys("a", "b"), `["a", "b"]`},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIdentifierIsZero(t *testing.T) {
	if !(Identifier{}).IsZero() {
		t.Error("zero Identifier should report IsZero")
	}
	if Key("").IsZero() {
		t.Error("Key(\"\") is defined, not zero")
	}
}
