package life

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuiltinPatterns(t *testing.T) {
	glider, ok := Lookup("glider")
	if !ok {
		t.Fatal("glider not registered")
	}
	if len(glider.Offsets) != 5 {
		t.Fatalf("glider has %d offsets, expected 5", len(glider.Offsets))
	}

	pulsar, ok := Lookup("pulsar")
	if !ok {
		t.Fatal("pulsar not registered")
	}
	if len(pulsar.Offsets) != 48 {
		t.Fatalf("pulsar has %d offsets, expected 48", len(pulsar.Offsets))
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"GLIDER", "Glider", "gLiDeR", "PULSAR"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("Lookup(%q) missed", name)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("Names() = %v, expected at least glider and pulsar", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["glider"] || !found["pulsar"] {
		t.Fatalf("Names() = %v, missing a builtin", names)
	}
}

func TestDeployUnknownPattern(t *testing.T) {
	u := newEmpty(t, 8, 8)
	u.ToggleCell(2, 2)
	before := append([]byte(nil), u.Cells()...)

	err := u.Deploy("spaceship", 4, 4)
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Deploy of unknown name returned %v, expected ErrUnknownPattern", err)
	}
	if !bytes.Equal(u.Cells(), before) {
		t.Fatal("failed deploy mutated the grid")
	}
}

func TestPulsarOscillatesWithPeriodThree(t *testing.T) {
	u := newEmpty(t, 17, 17)
	if err := u.Deploy("pulsar", 8, 8); err != nil {
		t.Fatal(err)
	}
	start := append([]byte(nil), u.Cells()...)
	if u.Population() != 48 {
		t.Fatalf("population %d after deploy, expected 48", u.Population())
	}

	pops := []int{56, 72, 48}
	for i, want := range pops {
		u.Tick()
		if u.Population() != want {
			t.Fatalf("population %d at tick %d, expected %d", u.Population(), i+1, want)
		}
	}
	if !bytes.Equal(u.Cells(), start) {
		t.Fatal("pulsar did not return to its initial shape after three ticks")
	}
}
