package physics

import (
	"testing"

	"github.com/mudrift/mukin/pdg"
)

type fakeTable map[int]pdg.Def

func (t fakeTable) Find(id int) (pdg.Def, bool) {
	d, ok := t[id]
	return d, ok
}

// Id 0 is the "no particle" sentinel and short-circuits before the table,
// even against a table that claims to know it.
func TestLookupSentinel(t *testing.T) {
	defer UseTable(pdg.Builtin())
	UseTable(fakeTable{0: {ID: 0, Name: "ghost", Mass: 999, Charge: 9}})

	if ParticleMass(0) != 0 || ParticleCharge(0) != 0 || ParticleName(0) != "" {
		t.Errorf("sentinel lookup gave (%g, %g, %q)",
			ParticleMass(0), ParticleCharge(0), ParticleName(0))
	}
}

func TestLookupBuiltin(t *testing.T) {
	table := []struct {
		id     int
		name   string
		mass   float64
		charge float64
	}{
		{13, "mu-", 105.6583755, -1},
		{-13, "mu+", 105.6583755, +1},
		{22, "gamma", 0, 0},
		{211, "pi+", 139.57039, +1},
		{130, "kaon0L", 497.611, 0},
		{2212, "proton", 938.27208816, +1},
		{-2212, "anti_proton", 938.27208816, -1},
	}

	for i, test := range table {
		if got := ParticleName(test.id); got != test.name {
			t.Errorf("%d) ParticleName(%d) = %q, not %q",
				i+1, test.id, got, test.name)
		}
		if got := ParticleMass(test.id); got != test.mass {
			t.Errorf("%d) ParticleMass(%d) = %g, not %g",
				i+1, test.id, got, test.mass)
		}
		if got := ParticleCharge(test.id); got != test.charge {
			t.Errorf("%d) ParticleCharge(%d) = %g, not %g",
				i+1, test.id, got, test.charge)
		}
	}
}

// Unknown nonzero ids read off the zero definition.
func TestLookupUnknown(t *testing.T) {
	if ParticleMass(987654) != 0 || ParticleCharge(987654) != 0 ||
		ParticleName(987654) != "" {
		t.Errorf("unknown id gave (%g, %g, %q)",
			ParticleMass(987654), ParticleCharge(987654), ParticleName(987654))
	}
}

func TestUseTable(t *testing.T) {
	defer UseTable(pdg.Builtin())
	UseTable(fakeTable{42: {ID: 42, Name: "dummy", Mass: 1.5, Charge: -2}})

	if ParticleName(42) != "dummy" || ParticleMass(42) != 1.5 ||
		ParticleCharge(42) != -2 {
		t.Errorf("swapped table gave (%g, %g, %q)",
			ParticleMass(42), ParticleCharge(42), ParticleName(42))
	}
	if ParticleName(13) != "" {
		t.Errorf("swapped table still knows id 13 as %q", ParticleName(13))
	}
}
