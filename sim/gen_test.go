package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeamGenFixed(t *testing.T) {
	beam := BeamConfig{
		ID: 13, PT: 4000, Eta: 1.25, Phi: 0.5,
		T: 1, X: 2, Y: 3, Z: 4,
	}
	require.NoError(t, beam.CheckInit("fixed"))

	g := NewBeamGen(beam)
	p := g.Generate(rand.New(rand.NewSource(99)))

	assert.Equal(t, 13, p.ID)
	assert.InDelta(t, 4000, p.Pt(), 1e-6)
	assert.InDelta(t, 1.25, p.Eta(), 1e-9)
	assert.InDelta(t, 0.5, p.Phi(), 1e-9)
	assert.Equal(t, 1.0, p.T)
	assert.Equal(t, 2.0, p.X)
	assert.Equal(t, 3.0, p.Y)
	assert.Equal(t, 4.0, p.Z)
}

func TestBeamGenRange(t *testing.T) {
	beam := BeamConfig{
		ID:    -13,
		PTMin: 500, PTMax: 5000,
		EtaMin: -2, EtaMax: 2,
		PhiMin: -math.Pi, PhiMax: math.Pi,
	}
	require.NoError(t, beam.CheckInit("range"))

	g := NewBeamGen(beam)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		p := g.Generate(rng)
		if pt := p.Pt(); pt < 500-1e-6 || pt > 5000+1e-6 {
			t.Errorf("%d) pt = %g outside [500, 5000]", i+1, pt)
		}
		if eta := p.Eta(); eta < -2-1e-9 || eta > 2+1e-9 {
			t.Errorf("%d) eta = %g outside [-2, 2]", i+1, eta)
		}
		if phi := p.Phi(); phi < -math.Pi-1e-9 || phi > math.Pi+1e-9 {
			t.Errorf("%d) phi = %g outside [-pi, pi]", i+1, phi)
		}
	}
}

// Equal seeds give identical particles regardless of when the generator
// was built.
func TestBeamGenReproducible(t *testing.T) {
	beam := BeamConfig{
		ID:    13,
		PTMin: 500, PTMax: 5000,
		EtaMin: -2, EtaMax: 2,
	}
	require.NoError(t, beam.CheckInit("repro"))

	g := NewBeamGen(beam)
	a := g.Generate(rand.New(rand.NewSource(3)))
	b := NewBeamGen(beam).Generate(rand.New(rand.NewSource(3)))
	c := g.Generate(rand.New(rand.NewSource(4)))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBeamGenKE(t *testing.T) {
	beam := BeamConfig{
		ID: 13, PT: 1000,
		EtaMin: -1, EtaMax: 1,
		KE: 20000,
	}
	require.NoError(t, beam.CheckInit("ke"))

	g := NewBeamGen(beam)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		p := g.Generate(rng)
		assert.InDelta(t, 20000, p.KineticEnergy(), 1e-6, "%d)", i+1)
	}
}
