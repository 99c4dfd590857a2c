package sim

import (
	"math/rand"

	"github.com/mudrift/mukin/physics"
)

// Generator produces the primary particle of one beam for one event. The
// caller passes the event's random stream so generation stays reproducible
// under any worker scheduling.
type Generator interface {
	Generate(rng *rand.Rand) physics.Particle
}

// BeamGen draws a particle from the kinematic ranges of a checked
// BeamConfig.
type BeamGen struct {
	con BeamConfig
}

func NewBeamGen(con BeamConfig) *BeamGen {
	return &BeamGen{con}
}

func (g *BeamGen) Generate(rng *rand.Rand) physics.Particle {
	p := physics.Particle{BasicParticle: physics.BasicParticle{ID: g.con.ID}}
	p.SetVertexT(g.con.T, g.con.X, g.con.Y, g.con.Z)

	pt := uniform(rng, g.con.PTMin, g.con.PTMax)
	eta := uniform(rng, g.con.EtaMin, g.con.EtaMax)
	phi := uniform(rng, g.con.PhiMin, g.con.PhiMax)
	p.SetPtEtaPhi(pt, eta, phi)

	if g.con.KE > 0 {
		p.SetKineticEnergy(g.con.KE)
	}

	return p
}

// uniform draws from [lo, hi). A degenerate range costs no draw, so pinned
// quantities do not disturb the stream of the varying ones.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + (hi-lo)*rng.Float64()
}
