package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mudrift/mukin/event"
)

// BasicParticle is a species id together with a Cartesian momentum. It is a
// plain value record: the fields may be assigned directly, the setters exist
// for the observables that have no single backing field. None of the setters
// validate their input; NaN momenta or a negative transverse momentum pass
// straight through the arithmetic.
type BasicParticle struct {
	ID         int
	Px, Py, Pz float64 // MeV
}

// Momentum returns the Cartesian momentum vector.
func (p *BasicParticle) Momentum() r3.Vec {
	return r3.Vec{X: p.Px, Y: p.Py, Z: p.Pz}
}

// PMag returns the momentum magnitude.
func (p *BasicParticle) PMag() float64 {
	return r3.Norm(p.Momentum())
}

// PUnit returns the momentum direction. Like r3.Unit, it is NaN-valued for a
// particle at rest; callers guard the zero-momentum case themselves.
func (p *BasicParticle) PUnit() r3.Vec {
	return r3.Unit(p.Momentum())
}

// Pt returns the transverse momentum, recomputed from the Cartesian state
// with the same formula ToTriplet uses. A particle at rest reports 0.
func (p *BasicParticle) Pt() float64 {
	mag := p.PMag()
	if mag == 0 {
		return 0
	}
	return mag / math.Cosh(math.Atanh(p.Px/mag))
}

// Eta returns the pseudorapidity. A particle at rest reports 0; a purely
// longitudinal momentum reports +-Inf.
func (p *BasicParticle) Eta() float64 {
	mag := p.PMag()
	if mag == 0 {
		return 0
	}
	return math.Atanh(p.Px / mag)
}

// Phi returns the azimuthal angle in (-pi, pi]. There is no rest-state
// guard here: at exactly zero momentum atan2(+0, -0) yields +pi.
func (p *BasicParticle) Phi() float64 {
	return math.Atan2(p.Py, -p.Pz)
}

// Triplet returns the momentum as a pseudo-Lorentz triplet.
func (p *BasicParticle) Triplet() PseudoLorentzTriplet {
	return ToTriplet(p.Momentum())
}

// Name returns the species name for the particle's id.
func (p *BasicParticle) Name() string { return ParticleName(p.ID) }

// Charge returns the electric charge for the particle's id.
func (p *BasicParticle) Charge() float64 { return ParticleCharge(p.ID) }

// Mass returns the rest mass for the particle's id.
func (p *BasicParticle) Mass() float64 { return ParticleMass(p.ID) }

// Energy returns the total energy, sqrt(p^2 + m^2).
func (p *BasicParticle) Energy() float64 {
	return math.Hypot(p.PMag(), p.Mass())
}

// KineticEnergy returns the total energy less the rest mass.
func (p *BasicParticle) KineticEnergy() float64 {
	return p.Energy() - p.Mass()
}

// SetP sets the momentum components directly. Every other setter reduces to
// this one.
func (p *BasicParticle) SetP(px, py, pz float64) {
	p.Px = px
	p.Py = py
	p.Pz = pz
}

// SetMomentum sets the momentum from a vector.
func (p *BasicParticle) SetMomentum(mom r3.Vec) {
	p.SetP(mom.X, mom.Y, mom.Z)
}

// SetPt replaces the transverse momentum, holding eta and phi fixed. Unlike
// SetEta and SetPhi this rebuilds the momentum through the full triplet: a
// pT change has no rotation realization independent of the angles.
func (p *BasicParticle) SetPt(pt float64) {
	p.SetPtEtaPhi(pt, p.Eta(), p.Phi())
}

// etaToTheta maps pseudorapidity to the polar angle measured from the
// positive longitudinal axis: pi/2 at eta = 0, tending to 0 as eta -> +Inf
// and to pi as eta -> -Inf.
func etaToTheta(eta float64) float64 {
	sub := 2 * math.Atan(math.Exp(-math.Abs(eta)))
	if eta < 0 {
		return math.Pi - sub
	}
	return sub
}

// rotate2D rotates the pair (x, y) by theta. The usual one-line form loses
// half the significand when theta is small and the terms nearly cancel, the
// common case for single-component updates, so each component is assembled
// with an fma pass that restores the rounding error of the dropped product.
func rotate2D(x, y, theta float64) (xr, yr float64) {
	sin, cos := math.Sincos(theta)

	w := y * sin
	xr = math.FMA(x, cos, -w) - math.FMA(y, sin, -w)

	w = y * cos
	yr = math.FMA(x, sin, w) + math.FMA(y, cos, -w)

	return xr, yr
}

// SetEta rotates the (px, -pz) pair by the polar-angle difference between
// eta and the current pseudorapidity. py and the momentum magnitude are held
// fixed; for a momentum lying in the px/pz plane with pz <= 0 the rotation
// lands exactly on the new eta.
func (p *BasicParticle) SetEta(eta float64) {
	x, z := rotate2D(p.Px, -p.Pz, etaToTheta(eta)-etaToTheta(p.Eta()))
	p.Px = x
	p.Pz = -z
}

// SetPhi replaces the azimuthal angle while holding px, and with it eta at
// fixed magnitude, untouched: the (-pz, py) pair rotates within the
// transverse plane.
func (p *BasicParticle) SetPhi(phi float64) {
	z, y := rotate2D(-p.Pz, p.Py, phi-p.Phi())
	p.Pz = -z
	p.Py = y
}

// SetPtEtaPhi replaces the momentum with the Cartesian form of the given
// triplet components.
func (p *BasicParticle) SetPtEtaPhi(pt, eta, phi float64) {
	p.SetTriplet(PseudoLorentzTriplet{PT: pt, Eta: eta, Phi: phi})
}

// SetTriplet replaces the momentum with the triplet's Cartesian form.
func (p *BasicParticle) SetTriplet(t PseudoLorentzTriplet) {
	p.SetMomentum(t.Momentum())
}

// SetKineticEnergy rescales the momentum along its current direction so that
// the kinetic energy becomes ke, inverting ke = sqrt(p^2 + m^2) - m.
func (p *BasicParticle) SetKineticEnergy(ke float64) {
	p.SetPMag(math.Sqrt(ke * (ke + 2*p.Mass())))
}

// SetPMag rescales the momentum to the given magnitude along its current
// direction.
func (p *BasicParticle) SetPMag(mag float64) {
	p.SetMomentum(r3.Scale(mag, p.PUnit()))
}

// SetPUnit redirects the momentum along u, preserving the current magnitude.
// A particle at rest picks up unit magnitude.
func (p *BasicParticle) SetPUnit(u r3.Vec) {
	mag := p.PMag()
	if mag == 0 {
		mag = 1
	}
	p.SetMomentum(r3.Scale(mag, r3.Unit(u)))
}

// Particle is a BasicParticle with a spacetime vertex (ns, mm).
type Particle struct {
	BasicParticle
	T, X, Y, Z float64
}

// SetVertex sets the spatial vertex, leaving the time coordinate untouched.
func (p *Particle) SetVertex(x, y, z float64) {
	p.X = x
	p.Y = y
	p.Z = z
}

// SetVertexT sets the full spacetime vertex.
func (p *Particle) SetVertexT(t, x, y, z float64) {
	p.T = t
	p.SetVertex(x, y, z)
}

// SetVertexVec sets the spatial vertex from a vector, leaving the time
// coordinate untouched.
func (p *Particle) SetVertexVec(pos r3.Vec) {
	p.SetVertex(pos.X, pos.Y, pos.Z)
}

// SetVertexTVec sets the full spacetime vertex from a time and a vector.
func (p *Particle) SetVertexTVec(t float64, pos r3.Vec) {
	p.SetVertexT(t, pos.X, pos.Y, pos.Z)
}

// Sink consumes primary vertices. *event.Event implements it; tests and
// alternative event models can substitute their own.
type Sink interface {
	AddVertex(v *event.Vertex)
}

// Emit builds the primary vertex for p, attaches the primary particle
// carrying its id and momentum, and registers the vertex with the sink. The
// sink owns the vertex afterwards.
func Emit(p Particle, sink Sink) {
	vtx := &event.Vertex{T: p.T, X: p.X, Y: p.Y, Z: p.Z}
	vtx.Primaries = append(vtx.Primaries, event.Primary{
		ID: p.ID,
		Px: p.Px,
		Py: p.Py,
		Pz: p.Pz,
	})
	sink.AddVertex(vtx)
}
