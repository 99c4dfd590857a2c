package physics

import "go-hep.org/x/hep/fmom"

// FourMomentum returns the particle's four-momentum in the standard HEP
// frame, where the beam runs along z. The two frames share the y axis; the
// detector's -z direction becomes the standard x and the longitudinal first
// component becomes the standard z. Under that relabeling fmom's own Pt, Eta
// and Phi reproduce this package's values, so records can flow into standard
// analysis tooling unchanged.
func (p *BasicParticle) FourMomentum() fmom.PxPyPzE {
	return fmom.NewPxPyPzE(-p.Pz, p.Py, p.Px, p.Energy())
}

// FromFourMomentum builds a record for the given species id from a
// standard-frame four-momentum, inverting the axis map of FourMomentum. The
// energy component is dropped: the record derives energy from the species
// mass instead.
func FromFourMomentum(p4 fmom.P4, id int) BasicParticle {
	return BasicParticle{ID: id, Px: p4.Pz(), Py: p4.Py(), Pz: -p4.Px()}
}
