/*package physics converts particle momenta between Cartesian components and
the pseudo-Lorentz triplet (pT, eta, phi) used on the detector side, and
carries the particle and vertex records built on top of that conversion.

The longitudinal (beam) axis is the FIRST Cartesian coordinate, not the usual
third: eta is measured from +x, the transverse plane is (y, z), and
phi = atan2(py, -pz). This matches the host geometry and is fixed, not
configurable. Masses and energies are in MeV, charges in units of the
elementary charge, and species ids follow the PDG Monte Carlo numbering with
0 reserved for "no particle".
*/
package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PseudoLorentzTriplet is a momentum in detector coordinates: transverse
// momentum, pseudorapidity, and azimuthal angle. Triplets produced by
// ToTriplet always have PT >= 0 and Phi in (-pi, pi]. The zero value is the
// canonical zero-momentum point; the angles of a zero momentum are ambiguous
// and fixed to 0 by convention.
type PseudoLorentzTriplet struct {
	PT  float64 // MeV
	Eta float64
	Phi float64 // radians
}

// ToTriplet converts a Cartesian momentum to its pseudo-Lorentz triplet.
// The zero vector maps to the zero triplet. A purely longitudinal momentum
// (py = pz = 0) has no finite pseudorapidity: atanh evaluates at +-1 and the
// triplet comes back with Eta = +-Inf and PT = 0.
func ToTriplet(p r3.Vec) PseudoLorentzTriplet {
	mag := r3.Norm(p)
	if mag == 0 {
		return PseudoLorentzTriplet{}
	}
	eta := math.Atanh(p.X / mag)
	return PseudoLorentzTriplet{
		PT:  mag / math.Cosh(eta),
		Eta: eta,
		Phi: math.Atan2(p.Y, -p.Z),
	}
}

// Momentum converts the triplet back to a Cartesian momentum. This inverts
// ToTriplet up to rounding for any triplet ToTriplet produces, and stays
// defined for arbitrary field values: a negative PT flips both transverse
// components coherently.
func (t PseudoLorentzTriplet) Momentum() r3.Vec {
	return r3.Vec{
		X: t.PT * math.Sinh(t.Eta),
		Y: t.PT * math.Sin(t.Phi),
		Z: -t.PT * math.Cos(t.Phi),
	}
}
