package physics

import "github.com/mudrift/mukin/pdg"

// The species table is shared by every record in the process, mirroring the
// host framework's single particle table. Reads may happen concurrently;
// UseTable is setup-time only and must not race with readers.
var table pdg.Table = pdg.Builtin()

// UseTable installs t as the table behind ParticleMass, ParticleCharge and
// ParticleName.
func UseTable(t pdg.Table) { table = t }

// ParticleMass returns the rest mass in MeV for a species id. Id 0 is the
// reserved "no particle" sentinel and short-circuits to 0 without touching
// the table; ids the table does not know also come back 0.
func ParticleMass(id int) float64 {
	if id == 0 {
		return 0
	}
	def, _ := table.Find(id)
	return def.Mass
}

// ParticleCharge returns the electric charge in units of e for a species id,
// with the same sentinel and unknown-id behavior as ParticleMass.
func ParticleCharge(id int) float64 {
	if id == 0 {
		return 0
	}
	def, _ := table.Find(id)
	return def.Charge
}

// ParticleName returns the species name for an id, or "" for the sentinel
// id 0 and for ids the table does not know.
func ParticleName(id int) string {
	if id == 0 {
		return ""
	}
	def, _ := table.Find(id)
	return def.Name
}
