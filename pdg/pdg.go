/*package pdg carries the particle species table: masses, charges and names
keyed by the PDG Monte Carlo particle numbering.

The builtin table covers the species a surface detector actually records:
the leptons, the photon, the light mesons, and the nucleons, with both charge
states listed explicitly. Masses are in MeV and charges in units of the
elementary charge, per the PDG listings. Names use the host-framework
spellings ("mu-", "kaon0L", "anti_proton") so they line up with
configuration written against it.
*/
package pdg

// Def describes one particle species.
type Def struct {
	ID     int // PDG MC number
	Name   string
	Mass   float64 // MeV
	Charge float64 // units of e
}

// Table resolves species ids to their definitions. Find reports ok == false
// for ids it does not know; callers treat the zero Def as "unknown particle".
// Tables are read-only after construction and safe for concurrent use.
type Table interface {
	Find(id int) (Def, bool)
}

type mapTable map[int]Def

func (t mapTable) Find(id int) (Def, bool) {
	def, ok := t[id]
	return def, ok
}

// Builtin returns the compiled-in species table.
func Builtin() Table { return builtinTable }

var builtinTable = mapTable{
	11:  {11, "e-", 0.51099895, -1},
	-11: {-11, "e+", 0.51099895, +1},
	12:  {12, "nu_e", 0, 0},
	-12: {-12, "anti_nu_e", 0, 0},
	13:  {13, "mu-", 105.6583755, -1},
	-13: {-13, "mu+", 105.6583755, +1},
	14:  {14, "nu_mu", 0, 0},
	-14: {-14, "anti_nu_mu", 0, 0},
	15:  {15, "tau-", 1776.86, -1},
	-15: {-15, "tau+", 1776.86, +1},
	16:  {16, "nu_tau", 0, 0},
	-16: {-16, "anti_nu_tau", 0, 0},

	22: {22, "gamma", 0, 0},

	111:  {111, "pi0", 134.9768, 0},
	211:  {211, "pi+", 139.57039, +1},
	-211: {-211, "pi-", 139.57039, -1},
	221:  {221, "eta", 547.862, 0},
	130:  {130, "kaon0L", 497.611, 0},
	310:  {310, "kaon0S", 497.611, 0},
	311:  {311, "kaon0", 497.611, 0},
	-311: {-311, "anti_kaon0", 497.611, 0},
	321:  {321, "kaon+", 493.677, +1},
	-321: {-321, "kaon-", 493.677, -1},

	2112:  {2112, "neutron", 939.56542052, 0},
	-2112: {-2112, "anti_neutron", 939.56542052, 0},
	2212:  {2212, "proton", 938.27208816, +1},
	-2212: {-2212, "anti_proton", 938.27208816, -1},
}
