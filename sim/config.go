package sim

import (
	"fmt"
	"sort"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleSimFile = `[Sim]

#######################
# Required Parameters #
#######################

# Number of events to generate.
Events = 10000

# File which the generated event records will be written to.
Output = path/to/events.mkn

#######################
# Optional Parameters #
#######################

# Seed for the event generators. Every event derives its own stream from the
# seed, so two runs with the same seed and the same beam files agree record
# for record.
# Seed = 1

# Number of worker goroutines. Defaults to the number of CPUs.
# Procs = 8

# Directory which histogram plots of the generated kinematics will be
# written to. No plots are written when unset.
# PlotDir = path/to/plots

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleBeamFile = `[Beam "mu_minus"]
# A beam section describes one primary particle generated per event. A run
# needs at least one beam; each event holds one primary per beam, and beams
# are processed in name order.

# Species id of the generated primaries, using the standard Monte Carlo
# numbering. Id 0 is reserved for "no particle" and is rejected.
ID = 13

# Kinematics are drawn uniformly from the [Min, Max] ranges below. Setting
# the single-value key (PT, Eta, Phi) instead pins the quantity for every
# event; setting both the single-value key and its range is an error. A
# quantity left out entirely stays fixed at zero. PT is in MeV and the
# angles are in radians.
PTMin = 500
PTMax = 5000
EtaMin = -2
EtaMax = 2
PhiMin = -3.141592653589793
PhiMax = 3.141592653589793

#######################
# Optional Parameters #
#######################

# Kinetic energy override in MeV: after the kinematics are drawn the
# momentum is rescaled along its direction so the kinetic energy matches.
# Requires a positive PT range, since a rest state has no direction.
# KE = 20000

# Spacetime vertex of the generated primaries, in ns and mm.
# T = 0
# X = 0
# Y = 0
# Z = 0`
)

type SimConfig struct {
	// Required
	Events int
	Output string

	// Optional
	Seed    int64
	Procs   int
	PlotDir string

	LogFile, ProfileFile string
}

type SimWrapper struct {
	Sim SimConfig
}

func DefaultSimWrapper() *SimWrapper {
	con := SimConfig{}
	con.Seed = 1
	return &SimWrapper{con}
}

func (con *SimConfig) ValidEvents() bool {
	return con.Events > 0
}
func (con *SimConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SimConfig) ValidProcs() bool {
	return con.Procs > 0
}
func (con *SimConfig) ValidPlotDir() bool {
	return con.PlotDir != ""
}
func (con *SimConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SimConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type BeamConfig struct {
	// Required
	ID int

	// Single-value kinematics. Each one folds into the matching range pair
	// during CheckInit; afterwards only the pairs are read.
	PT, Eta, Phi float64

	// Range kinematics.
	PTMin, PTMax   float64
	EtaMin, EtaMax float64
	PhiMin, PhiMax float64

	// Optional
	KE         float64
	T, X, Y, Z float64

	Name string
}

func (beam *BeamConfig) CheckInit(name string) error {
	beam.Name = name

	if beam.ID == 0 {
		return fmt.Errorf(
			"Need to specify a nonzero ID for Beam '%s'.", name,
		)
	}

	if beam.PT != 0 {
		if beam.PTMin != 0 || beam.PTMax != 0 {
			return fmt.Errorf(
				"Beam '%s' sets both PT and a PTMin/PTMax range.", name,
			)
		}
		beam.PTMin, beam.PTMax = beam.PT, beam.PT
	}
	if beam.Eta != 0 {
		if beam.EtaMin != 0 || beam.EtaMax != 0 {
			return fmt.Errorf(
				"Beam '%s' sets both Eta and an EtaMin/EtaMax range.", name,
			)
		}
		beam.EtaMin, beam.EtaMax = beam.Eta, beam.Eta
	}
	if beam.Phi != 0 {
		if beam.PhiMin != 0 || beam.PhiMax != 0 {
			return fmt.Errorf(
				"Beam '%s' sets both Phi and a PhiMin/PhiMax range.", name,
			)
		}
		beam.PhiMin, beam.PhiMax = beam.Phi, beam.Phi
	}

	if beam.PTMin < 0 || beam.PTMax < beam.PTMin {
		return fmt.Errorf(
			"PT range of Beam '%s' must satisfy 0 <= PTMin <= PTMax, "+
				"but is [%g, %g].", name, beam.PTMin, beam.PTMax,
		)
	}
	if beam.EtaMax < beam.EtaMin {
		return fmt.Errorf(
			"Eta range of Beam '%s' must satisfy EtaMin <= EtaMax, "+
				"but is [%g, %g].", name, beam.EtaMin, beam.EtaMax,
		)
	}
	if beam.PhiMax < beam.PhiMin {
		return fmt.Errorf(
			"Phi range of Beam '%s' must satisfy PhiMin <= PhiMax, "+
				"but is [%g, %g].", name, beam.PhiMin, beam.PhiMax,
		)
	}

	if beam.KE < 0 {
		return fmt.Errorf(
			"Beam '%s' given a negative KE, %g.", name, beam.KE,
		)
	}
	if beam.KE > 0 && beam.PTMin <= 0 {
		return fmt.Errorf(
			"Beam '%s' sets KE but its PT range allows a rest state, "+
				"which has no direction to rescale.", name,
		)
	}

	return nil
}

type BeamsConfig struct {
	Beam map[string]*BeamConfig
}

// ReadBeamConfig parses every [Beam "name"] section of fname. The beams come
// back sorted by name, so a run's event layout only depends on the file
// contents.
func ReadBeamConfig(fname string) ([]BeamConfig, error) {
	bc := BeamsConfig{}

	if err := gcfg.ReadFileInto(&bc, fname); err != nil {
		return nil, err
	}
	if len(bc.Beam) == 0 {
		return nil, fmt.Errorf("No [Beam] sections in '%s'.", fname)
	}

	beams := []BeamConfig{}
	for name, beam := range bc.Beam {
		if err := beam.CheckInit(name); err != nil {
			return nil, err
		}
		beams = append(beams, *beam)
	}
	sort.Slice(beams, func(i, j int) bool {
		return beams[i].Name < beams[j].Name
	})

	return beams, nil
}
