package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/mudrift/mukin/sim"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		simFile       string
		exampleConfig string
	)
	vars := map[string]*string{
		"Sim":           &simFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&simFile, "Sim", "",
		"Configuration file for [Sim] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Sim' and 'Beam'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Sim":
		wrap := sim.DefaultSimWrapper()
		err := gcfg.ReadFileInto(wrap, simFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Sim

		if !con.ValidEvents() {
			log.Fatal("Invalid/non-existent 'Events' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}

		beamFiles := flag.Args()
		if len(beamFiles) < 1 {
			log.Fatal("Must supply at least one beam file.")
		}
		simMain(con, beamFiles)

	case "ExampleConfig":
		switch exampleConfig {
		case "Sim":
			fmt.Println(sim.ExampleSimFile)
		case "Beam":
			fmt.Println(sim.ExampleBeamFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Sim' and 'Beam'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but mukin only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func simMain(con *sim.SimConfig, beamFiles []string) {
	fg := setupIO(con)
	defer fg.Close()

	beams := []sim.BeamConfig{}
	for _, fname := range beamFiles {
		bs, err := sim.ReadBeamConfig(fname)
		if err != nil {
			log.Fatal(err.Error())
		}
		beams = append(beams, bs...)
	}

	sum, err := sim.Run(con, beams)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf("Wrote %d events, %d primaries to %s.",
		sum.Events, sum.Primaries, con.Output)
	log.Printf("<pT> = %.3f MeV, <eta> = %.3f, <E> = %.3f MeV.",
		sum.PT.XMean(), sum.Eta.XMean(), sum.E.XMean())

	if con.ValidPlotDir() {
		if err := os.MkdirAll(con.PlotDir, 0777); err != nil {
			log.Fatal(err.Error())
		}
		if err := sim.SavePlots(sum, con.PlotDir); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote plots to %s.", con.PlotDir)
	}
}

func setupIO(con *sim.SimConfig) *FileGroup {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	log.Println("Running Sim main.")

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}
