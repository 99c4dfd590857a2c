/*package sim turns beam configurations into simulated events. Each event
draws one primary per beam through the kinematic records, lands in a binary
record file, and feeds summary histograms of the generated kinematics.
*/
package sim

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"

	"go-hep.org/x/hep/hbook"

	"github.com/mudrift/mukin/event"
	"github.com/mudrift/mukin/physics"
)

const summaryBins = 100

// Summary aggregates one run: how much was generated and the distributions
// it was generated with.
type Summary struct {
	Events    int
	Primaries int

	PT, Eta, Phi, E *hbook.H1D
}

// newSummary sizes the histograms from the beam ranges, so the interesting
// region fills the axis no matter the configuration.
func newSummary(beams []BeamConfig) *Summary {
	ptHi, eHi := 0.0, 0.0
	etaLo, etaHi := math.Inf(+1), math.Inf(-1)

	for _, b := range beams {
		m := physics.ParticleMass(b.ID)
		pMax := b.PTMax * math.Cosh(math.Max(math.Abs(b.EtaMin), math.Abs(b.EtaMax)))
		if b.KE > 0 {
			// The rescale replaces the drawn magnitude entirely.
			pMax = math.Sqrt(b.KE * (b.KE + 2*m))
			if pMax > ptHi {
				ptHi = pMax
			}
		}
		if b.PTMax > ptHi {
			ptHi = b.PTMax
		}
		if e := math.Hypot(pMax, m); e > eHi {
			eHi = e
		}
		if b.EtaMin < etaLo {
			etaLo = b.EtaMin
		}
		if b.EtaMax > etaHi {
			etaHi = b.EtaMax
		}
	}

	ptHi *= 1.05
	eHi *= 1.05
	if ptHi <= 0 {
		ptHi = 1
	}
	if eHi <= 0 {
		eHi = 1
	}

	return &Summary{
		PT:  hbook.NewH1D(summaryBins, 0, ptHi),
		Eta: hbook.NewH1D(summaryBins, etaLo-0.5, etaHi+0.5),
		Phi: hbook.NewH1D(summaryBins, -math.Pi, math.Pi),
		E:   hbook.NewH1D(summaryBins, 0, eHi),
	}
}

// fill writes the event's primaries as records and folds them into the
// histograms.
func (sum *Summary) fill(w io.Writer, index int, ev *event.Event) error {
	for _, vtx := range ev.Vertices() {
		for _, pr := range vtx.Primaries {
			bp := physics.BasicParticle{ID: pr.ID, Px: pr.Px, Py: pr.Py, Pz: pr.Pz}

			sum.PT.Fill(bp.Pt(), 1)
			sum.Eta.Fill(bp.Eta(), 1)
			sum.Phi.Fill(bp.Phi(), 1)
			sum.E.Fill(bp.Energy(), 1)
			sum.Primaries++

			rec := Record{
				Event: uint32(index),
				ID:    int32(pr.ID),
				T:     vtx.T, X: vtx.X, Y: vtx.Y, Z: vtx.Z,
				Px: pr.Px, Py: pr.Py, Pz: pr.Pz,
				E: bp.Energy(),
			}
			if err := binary.Write(w, recordEndianness, &rec); err != nil {
				return err
			}
		}
	}
	sum.Events++
	return nil
}

type indexedEvent struct {
	index int
	ev    *event.Event
}

// Run generates con.Events events from the given beams and writes their
// records to con.Output, walking the beams in order within each event.
// Workers race over events, but every event owns a stream seeded from
// (Seed, event index), so the output depends only on the configuration.
func Run(con *SimConfig, beams []BeamConfig) (*Summary, error) {
	if len(beams) == 0 {
		return nil, fmt.Errorf("Need at least one beam to run.")
	}

	gens := make([]Generator, len(beams))
	for i := range beams {
		gens[i] = NewBeamGen(beams[i])
	}

	procs := con.Procs
	if procs <= 0 {
		procs = runtime.NumCPU()
	}

	f, err := os.Create(con.Output)
	if err != nil {
		return nil, err
	}

	jobs := make(chan int, procs)
	out := make(chan indexedEvent, procs)

	for i := 0; i < procs; i++ {
		go func() {
			for idx := range jobs {
				rng := rand.New(rand.NewSource(con.Seed + int64(idx)))
				ev := &event.Event{}
				for _, g := range gens {
					physics.Emit(g.Generate(rng), ev)
				}
				out <- indexedEvent{idx, ev}
			}
		}()
	}

	go func() {
		for i := 0; i < con.Events; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	sum := newSummary(beams)

	buf := bufio.NewWriter(f)
	hd := &Header{
		Magic:   headerMagic,
		Version: recordVersion,
		Seed:    con.Seed,
		Events:  int64(con.Events),
		Beams:   int64(len(beams)),
	}
	writeErr := binary.Write(buf, recordEndianness, hd)

	// Workers finish events out of order; holding finished events until
	// their index comes up keeps the file in event order.
	pending := make(map[int]*event.Event)
	next := 0
	for done := 0; done < con.Events; done++ {
		res := <-out
		pending[res.index] = res.ev
		for {
			ev, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if writeErr == nil {
				writeErr = sum.fill(buf, next, ev)
			}
			next++
			if next%5000 == 0 {
				log.Printf("Generated %d/%d events.", next, con.Events)
			}
		}
	}
	if con.Events%5000 != 0 {
		log.Printf("Generated %d/%d events.", con.Events, con.Events)
	}

	if writeErr != nil {
		f.Close()
		return nil, writeErr
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return sum, nil
}
