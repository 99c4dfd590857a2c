package sim

import (
	"path/filepath"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// SavePlots renders the summary histograms into dir, one image per
// quantity.
func SavePlots(sum *Summary, dir string) error {
	plots := []struct {
		file, title, label string
		h                  *hbook.H1D
	}{
		{"pt.png", "Transverse momentum", "pT [MeV]", sum.PT},
		{"eta.png", "Pseudorapidity", "eta", sum.Eta},
		{"phi.png", "Azimuthal angle", "phi [rad]", sum.Phi},
		{"energy.png", "Total energy", "E [MeV]", sum.E},
	}

	for _, pl := range plots {
		p := hplot.New()
		p.Title.Text = pl.title
		p.X.Label.Text = pl.label
		p.Y.Label.Text = "primaries / bin"
		p.Add(hplot.NewH1D(pl.h))

		if err := p.Save(6*vg.Inch, -1, filepath.Join(dir, pl.file)); err != nil {
			return err
		}
	}

	return nil
}
