package main

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pxgen/fractal"
)

// report is the summary printed after a run.
type report struct {
	Scene      Scene
	CPUs       int
	Dispatcher string
	Elapsed    time.Duration
	Serial     time.Duration // zero unless -compare
	Outputs    []string
}

// write prints r with locale-aware digit grouping.
func (r report) write(w io.Writer, tag language.Tag) {
	p := message.NewPrinter(tag)

	s := r.Scene
	p.Fprintf(w, "%s %dx%d=%d", s.Kind, s.Width, s.Height, s.Width*s.Height)
	switch s.Kind {
	case kindMandel:
		iters := s.Iters
		if iters == 0 {
			iters = fractal.DefaultParams().Iters
		}
		p.Fprintf(w, ", iters:%d", iters)
	case kindVoronoi:
		p.Fprintf(w, ", points:%d", len(s.Sites)+s.RandomSites)
	}
	p.Fprintf(w, ", on %d cpus...\n", r.CPUs)

	p.Fprintf(w, "%s: %dms\n", r.Dispatcher, r.Elapsed.Milliseconds())
	if r.Serial > 0 {
		p.Fprintf(w, "serial: %dms (%.2fx)\n", r.Serial.Milliseconds(), speedup(r.Serial, r.Elapsed))
	}
	for _, o := range r.Outputs {
		p.Fprintf(w, "wrote %s\n", o)
	}
}

// speedup returns base/d, or 0 when d is zero.
func speedup(base, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(base) / float64(d)
}
