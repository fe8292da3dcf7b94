// Command pxgen renders a Mandelbrot or Voronoi image in parallel and
// reports how long the pass took.
//
// Usage:
//
//	pxgen -kind mandel -width 4096 -height 4096 -o mandel.png
//	pxgen -kind voronoi -width 2800 -height 2800 -sites 1400 -o voronoi.png,voronoi.raw
//	pxgen -scene scene.json -dispatch dynamic -compare
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/gops/agent"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/gogpu/pxgen"
	"github.com/gogpu/pxgen/internal/image"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "pxgen: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	scene    Scene
	dispatch string
	workers  int
	batch    int
	outputs  []string
	compare  bool
	gops     bool
	verbose  bool
	lang     language.Tag
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("pxgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		scenePath = fs.String("scene", "", "JSON scene file; explicit flags override it")
		kind      = fs.String("kind", kindMandel, "image kind: mandel or voronoi")
		width     = fs.Int("width", 1024, "image width")
		height    = fs.Int("height", 1024, "image height")
		iters     = fs.Int("iters", 0, "mandel: maximum escape iterations (0 = default)")
		overflow  = fs.String("overflow", "", "mandel: palette overflow policy, clamp or wrap")
		sites     = fs.Int("sites", 0, "voronoi: random site count (0 = width/2)")
		seed      = fs.Uint64("seed", 1, "voronoi: random site seed")
		dispatch  = fs.String("dispatch", "static", "dispatcher: static, dynamic, pool or serial")
		workers   = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		batch     = fs.Int("batch", 0, "indices per batch for dynamic and pool (0 = default)")
		output    = fs.String("o", "", "comma-separated output files (.png, .raw, .bmp, .tiff, .jpg)")
		compare   = fs.Bool("compare", false, "also time a serial pass and verify identical output")
		gops      = fs.Bool("gops", false, "start the gops diagnostics agent")
		verbose   = fs.Bool("v", false, "debug logging")
		lang      = fs.String("lang", "en", "BCP 47 tag for number formatting in the report")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	s := defaultScene()
	if *scenePath != "" {
		var err error
		if s, err = loadScene(*scenePath); err != nil {
			return options{}, err
		}
	}

	// Flags given explicitly win over the scene file.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *scenePath == "" || set["kind"] {
		s.Kind = *kind
	}
	if *scenePath == "" || set["width"] {
		s.Width = *width
	}
	if *scenePath == "" || set["height"] {
		s.Height = *height
	}
	if set["iters"] {
		s.Iters = *iters
	}
	if set["overflow"] {
		s.Overflow = *overflow
	}
	if set["seed"] || *scenePath == "" {
		s.Seed = *seed
	}
	if set["sites"] {
		s.RandomSites = *sites
	}
	if s.Kind == kindVoronoi && s.RandomSites == 0 && len(s.Sites) == 0 {
		s.RandomSites = s.Width / 2
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return options{}, fmt.Errorf("invalid -lang: %w", err)
	}

	var outputs []string
	for _, o := range strings.Split(*output, ",") {
		if o = strings.TrimSpace(o); o != "" {
			outputs = append(outputs, o)
		}
	}

	return options{
		scene:    s,
		dispatch: *dispatch,
		workers:  *workers,
		batch:    *batch,
		outputs:  outputs,
		compare:  *compare,
		gops:     *gops,
		verbose:  *verbose,
		lang:     tag,
	}, nil
}

// newDispatcher maps a -dispatch name to a Dispatcher.
func newDispatcher(name string, workers, batch int) (pxgen.Dispatcher, error) {
	switch name {
	case "static":
		return pxgen.StaticDispatcher(workers), nil
	case "dynamic":
		return pxgen.DynamicDispatcher(workers, batch), nil
	case "pool":
		return pxgen.PoolDispatcher(workers, batch), nil
	case "serial":
		return pxgen.SerialDispatcher(), nil
	default:
		return nil, fmt.Errorf("unknown dispatcher %q", name)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	pxgen.SetLogger(logger)
	defer pxgen.SetLogger(nil)

	if opts.gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("start gops agent: %w", err)
		}
		defer agent.Close()
	}

	// Validate every output before spending time on the pass.
	for _, o := range opts.outputs {
		if _, err := image.FormatFromPath(o); err != nil {
			return err
		}
	}

	d, err := newDispatcher(opts.dispatch, opts.workers, opts.batch)
	if err != nil {
		return err
	}

	s := opts.scene
	k, err := s.Kernel()
	if err != nil {
		return err
	}
	c, err := pxgen.NewCanvas(s.Width, s.Height)
	if err != nil {
		return err
	}
	defer c.Release()

	start := time.Now()
	if err := pxgen.Render(c, k, d); err != nil {
		return err
	}
	elapsed := time.Since(start)

	rep := report{
		Scene:      s,
		CPUs:       runtime.NumCPU(),
		Dispatcher: d.String(),
		Elapsed:    elapsed,
		Outputs:    opts.outputs,
	}

	if opts.compare {
		serial, err := compareSerial(c, k)
		if err != nil {
			return err
		}
		rep.Serial = serial
	}

	if err := writeOutputs(c, opts.outputs); err != nil {
		return err
	}

	rep.write(stdout, opts.lang)
	return nil
}

// compareSerial renders k again on one goroutine and checks that the result
// matches c bit for bit.
func compareSerial(c *pxgen.Canvas, k pxgen.Kernel) (time.Duration, error) {
	ref, err := pxgen.NewCanvas(c.Width(), c.Height())
	if err != nil {
		return 0, err
	}
	defer ref.Release()

	start := time.Now()
	if err := pxgen.Render(ref, k, pxgen.SerialDispatcher()); err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	for i, px := range ref.Pix() {
		if c.Pix()[i] != px {
			x, y := c.Coords(i)
			return 0, fmt.Errorf("parallel and serial passes differ at (%d, %d)", x, y)
		}
	}
	return elapsed, nil
}

// writeOutputs encodes c into every path concurrently. The canvas is only
// read here, after the pass has returned.
func writeOutputs(c *pxgen.Canvas, paths []string) error {
	var g errgroup.Group
	for _, p := range paths {
		g.Go(func() error {
			start := time.Now()
			if err := image.Save(p, c); err != nil {
				return fmt.Errorf("write %s: %w", p, err)
			}
			pxgen.Logger().Debug("wrote output", "path", p, "elapsed", time.Since(start))
			return nil
		})
	}
	return g.Wait()
}
