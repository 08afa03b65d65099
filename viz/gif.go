package viz

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// Recorder accumulates one heatmap frame per captured tableau state.
// The zero value is not usable; construct with NewRecorder.
//
// Capture matches the solver's OnPivot signature. Rendering errors do
// not disturb the solve; the first one is kept and reported by Err.
type Recorder struct {
	width  int
	height int
	delay  int // per-frame delay in 1/100ths of a second
	frames []*image.Paletted
	err    error
}

// NewRecorder returns a Recorder producing width×height frames shown
// for delay hundredths of a second each.
func NewRecorder(width, height, delay int) *Recorder {
	return &Recorder{width: width, height: height, delay: delay}
}

// Capture renders the tableau's current state as the next frame.
func (r *Recorder) Capture(step int, t *simplex.Tableau) {
	if r.err != nil {
		return
	}
	img, err := Frame(t, step, r.width, r.height)
	if err != nil {
		r.err = err
		return
	}
	r.frames = append(r.frames, quantize(img))
}

// Err returns the first rendering error, if any.
func (r *Recorder) Err() error { return r.err }

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }

// GIF assembles the captured frames into an animation that loops
// forever. Returns nil when nothing was captured.
func (r *Recorder) GIF() *gif.GIF {
	if len(r.frames) == 0 {
		return nil
	}
	g := &gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		g.Image = append(g.Image, f)
		g.Delay = append(g.Delay, r.delay)
	}
	return g
}

// ErrEmptyAnimation indicates an encode of a nil or frameless
// animation, e.g. from a Recorder whose solve needed zero pivots.
var ErrEmptyAnimation = errors.New("viz: no frames to encode")

// EncodeGIF writes the animation to w. A nil or frameless animation is
// rejected with ErrEmptyAnimation rather than handed to the encoder.
func EncodeGIF(w io.Writer, g *gif.GIF) error {
	if g == nil || len(g.Image) == 0 {
		return ErrEmptyAnimation
	}
	return errors.Wrap(gif.EncodeAll(w, g), "viz: encoding gif")
}

// WriteGIF writes the animation to a file at path. Like EncodeGIF it
// rejects a nil or frameless animation before touching the filesystem.
func WriteGIF(path string, g *gif.GIF) error {
	if g == nil || len(g.Image) == 0 {
		return ErrEmptyAnimation
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "viz: creating gif file")
	}
	defer f.Close()
	return EncodeGIF(f, g)
}

// quantize converts a frame to the paletted form GIF requires.
func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, img, b.Min)
	return pm
}
