// Package viz renders Simplex tableaus as heatmap frames and assembles
// per-pivot frames into an animated GIF, visualizing how pivoting
// reshapes the tableau on its way to optimality.
//
// What:
//
//   - Frame    — one tableau rendered as a heatmap image (row 0 on top,
//     objective row at the bottom, cell colour by magnitude).
//
//   - Recorder — collects one frame per pivot; its Capture method has
//     the solver's OnPivot signature, so wiring is a one-liner:
//
//     rec := viz.NewRecorder(380, 180, 50)
//     opts.OnPivot = rec.Capture
//
//   - GIF / EncodeGIF — assemble and write the animation.
//
// Frames read the tableau between pivots and never mutate it.
package viz
