// Package trajectory provides deterministic target paths for a gaze-pursuit
// stimulus. Each mode maps a normalized time progress and a viewport size to
// the pixel the subject should be looking at on that frame.
package trajectory

import "math"

// Point is a target position in pixel coordinates.
type Point struct {
	X, Y float64
}

// PosFunc computes the target position for progress in [0,1] on a
// width x height viewport. Implementations are pure: identical inputs yield
// identical outputs, so a PosFunc is safe to call from any goroutine.
// Progress below 0 is out of contract for the jump mode.
type PosFunc func(progress, width, height float64) Point

// Mode pairs a display label and a default run length with its path function.
type Mode struct {
	Name     string
	Duration uint64 // milliseconds
	GetPos   PosFunc
}

// Modes is the fixed registry of pursuit modes, keyed by the name used in
// session files. Entries are defined at init and never mutated.
var Modes = map[string]Mode{
	"horizontal": {Name: "Horizontal Sine", Duration: 15000, GetPos: horizontalPos},
	"circular":   {Name: "Circular Tracking", Duration: 15000, GetPos: circularPos},
	"jump":       {Name: "Step Saccade", Duration: 16000, GetPos: jumpPos},
	"random":     {Name: "Random Pursuit", Duration: 20000, GetPos: randomPos},
}

// Lookup returns the mode registered under key. Callers must check ok before
// using the mode.
func Lookup(key string) (Mode, bool) {
	m, ok := Modes[key]
	return m, ok
}

// horizontalPos oscillates x around screen center, two full cycles per run,
// with y pinned to mid-height.
func horizontalPos(progress, width, height float64) Point {
	return Point{
		X: width/2 + 0.4*width*math.Sin(progress*2*math.Pi*2),
		Y: height / 2,
	}
}

// circularPos traces two revolutions of a circle whose radius scales with the
// viewport height.
func circularPos(progress, width, height float64) Point {
	radius := 0.35 * height
	angle := progress * 2 * math.Pi * 2
	return Point{
		X: width/2 + radius*math.Cos(angle),
		Y: height/2 + radius*math.Sin(angle),
	}
}

// jumpWaypoints holds the saccade sequence in normalized coordinates:
// center, the four corners, top and bottom center, back to center.
var jumpWaypoints = [8]Point{
	{X: 0.5, Y: 0.5},
	{X: 0.2, Y: 0.2},
	{X: 0.8, Y: 0.2},
	{X: 0.8, Y: 0.8},
	{X: 0.2, Y: 0.8},
	{X: 0.5, Y: 0.2},
	{X: 0.5, Y: 0.8},
	{X: 0.5, Y: 0.5},
}

// jumpPos steps through the waypoints, 1/8 of the run each, without
// interpolating between them. The index clamp keeps progress == 1.0 on the
// last waypoint.
func jumpPos(progress, width, height float64) Point {
	step := int(progress * 8)
	if step > 7 {
		step = 7
	}
	wp := jumpWaypoints[step]
	return Point{X: wp.X * width, Y: wp.Y * height}
}

// randomPos sums three sinusoids per axis at non-harmonic frequencies,
// weighted 0.5/0.3/0.2 and scaled to 0.4 of the viewport around its center.
// The weights sum to 1, so the path stays inside [0.1,0.9] of each dimension.
// "Random" is visual only: the path is fully reproducible.
func randomPos(progress, width, height float64) Point {
	t := progress * 20
	x := 0.5 + 0.4*(0.5*math.Sin(t*1.1)+0.3*math.Sin(t*2.3+1.3)+0.2*math.Sin(t*3.7+2.1))
	y := 0.5 + 0.4*(0.5*math.Sin(t*1.4+0.7)+0.3*math.Sin(t*2.9+1.9)+0.2*math.Sin(t*4.1+3.1))
	return Point{X: x * width, Y: y * height}
}
