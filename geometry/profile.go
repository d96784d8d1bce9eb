// Package geometry builds the cached floor and wall meshes for every width profile
// Meshes are generated once per run and shared read-only by all pooled segments
package geometry

import "github.com/lixenwraith/lane-runner/vmath"

// Profile selects the width function of a segment's floor and walls
type Profile uint8

const (
	Full Profile = iota
	NarrowFlat
	NarrowTaperIn
	NarrowTaperOut
	NarrowTaperBoth
	WideFlat
	WideTaperIn
	WideTaperOut
	WideTaperBoth

	profileCount
)

var profileNames = [profileCount]string{
	Full:            "full",
	NarrowFlat:      "narrowFlat",
	NarrowTaperIn:   "narrowTaperIn",
	NarrowTaperOut:  "narrowTaperOut",
	NarrowTaperBoth: "narrowTaperBoth",
	WideFlat:        "wideFlat",
	WideTaperIn:     "wideTaperIn",
	WideTaperOut:    "wideTaperOut",
	WideTaperBoth:   "wideTaperBoth",
}

// Profiles lists all profiles in declaration order
func Profiles() []Profile {
	out := make([]Profile, profileCount)
	for i := range out {
		out[i] = Profile(i)
	}
	return out
}

func (p Profile) String() string {
	if p >= profileCount {
		return "unknown"
	}
	return profileNames[p]
}

// Valid reports whether p is one of the nine known profiles
func (p Profile) Valid() bool { return p < profileCount }

func (p Profile) Narrow() bool { return p >= NarrowFlat && p <= NarrowTaperBoth }

func (p Profile) Wide() bool { return p >= WideFlat && p <= WideTaperBoth }

// TaperIn reports whether width changes over the first TaperFraction of the segment
func (p Profile) TaperIn() bool {
	switch p {
	case NarrowTaperIn, NarrowTaperBoth, WideTaperIn, WideTaperBoth:
		return true
	}
	return false
}

// TaperOut reports whether width changes over the last TaperFraction of the segment
func (p Profile) TaperOut() bool {
	switch p {
	case NarrowTaperOut, NarrowTaperBoth, WideTaperOut, WideTaperBoth:
		return true
	}
	return false
}

// TaperZone reports whether normalized position t (0 at start, 1 at end) lies on a tapering stretch
func (p Profile) TaperZone(t float64) bool {
	return (p.TaperIn() && t < TaperFraction) || (p.TaperOut() && t > 1-TaperFraction)
}

// WithoutTaperOut drops the exit taper: TaperBoth becomes TaperIn, TaperOut becomes Flat
func (p Profile) WithoutTaperOut() Profile {
	switch p {
	case NarrowTaperBoth:
		return NarrowTaperIn
	case NarrowTaperOut:
		return NarrowFlat
	case WideTaperBoth:
		return WideTaperIn
	case WideTaperOut:
		return WideFlat
	}
	return p
}

// Variant composes a profile from its width family and taper ends
// wide selects the wide family when narrow is false; neither gives Full
func Variant(narrow, wide, taperIn, taperOut bool) Profile {
	var base Profile
	switch {
	case narrow:
		base = NarrowFlat
	case wide:
		base = WideFlat
	default:
		return Full
	}
	switch {
	case taperIn && taperOut:
		return base + 3
	case taperOut:
		return base + 2
	case taperIn:
		return base + 1
	}
	return base
}

// WidthFunc returns the floor width at normalized position t
type WidthFunc func(t float64) float64

// widthFunc builds the width function of p for the given standard and target widths
func widthFunc(p Profile, standard, narrow, wide float64) WidthFunc {
	target := standard
	switch {
	case p.Narrow():
		target = narrow
	case p.Wide():
		target = wide
	}
	in, out := p.TaperIn(), p.TaperOut()

	return func(t float64) float64 {
		if in && t < TaperFraction {
			return vmath.Lerp(standard, target, t/TaperFraction)
		}
		if out && t > 1-TaperFraction {
			return vmath.Lerp(target, standard, (t-(1-TaperFraction))/TaperFraction)
		}
		return target
	}
}
