package targeting

import "soulcaster/internal/grid"

// FormKind selects the targeting shape of a cast.
type FormKind uint8

const (
	FormEmpty FormKind = iota
	FormSelf
	FormMomentumBeam
	FormMomentumTail
	FormMomentumTouch
	FormMomentumLateral
	FormSmallBurst
	FormBigOuter
	FormArtificial // precomputed cells, e.g. a vault footprint
)

// Default reaches used when a Form leaves Reach at zero.
const (
	DefaultBeamReach        = 45
	DefaultSmallBurstRadius = 3
	DefaultBigOuterRadius   = 10
)

// Form is a stateless targeting shape, evaluated fresh on every cast.
type Form struct {
	Kind FormKind
	// Reach overrides the beam length or circle radius. Zero keeps the default.
	Reach int
	// Cells is only read by FormArtificial.
	Cells []grid.Point
}

// Simple returns a Form of the given kind with default reach.
func Simple(kind FormKind) Form { return Form{Kind: kind} }

// Artificial returns an explicit Form covering exactly cells.
func Artificial(cells []grid.Point) Form {
	return Form{Kind: FormArtificial, Cells: append([]grid.Point(nil), cells...)}
}

func (f Form) reach(def int) int {
	if f.Reach > 0 {
		return f.Reach
	}
	return def
}

var formNames = map[FormKind]string{
	FormEmpty:           "empty",
	FormSelf:            "self",
	FormMomentumBeam:    "beam",
	FormMomentumTail:    "tail",
	FormMomentumTouch:   "touch",
	FormMomentumLateral: "lateral",
	FormSmallBurst:      "small-burst",
	FormBigOuter:        "big-outer",
	FormArtificial:      "artificial",
}

func (k FormKind) String() string {
	if n, ok := formNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseFormKind maps a config name back to its FormKind.
func ParseFormKind(name string) (FormKind, bool) {
	for k, n := range formNames {
		if n == name {
			return k, true
		}
	}
	return FormEmpty, false
}
