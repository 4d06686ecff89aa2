package property

import "strings"

// Unit tags the payload of a Property. Units are bit flags so that parsers and
// conversions can test for unit groups.
type Unit uint32

const (
	UnitUnknown Unit = 0

	UnitNumber  Unit = 1 << iota // unitless number
	UnitPercent                  // %
	UnitPx
	UnitDp // density independent pixel
	UnitEm
	UnitRem
	UnitVw
	UnitVh
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitDeg
	UnitRad
	UnitKeyword
	UnitString
	UnitColour
	UnitTransition
	UnitAnimation
	UnitTransform
	UnitDecorator
	UnitFilter
	UnitFontEffect
	UnitBoxShadow
	UnitVariableTerm
)

const (
	// Lengths converted with the pixels-per-inch table.
	UnitPPI = UnitIn | UnitCm | UnitMm | UnitPt | UnitPc
	// Lengths scaled by the dp ratio of the owning context.
	UnitDPScalable = UnitDp | UnitPPI

	UnitAbsoluteLength      = UnitPx | UnitVw | UnitVh | UnitDPScalable
	UnitLength              = UnitAbsoluteLength | UnitEm | UnitRem
	UnitLengthPercent       = UnitLength | UnitPercent
	UnitNumberLengthPercent = UnitNumber | UnitLengthPercent
	UnitAngle               = UnitDeg | UnitRad
	UnitNumeric             = UnitNumberLengthPercent | UnitAngle
)

// Any reports whether u shares at least one flag with mask.
func (u Unit) Any(mask Unit) bool {
	return u&mask != 0
}

var unitSuffixes = map[Unit]string{
	UnitPercent: "%",
	UnitPx:      "px",
	UnitDp:      "dp",
	UnitEm:      "em",
	UnitRem:     "rem",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitDeg:     "deg",
	UnitRad:     "rad",
}

// Suffix returns the textual unit suffix of a numeric unit.
func (u Unit) Suffix() string {
	return unitSuffixes[u]
}

// unitFromSuffix maps a dimension suffix (case insensitive) to its unit.
func unitFromSuffix(s string) (Unit, bool) {
	s = strings.ToLower(s)
	for u, suffix := range unitSuffixes {
		if suffix == s {
			return u, true
		}
	}
	return UnitUnknown, false
}

// RelativeTarget selects the base a relative value is resolved against.
type RelativeTarget uint8

const (
	RelativeNone RelativeTarget = iota
	RelativeContainingBlockWidth
	RelativeContainingBlockHeight
	RelativeFontSize
	RelativeParentFontSize
	RelativeLineHeight
)
