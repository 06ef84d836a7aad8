package globals

import "strconv"

// FormatPressure renders a pressure target the way the operator typed it,
// without a fixed number of decimals.
func FormatPressure(pressure float64) string {
	return strconv.FormatFloat(pressure, 'g', -1, 64)
}

// SuggestedPressure reports whether a target belongs to the recommended list.
func SuggestedPressure(pressure float64) bool {
	for _, target := range TargetPressures {
		if target == pressure {
			return true
		}
	}
	return false
}

// PressureList renders the recommended targets for operator prompts.
func PressureList() string {
	out := ""
	for i, target := range TargetPressures {
		if i > 0 {
			out += ", "
		}
		out += FormatPressure(target)
	}
	return out
}
