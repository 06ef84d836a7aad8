package dataformats

// telemetry sample data model
type Sample struct {
	Force    float64 `json:"force"`
	Distance float64 `json:"distance"`
	Pressure float64 `json:"pressure"`
}

// calibration data model, computed once and fixed for the whole run
type CalibrationResult struct {
	Reference float64 `json:"reference"`
	Offset    float64 `json:"offset"`
}

// Calibrated turns a raw sensor distance into a real length.
func (c CalibrationResult) Calibrated(distance float64) float64 {
	return distance + c.Offset
}

// Shrinkage turns a raw sensor distance into a contraction percentage
// relative to the reference length.
func (c CalibrationResult) Shrinkage(distance float64) float64 {
	return -(c.Calibrated(distance) - c.Reference) / c.Reference * 100.0
}
