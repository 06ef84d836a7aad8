package postprocess

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Smooth applies a Savitzky-Golay filter to the series. An even window is
// widened by one, the filter needs an odd one. Edges are mirror padded.
func Smooth(values []float64, window, order int) ([]float64, error) {
	if window%2 == 0 {
		window++
	}
	if window < 3 {
		return nil, errors.Errorf("postprocess.Smooth: window %d is too small", window)
	}
	if order >= window {
		return nil, errors.Errorf("postprocess.Smooth: order %d does not fit window %d", order, window)
	}
	if len(values) < window {
		return nil, errors.Errorf("postprocess.Smooth: %d values cannot fill window %d", len(values), window)
	}

	weights, err := savgolWeights(window, order)
	if err != nil {
		return nil, err
	}
	half := window / 2
	smoothed := make([]float64, len(values))
	for i := range values {
		total := 0.0
		for j := 0; j < window; j++ {
			total += weights[j] * mirrored(values, i+j-half)
		}
		smoothed[i] = total
	}
	return smoothed, nil
}

// savgolWeights solves the least squares polynomial fit over the window and
// keeps the row that evaluates the fit at the window centre.
func savgolWeights(window, order int) ([]float64, error) {
	design := mat.NewDense(window, order+1, nil)
	half := window / 2
	for i := 0; i < window; i++ {
		x := float64(i - half)
		value := 1.0
		for j := 0; j <= order; j++ {
			design.Set(i, j, value)
			value *= x
		}
	}
	var normal mat.Dense
	normal.Mul(design.T(), design)
	var inverse mat.Dense
	if err := inverse.Inverse(&normal); err != nil {
		return nil, errors.Wrap(err, "postprocess.savgolWeights: the window is singular")
	}
	var pseudo mat.Dense
	pseudo.Mul(&inverse, design.T())
	return mat.Row(nil, 0, &pseudo), nil
}

// mirrored reflects indexes outside the series back into it.
func mirrored(values []float64, index int) float64 {
	last := len(values) - 1
	for index < 0 || index > last {
		if index < 0 {
			index = -index
		}
		if index > last {
			index = 2*last - index
		}
	}
	return values[index]
}
