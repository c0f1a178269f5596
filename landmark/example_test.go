package landmark_test

import (
	"fmt"

	"github.com/katalvlaran/liegeo/landmark"
)

// ExampleKernelMetric_GeodesicExp shoots a single landmark along the kernel
// geodesic: with no other landmark to interact with, the flow is a straight
// line at the momentum.
func ExampleKernelMetric_GeodesicExp() {
	m, _ := landmark.NewKernelMetric(2, 1, landmark.GaussianKernel(1))

	endpoint, _ := m.GeodesicExp([]float64{0.5, 2}, []float64{1, -2}, landmark.DefaultGeodesicOptions())
	fmt.Printf("[%.1f %.1f]\n", endpoint[0], endpoint[1])
	// Output: [1.5 0.0]
}

// ExampleL2Metric_Log measures the flat displacement between two landmark
// configurations.
func ExampleL2Metric_Log() {
	m, _ := landmark.NewL2Metric(2, 2)

	v, _ := m.Log(
		[]float64{1, 0, 0, 0.1},
		[]float64{0, 0, 1, 0.1},
	)
	fmt.Println(v)
	// Output: [1 0 -1 0]
}
