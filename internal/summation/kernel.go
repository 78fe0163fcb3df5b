package summation

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Kernel writes a[i] + b[i] into dst[i] for every index. All three slices
// have the same length.
type Kernel func(dst, a, b []float64)

// ScalarAdd is the plain index-ordered loop.
func ScalarAdd(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// VectorAdd delegates to the SIMD block kernel selected for the running CPU.
func VectorAdd(dst, a, b []float64) {
	vecmath.AddBlock(dst, a, b)
}

// KernelByName resolves "scalar" or "vector".
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "", "scalar":
		return ScalarAdd, nil
	case "vector":
		return VectorAdd, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q", name)
	}
}
