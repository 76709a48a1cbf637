package ml

import (
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/mat"
)

// SSE returns the sum of squared differences between the output and the expected output.
// Comparing matrices of different shape is a programming error and panics.
func SSE(output, expected mat.Matrix) float64 {
	mustHaveSameShape(output, expected)
	o := xmath.Vector(flatten(output))
	e := xmath.Vector(flatten(expected))
	xmath.MustHaveSameSize(o, e)
	return o.Diff(e).Op(xmath.Square).Sum()
}

func mustHaveSameShape(a, b mat.Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(fmt.Sprintf("matrices must have the same shape '(%d, %d)' vs '(%d, %d)'", ar, ac, br, bc))
	}
}

// flatten returns the matrix elements in row-major order.
func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	vv := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vv = append(vv, m.At(i, j))
		}
	}
	return vv
}
