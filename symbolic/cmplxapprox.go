package symbolic

import "gonum.org/v1/gonum/cmplxs"

// cmplxApproxEqual wraps gonum's complex-slice approximate equality for
// the sparse, symbol-id-keyed coefficient vectors Polynomial.ApproxEqual
// compares -- cmplxs operates on dense []complex128 slices, so callers
// align terms into parallel slices before reaching here.
func cmplxApproxEqual(a, b []complex128, tol float64) bool {
	return cmplxs.EqualApprox(a, b, tol)
}
