package pauli

import "github.com/ajpgarner/moment-sub006/dictionary"

// Axis names one of the three non-identity Pauli matrices acting on a
// single qubit.
type Axis int

const (
	// AxisX is sigma-X.
	AxisX Axis = iota
	// AxisY is sigma-Y.
	AxisY
	// AxisZ is sigma-Z.
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// qubitOf and axisOf decode a dictionary.Operator under the Pauli
// convention id = 3*qubit + axis.
func qubitOf(op dictionary.Operator) int { return int(op) / 3 }
func axisOf(op dictionary.Operator) Axis { return Axis(int(op) % 3) }

func makeOperator(qubit int, axis Axis) dictionary.Operator {
	return dictionary.Operator(3*qubit + int(axis))
}

// axisCombine multiplies two distinct-or-equal single-qubit Pauli
// operators. Equal axes annihilate to the identity (ok=false); distinct
// axes produce the third axis with a +-i phase, per the standard Pauli
// algebra: XY=iZ, YX=-iZ, YZ=iX, ZY=-iX, ZX=iY, XZ=-iY.
func axisCombine(a, b Axis) (result Axis, ok bool, phase dictionary.Sign) {
	if a == b {
		return 0, false, dictionary.SignPositive
	}
	third := Axis(3 - int(a) - int(b))
	forward := (int(b)-int(a)+3)%3 == 1
	if forward {
		return third, true, dictionary.SignImaginary
	}
	return third, true, dictionary.SignNegImaginary
}

// foldQubitRun reduces a run of operators known to act on the same qubit
// (in application order) to at most one operator plus an accumulated
// phase, by repeated application of axisCombine.
func foldQubitRun(axes []Axis) (result Axis, present bool, phase dictionary.Sign) {
	phase = dictionary.SignPositive
	if len(axes) == 0 {
		return 0, false, phase
	}
	cur := axes[0]
	present = true
	for _, next := range axes[1:] {
		if !present {
			cur = next
			present = true
			continue
		}
		c, ok, ph := axisCombine(cur, next)
		phase = phase.Combine(ph)
		if !ok {
			present = false
		} else {
			cur = c
		}
	}
	return cur, present, phase
}
