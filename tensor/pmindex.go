package tensor

// NoGlobalMeasurement marks a PMIndex whose GlobalMmt has not been
// resolved against a particular context.
const NoGlobalMeasurement = -1

// PMIndex names one measurement by its party and its index within that
// party's measurement list, plus an optional flattened index over every
// measurement in the scenario. Recovered from
// original_source/.../party_measurement_index.h, dropped by the
// distillation but required by CollinsGisin.MeasurementToRange and
// ProbabilityTensor.MeasurementToRange.
type PMIndex struct {
	Party     int
	Mmt       int
	GlobalMmt int
}

// NewPMIndex builds a PMIndex with an unresolved GlobalMmt.
func NewPMIndex(party, mmt int) PMIndex {
	return PMIndex{Party: party, Mmt: mmt, GlobalMmt: NoGlobalMeasurement}
}

// PMOIndex extends PMIndex with a chosen outcome.
type PMOIndex struct {
	PMIndex
	Outcome int
}

// NewPMOIndex pairs a measurement index with an outcome.
func NewPMOIndex(pm PMIndex, outcome int) PMOIndex {
	return PMOIndex{PMIndex: pm, Outcome: outcome}
}
