// Package symbolic declares the consumer-side contracts the tensor and
// momentsys layers use to talk to the surrounding symbol table, rule
// completion engine, and polynomial representation -- all owned and
// constructed by a host collaborator, never by this module (see spec.md
// §6, "External interfaces"). It also carries the small Polynomial/
// Monomial/LinearCombination value types those contracts traffic in.
package symbolic
