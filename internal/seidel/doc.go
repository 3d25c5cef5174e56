// Package seidel implements Seidel's randomized incremental construction of
// a trapezoidal decomposition for one or more planar polygon loops. It
// builds the decomposition's search DAG, resolves which trapezoids lie
// inside the decomposed area via the right-edge registry parity test, and
// exposes just enough of the result (AllLeafTraps, Bounds, Inside,
// EdgeEndpoints) for the monotone-mountain extraction stage to consume.
//
// Everything here is pure geometry and bookkeeping; it has no notion of
// "a polygon is valid" (that lives in the polytri package, which validates
// input before ever calling Trapezoidize).
package seidel
