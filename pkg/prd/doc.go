// Package prd computes primitive root diffuser layouts.
//
// A layout is built leaf first: the residue sequence of each axis modulus,
// the index grid composed from them, and the depth grid scaled from the
// indices. Parameters describes one request; Validate reports every problem
// with it at once, while ComputeGrid, NormalizeDepths and Compute stop at the
// first error.
//
// Designer searches for grid sizes whose cell count is one less than a prime,
// the shape used by Folded layouts, and Sweep computes many layouts
// concurrently.
package prd
