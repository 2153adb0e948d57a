// Package numtheory implements the number theory needed to build primitive
// root sequences: gcd, Euler's totient φ, the Carmichael function λ,
// multiplicative orders and primitive roots modulo n.
//
// All functions are pure. Moduli are limited to params.MaxModulus so that the
// product of two residues fits in 64 bits.
package numtheory
