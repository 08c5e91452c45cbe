// Package sieve implements a segmented, wheel-accelerated sieve of
// Eratosthenes over a base-10 residue table: only the last digits
// {1,3,7,9} are tracked, one bit each, packed four-to-a-byte with one
// byte per decade. Small primes are seeded by replicating a short
// composite pattern (wheel rolling) instead of by iterated
// multiplication, and the remainder of the range is sieved in
// cache-sized blocks, either on one goroutine or across a fixed worker
// pool.
//
// Argument parsing, help text, and output formatting live in
// cmd/primesieve; this package only accepts a Config and produces
// primes.
package sieve
