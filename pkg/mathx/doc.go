// Package mathx collects small numeric and geometric routines: quadratic
// roots, great-circle distance, point geometry, factorials, Fibonacci
// numbers, divisors and primes, plus generic clamping and rounding helpers.
//
// Angles are in degrees unless a function name says otherwise. Screen
// geometry follows image coordinates, so the Y axis grows downwards and
// DegreesToPoint(90, r, o) lies above o.
package mathx
