// Package binomial generates the coefficients of (x+1)^n, renders the
// expanded polynomial and evaluates it one term at a time.
//
// All arithmetic uses math/big, so results are exact for any n and x.
// Generation strategies are registered by name in a Registry; the default
// "multiplicative" backend uses the recurrence
//
//	C(n,k) = C(n,k-1) * (n-k+1) / k
//
// in which every division is exact.
package binomial
