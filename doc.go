/*
Package helpers implements the number-theory helpers used by the ETRU (Eisenstein NTRU)
cryptosystem: the extended Euclidean algorithm, a trial-division primality test, and
arbitrary-precision conversion between base 10 and base 7.

This package holds the shared error types and the alphabet Codec. The bigint, base7 and
numtheory sub-packages contain the API.

*/
package helpers
