// Package numeric provides the arbitrary-precision decimal arithmetic used by
// every quantity calculation. Values are immutable; all operations go through
// a Context that fixes the working precision for the lifetime of a batch, so
// chained conversions by physical constants round the same way every time.
package numeric
