// Package domain contains the value types shared by every stage of the
// quantity pipeline: quantity kinds and unit tags, parsed quantities,
// normalized measurements, renderable records, the physical constants the
// conversions depend on, and the errors callers are expected to match on.
// Every value here is immutable once constructed.
package domain
