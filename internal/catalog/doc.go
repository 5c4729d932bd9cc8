// Package catalog compiles particle records into the particle database read
// by the web front end.
//
// The record reader hands over one Fields value per particle holding the raw
// text of each quantity. Compiling renders every quantity field on its own:
// a field whose text does not parse is reported as a FieldError and kept
// verbatim in Particle.Unparsed while the other fields still compile. An
// arithmetic contract violation aborts the affected record only.
package catalog
