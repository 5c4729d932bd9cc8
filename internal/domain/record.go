package domain

import "strconv"

// RoundingNone labels a record rendered without rounding.
const RoundingNone = "none"

// Record is the serializable rendering of one measurement at one rounding
// level. Field names match the particle database consumed by the web front
// end.
type Record struct {
	Significand string `json:"Significand" yaml:"significand"`
	Base        string `json:"Base" yaml:"base"`
	Exponent    string `json:"Exponent" yaml:"exponent"`
	Unit        string `json:"Unit" yaml:"unit"`
	UnitClass   string `json:"UnitClass" yaml:"unit_class"`
	Rounding    string `json:"Rounding" yaml:"rounding"`
	HTML        string `json:"HTML" yaml:"html"`
	LaTeX       string `json:"LaTeX" yaml:"latex"`
}

// RoundingLabel returns "Nsf" for a positive significant-figure count and
// RoundingNone for 0.
func RoundingLabel(sigFigs int) string {
	if sigFigs <= 0 {
		return RoundingNone
	}
	return strconv.Itoa(sigFigs) + "sf"
}
