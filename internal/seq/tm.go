package seq

import "github.com/bebop/poly/primers"

// TmFunc predicts the melting temperature of a sequence in degrees C. The
// reactions treat it as a pure function: inject a custom one to swap
// thermodynamic models (tests use a simple Wallace-rule stub).
type TmFunc func(sequence string) float64

// MeltingTemp is the default TmFunc, the SantaLucia nearest-neighbor model.
func MeltingTemp(sequence string) float64 {
	return primers.MeltingTemp(sequence)
}
