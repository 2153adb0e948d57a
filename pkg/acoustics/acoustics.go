// Package acoustics converts between frequencies, wavelengths and well
// dimensions of a quadratic-residue style diffuser.
package acoustics

import (
	"fmt"

	"github.com/prdtools/prd/internal/params"
	"github.com/prdtools/prd/pkg/math/numtheory"
)

// SpeedOfSound in meters per second at 20°C.
const SpeedOfSound = params.SpeedOfSound

func speed(sos float64) float64 {
	if sos <= 0 {
		return SpeedOfSound
	}
	return sos
}

// WavelengthMeters returns the wavelength of freq Hz in meters.
// A non-positive sos selects SpeedOfSound.
func WavelengthMeters(freq, sos float64) float64 {
	return speed(sos) / freq
}

// WavelengthCM returns the wavelength of freq Hz in centimeters.
func WavelengthCM(freq, sos float64) float64 {
	return WavelengthMeters(freq, sos) * 100
}

// FrequencyMeters returns the frequency in Hz of a wavelength in meters.
func FrequencyMeters(wavelength, sos float64) float64 {
	return speed(sos) / wavelength
}

// FrequencyCM returns the frequency in Hz of a wavelength in centimeters.
func FrequencyCM(wavelength, sos float64) float64 {
	return FrequencyMeters(wavelength/100, sos)
}

// WellWidthCM returns the widest well, in centimeters, that still diffuses up
// to freq Hz: half a wavelength.
func WellWidthCM(freq, sos float64) float64 {
	return WavelengthCM(freq, sos) / 2
}

// MaxFrequency returns the highest frequency in Hz diffused by wells of the
// given width in centimeters.
func MaxFrequency(wellWidthCM, sos float64) float64 {
	return FrequencyCM(wellWidthCM*2, sos)
}

// DepthStepCM returns the depth increment in centimeters per sequence index
// for a modulus n and the lowest design frequency freq: λ/(2n).
func DepthStepCM(freq float64, n uint64, sos float64) (float64, error) {
	if !(freq > 0) {
		return 0, fmt.Errorf("acoustics: design frequency %v: %w", freq, numtheory.ErrInvalidArgument)
	}
	if n == 0 {
		return 0, fmt.Errorf("acoustics: modulus 0: %w", numtheory.ErrInvalidArgument)
	}
	return WavelengthCM(freq, sos) / float64(2*n), nil
}
