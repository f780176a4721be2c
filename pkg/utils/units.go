package utils

import (
	"fmt"
	"math"
)

const (
	MetersPerMile = 1609.344
	FeetPerMeter  = 3.28084
)

func Round1(x float64) float64 { return math.Round(x*10) / 10 }
func Round2(x float64) float64 { return math.Round(x*100) / 100 }

// MetersToMiles converts a provider distance to miles, rounded for storage.
func MetersToMiles(meters float64) float64 {
	return Round2(meters / MetersPerMile)
}

// MetersToFeet converts elevation gain to feet, rounded to one decimal.
func MetersToFeet(meters float64) float64 {
	return Round1(meters * FeetPerMeter)
}

// PaceForRun derives seconds-per-mile and the rendered pace string from a
// distance in miles and a duration in seconds. A zero distance yields
// "0:00/mi" rather than dividing.
func PaceForRun(distanceMiles float64, durationSeconds int) (string, int) {
	if distanceMiles <= 0 {
		return "0:00/mi", 0
	}
	paceSec := int(math.Round(float64(durationSeconds) / distanceMiles))
	return FormatPace(paceSec), paceSec
}

// FormatPace renders seconds-per-mile as "M:SS/mi". The format is consumed
// by trend displays and must stay stable.
func FormatPace(paceSeconds int) string {
	return fmt.Sprintf("%d:%02d/mi", paceSeconds/60, paceSeconds%60)
}
