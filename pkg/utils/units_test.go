package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetersToMiles(t *testing.T) {
	assert.Equal(t, 6.21, MetersToMiles(10000))
	assert.Equal(t, 3.11, MetersToMiles(5000))
	assert.Equal(t, 0.0, MetersToMiles(0))
}

func TestMetersToFeet(t *testing.T) {
	assert.Equal(t, 328.1, MetersToFeet(100))
	assert.Equal(t, 32.8, MetersToFeet(10))
}

func TestPaceForRun(t *testing.T) {
	pace, seconds := PaceForRun(6.0, 3000)
	assert.Equal(t, "8:20/mi", pace)
	assert.Equal(t, 500, seconds)

	pace, seconds = PaceForRun(3.1, 1488)
	assert.Equal(t, 480, seconds)
	assert.Equal(t, "8:00/mi", pace)
}

func TestPaceForRunZeroDistance(t *testing.T) {
	pace, seconds := PaceForRun(0, 1800)
	assert.Equal(t, "0:00/mi", pace)
	assert.Equal(t, 0, seconds)

	pace, seconds = PaceForRun(-1, 1800)
	assert.Equal(t, "0:00/mi", pace)
	assert.Equal(t, 0, seconds)
}

func TestFormatPace(t *testing.T) {
	assert.Equal(t, "8:20/mi", FormatPace(500))
	assert.Equal(t, "10:05/mi", FormatPace(605))
	assert.Equal(t, "0:59/mi", FormatPace(59))
}
