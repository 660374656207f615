package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeFromEpoch_Seconds(t *testing.T) {
	got := TimeFromEpoch(1700000000)
	assert.Equal(t, int64(1700000000), got.Unix())
}

func TestTimeFromEpoch_Millis(t *testing.T) {
	got := TimeFromEpoch(1700000000000)
	assert.Equal(t, int64(1700000000), got.Unix())
}

func TestTimeFromEpoch_SecondsAndMillisSameInstant(t *testing.T) {
	secs := TimeFromEpoch(1700000000)
	millis := TimeFromEpoch(1700000000000)
	assert.True(t, secs.Equal(millis))
}

func TestTimeFromEpoch_ThresholdBoundary(t *testing.T) {
	// Just below the threshold: read as seconds (year 2286).
	below := TimeFromEpoch(9_999_999_999)
	assert.Equal(t, int64(9_999_999_999), below.Unix())

	// At the threshold: read as milliseconds.
	at := TimeFromEpoch(10_000_000_000)
	assert.Equal(t, int64(10_000_000), at.Unix())
}

func TestTimeFromEpoch_Zero(t *testing.T) {
	assert.True(t, TimeFromEpoch(0).Equal(time.Unix(0, 0)))
}
