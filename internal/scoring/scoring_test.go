package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/eligesaludable/internal/scoring"
)

func TestPoints_Correct(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		want    int
	}{
		{name: "instant", elapsed: 0, want: 100},
		{name: "fractional seconds are floored", elapsed: 9.99, want: 91},
		{name: "ten seconds", elapsed: 10, want: 90},
		{name: "exactly at floor", elapsed: 90, want: 10},
		{name: "just past floor", elapsed: 90.5, want: 10},
		{name: "slow answer", elapsed: 95, want: 10},
		{name: "very slow answer", elapsed: 10_000, want: 10},
		{name: "negative clamps to instant", elapsed: -3, want: 100},
		{name: "infinite", elapsed: math.Inf(1), want: 10},
		{name: "nan", elapsed: math.NaN(), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.Points(true, tt.elapsed))
		})
	}
}

func TestPoints_IncorrectIsAlwaysZero(t *testing.T) {
	for _, elapsed := range []float64{0, 1, 50, 99, 1000} {
		assert.Equal(t, 0, scoring.Points(false, elapsed), "elapsed=%v", elapsed)
	}
}

func TestPoints_MatchesFormula(t *testing.T) {
	for s := 0; s <= 200; s++ {
		want := max(100-s, 10)
		assert.Equal(t, want, scoring.Points(true, float64(s)+0.25), "elapsed=%d.25", s)
	}
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0, scoring.Accuracy(0, 0), "no answers")
	assert.Equal(t, 100, scoring.Accuracy(5, 5))
	assert.Equal(t, 67, scoring.Accuracy(2, 3))
	assert.Equal(t, 33, scoring.Accuracy(1, 3))
	assert.Equal(t, 50, scoring.Accuracy(1, 2))
	assert.Equal(t, 13, scoring.Accuracy(1, 8), "12.5 rounds up")
	assert.Equal(t, 0, scoring.Accuracy(0, 4))
	assert.Equal(t, 100, scoring.Accuracy(7, 4), "correct is capped at total")
}

func TestLivesLost(t *testing.T) {
	assert.Equal(t, 0, scoring.LivesLost(3, 3))
	assert.Equal(t, 2, scoring.LivesLost(3, 1))
	assert.Equal(t, 3, scoring.LivesLost(3, 0))
	assert.Equal(t, 3, scoring.LivesLost(3, -2), "never more than initial")
	assert.Equal(t, 0, scoring.LivesLost(3, 5), "never negative")
	assert.Equal(t, 0, scoring.LivesLost(0, 0))
}
