// Package scoring holds the point and summary arithmetic of the game.
package scoring

import "math"

const (
	// MaxPoints is awarded for a correct answer given instantly.
	MaxPoints = 100
	// MinCorrectPoints is the floor for any correct answer, however slow.
	MinCorrectPoints = 10
	// DefaultLives is the number of lives a session starts with.
	DefaultLives = 3
)

// Points returns the score for a single answer. Correct answers lose one
// point per whole elapsed second, never dropping below MinCorrectPoints.
// Incorrect answers are worth nothing.
func Points(correct bool, elapsedSeconds float64) int {
	if !correct {
		return 0
	}
	if math.IsNaN(elapsedSeconds) || elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if elapsedSeconds >= MaxPoints-MinCorrectPoints {
		return MinCorrectPoints
	}
	return max(MaxPoints-int(math.Floor(elapsedSeconds)), MinCorrectPoints)
}

// Accuracy returns the percentage of correct answers rounded half up.
// A session without answers has 0% accuracy.
func Accuracy(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct > total {
		correct = total
	}
	return (200*correct + total) / (2 * total)
}

// LivesLost returns initial-remaining clamped to [0, initial].
func LivesLost(initial, remaining int) int {
	if initial <= 0 {
		return 0
	}
	lost := initial - remaining
	if lost < 0 {
		return 0
	}
	if lost > initial {
		return initial
	}
	return lost
}
