package game

// Evaluate applies the comparison rule of the difficulty. ok is false when
// the difficulty has no rule, in which case the player is handed the win.
func Evaluate(difficulty Difficulty, guess, secret int) (won bool, ok bool) {
	switch difficulty {
	case Easy:
		return guess >= secret, true
	case Medium:
		return guess > secret, true
	case Hard:
		return guess == secret, true
	default:
		return true, false
	}
}
