package game

type Picker interface {
	/**
	 * Choose the secret number, uniformly within [min, max]
	 */
	Pick(min, max int) int
}
