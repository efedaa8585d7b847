package game

import (
	"strings"

	"github.com/they4kman/numguess/util/collections"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Info
)

var Difficulties = []Difficulty{
	Easy,
	Medium,
	Hard,
	Info,
}

var difficultyNames = map[Difficulty]string{
	Easy:   "EASY",
	Medium: "MEDIUM",
	Hard:   "HARD",
	Info:   "INFO",
}

// Difficulties a round can actually be evaluated with
var playable = collections.NewSet(Easy, Medium, Hard)

func (difficulty Difficulty) String() string {
	if name, ok := difficultyNames[difficulty]; ok {
		return name
	}
	return "UNKNOWN"
}

// Playable reports whether the difficulty selects a comparison rule. Info
// only ever asks for help.
func (difficulty Difficulty) Playable() bool {
	return playable.Contains(difficulty)
}

// ParseDifficulty matches a raw token against the difficulty names, ignoring
// surrounding whitespace and case. Prefixes do not match.
func ParseDifficulty(token string) (Difficulty, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for _, difficulty := range Difficulties {
		if difficultyNames[difficulty] == normalized {
			return difficulty, true
		}
	}
	return 0, false
}

const (
	MinNumber = 1
	MaxNumber = 10
)

const (
	startBanner = "\n ------- GAME START --------\n"
	endBanner   = "\n ------- GAME ENDED --------"

	difficultyPrompt = "Please choose a difficulty: EASY, MEDIUM, or HARD. Type INFO for difficulty information."
	guessPrompt      = "\nPlease enter a number in the range 1-10 (1 and 10 are allowed values)."

	infoHeader = "\n-------- Difficult Information -----------"
	infoFooter = "------------------------------------------\n"

	invalidAnswerMessage = "\nERROR: Invalid answer. Please try again."
	unreachableMessage   = "Wow. You should not have been able to get here. Have a win!"

	summaryFormat = "\nProgram Parameters: Difficulty: %s, Your Guess: %d, Computer Guess: %d\n"
	winMessage    = "\nWinner winner, chicken dinner!"
	loseMessage   = "\nYou lost :( At least you didn't pay any cost!"

	// FatalMessage is printed by the caller of Run when the round is abandoned
	FatalMessage = "\nERROR: Problem reading user input. The program will end."
)

var infoLines = [...]string{
	"Easy: guess a number - program will tell you if it was higher or equal (you win) or lower (computer wins) than the program's number.",
	"Medium: guess a number - program will tell you if it was strictly higher (you win) or lower or equal (computer wins) than the program's number.",
	"Hard: guess a number - program will tell you if it was equal (you win) or not (you lose) to the program's number.",
}
