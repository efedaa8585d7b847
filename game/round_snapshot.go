package game

import (
	"gopkg.in/yaml.v2"
)

type RoundSnapshot struct {
	Difficulty string `yaml:"difficulty"`
	Guess      int    `yaml:"guess"`
	Secret     int    `yaml:"secret"`
	Won        bool   `yaml:"won"`
}

func newRoundSnapshot(difficulty Difficulty, guess, secret int, won bool) *RoundSnapshot {
	return &RoundSnapshot{
		Difficulty: difficulty.String(),
		Guess:      guess,
		Secret:     secret,
		Won:        won,
	}
}

func (snapshot *RoundSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}
