package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/numguess/game"
)

func TestDifficultyValue(t *testing.T) {
	var difficulty game.Difficulty
	value := newDifficultyValue(game.Info, &difficulty)
	assert.Equal(t, game.Info, difficulty)
	assert.Equal(t, "", value.String())

	require.NoError(t, value.Set("Hard"))
	assert.Equal(t, game.Hard, difficulty)
	assert.Equal(t, "hard", value.String())

	assert.Error(t, value.Set("info"))
	assert.Error(t, value.Set("extreme"))
	assert.Equal(t, game.Hard, difficulty)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	_, err = newLogger("chatty")
	assert.Error(t, err)
}

func TestRootCommandPlaysRound(t *testing.T) {
	saved := gameConfig
	defer func() { gameConfig = saved }()

	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader("5\n"))
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--difficulty", "easy", "--seed", "3", "--log-level", "error"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Program Parameters: Difficulty: EASY, Your Guess: 5,")
	assert.Contains(t, out.String(), "GAME ENDED")
}

func TestRootCommandReportsUnreadableInput(t *testing.T) {
	saved := gameConfig
	defer func() { gameConfig = saved }()

	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--stream-retries", "2", "--log-level", "panic"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), game.FatalMessage)
	assert.NotContains(t, out.String(), "GAME ENDED")
}
