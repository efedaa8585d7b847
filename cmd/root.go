package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/numguess/game"
	"github.com/they4kman/numguess/picker/random"
)

var gameConfig = game.NewGameConfig()
var logLevel = "warn"
var seed int64

var rootCmd = &cobra.Command{
	Use:   "numguess",
	Short: "Guess the computer's number between 1 and 10",
	Long: `numguess picks a secret number between 1 and 10 and asks you to guess it.
Whether you win depends on the difficulty:

	EASY    your guess is higher than or equal to the secret
	MEDIUM  your guess is strictly higher than the secret
	HARD    your guess is the secret

Run with no arguments to be asked for a difficulty
	numguess

Skip the question by naming the difficulty up front
	numguess --difficulty hard
`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		gameConfig.Logger = logger
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		gameConfig.Out = cmd.OutOrStdout()
		gameConfig.In = cmd.InOrStdin()
		gameConfig.Picker = random.New(seed)

		if err := game.Run(gameConfig); err != nil {
			gameConfig.Logger.WithError(err).Error("round abandoned")
			fmt.Fprintln(gameConfig.Out, game.FatalMessage)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(parsed)
	return logger, nil
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (diffVal *difficultyValue) String() string {
	difficulty := game.Difficulty(*diffVal)
	if !difficulty.Playable() {
		return ""
	}
	return strings.ToLower(difficulty.String())
}

func (diffVal *difficultyValue) Set(value string) error {
	if difficulty, isValid := game.ParseDifficulty(value); isValid && difficulty.Playable() {
		*diffVal = difficultyValue(difficulty)
		return nil
	}
	return fmt.Errorf("invalid difficulty %q, expected easy, medium or hard", value)
}

func (diffVal *difficultyValue) Type() string {
	return "game.Difficulty"
}

func init() {
	rootCmd.Flags().VarP(newDifficultyValue(game.Info, &gameConfig.Difficulty), "difficulty", "d", `Difficulty to play, instead of asking for one.
easy: win when your guess is higher than or equal to the secret
medium: win when your guess is strictly higher than the secret
hard: win when your guess is the secret`)
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the secret number (0 seeds from the clock)")
	rootCmd.Flags().IntVar(&gameConfig.StreamRetries, "stream-retries", 3, "Failed reads in a row tolerated before giving up (0 retries forever)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "Level of diagnostics written to stderr")
}
