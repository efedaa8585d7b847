package game

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	In  io.Reader
	Out io.Writer

	Logger logrus.FieldLogger

	// Source of the secret number; required
	Picker Picker

	// Difficulty to play without asking. Info means the player is asked
	Difficulty Difficulty

	// Consecutive failed reads tolerated before the input is considered gone.
	// Zero retries forever
	StreamRetries int
}

func NewGameConfig() GameConfig {
	return GameConfig{
		In:            os.Stdin,
		Out:           os.Stdout,
		Logger:        logrus.StandardLogger(),
		Picker:        nil,
		Difficulty:    Info,
		StreamRetries: 3,
	}
}

// ErrNoPicker is returned by Run when the config has no Picker
var ErrNoPicker = errors.New("no secret picker configured")

// Run plays a single round. An error means the round was abandoned before an
// outcome could be printed; the caller reports it with FatalMessage.
func Run(config GameConfig) error {
	if config.Picker == nil {
		return ErrNoPicker
	}

	s := newSession(config)
	defer s.close()

	s.println(startBanner)

	difficulty := config.Difficulty
	if difficulty.Playable() {
		s.log.WithField("difficulty", difficulty).Debug("difficulty preselected")
	} else {
		var err error
		if difficulty, err = s.promptDifficulty(); err != nil {
			return errors.Wrap(err, "choosing difficulty")
		}
	}

	guess, err := s.promptGuess()
	if err != nil {
		return errors.Wrap(err, "reading guess")
	}

	secret := config.Picker.Pick(MinNumber, MaxNumber)
	if secret < MinNumber || secret > MaxNumber {
		return errors.Errorf("secret %d outside [%d, %d]", secret, MinNumber, MaxNumber)
	}
	s.log.WithField("secret", secret).Debug("secret picked")

	won, ok := Evaluate(difficulty, guess, secret)
	if !ok {
		s.println(unreachableMessage)
	}

	fmt.Fprintf(s.out, summaryFormat, difficulty, guess, secret)
	if won {
		s.println(winMessage)
	} else {
		s.println(loseMessage)
	}

	snapshot := newRoundSnapshot(difficulty, guess, secret, won)
	s.log.WithField("won", won).Debugf("round finished\n%s", snapshot.Serialize())

	s.println(endBanner)
	return nil
}
