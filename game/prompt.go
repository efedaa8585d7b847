package game

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type session struct {
	input *tokenReader
	out   io.Writer
	log   logrus.FieldLogger

	streamRetries  int
	streamFailures int
}

func newSession(config GameConfig) *session {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &session{
		input:         newTokenReader(config.In),
		out:           config.Out,
		log:           log,
		streamRetries: config.StreamRetries,
	}
}

func (s *session) close() {
	if err := s.input.Close(); err != nil {
		s.log.WithError(err).Warn("input not released")
	}
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *session) printInfo() {
	s.println(infoHeader)
	for _, line := range infoLines {
		s.println(line)
	}
	s.println(infoFooter)
}

// reject reports a failed answer and prepares the next attempt. It returns
// the error back once the input has failed too many times in a row.
func (s *session) reject(err error) error {
	if isStreamError(err) {
		s.streamFailures++
		s.log.WithError(err).WithField("failures", s.streamFailures).Warn("input stream failed")

		if s.streamRetries > 0 && s.streamFailures > s.streamRetries {
			return err
		}
	} else {
		s.streamFailures = 0
		s.log.WithError(err).Debug("answer rejected")
	}

	s.println(invalidAnswerMessage)
	s.input.DiscardLine()
	return nil
}

func (s *session) promptDifficulty() (Difficulty, error) {
	for {
		s.println(difficultyPrompt)

		token, err := s.input.Next()
		if err == nil {
			s.streamFailures = 0

			difficulty, ok := ParseDifficulty(token)
			switch {
			case !ok:
				err = errors.Wrapf(ErrInputFormat, "unknown difficulty %q", token)
			case difficulty == Info:
				s.printInfo()
				continue
			default:
				s.log.WithField("difficulty", difficulty).Debug("difficulty chosen")
				return difficulty, nil
			}
		}

		if err := s.reject(err); err != nil {
			return 0, err
		}
	}
}

func (s *session) promptGuess() (int, error) {
	for {
		s.println(guessPrompt)

		guess, err := s.input.NextInt()
		if err == nil {
			s.streamFailures = 0

			if guess >= MinNumber && guess <= MaxNumber {
				s.log.WithField("guess", guess).Debug("guess accepted")
				return guess, nil
			}
			err = errors.Wrapf(ErrInputFormat, "%d outside [%d, %d]", guess, MinNumber, MaxNumber)
		}

		if err := s.reject(err); err != nil {
			return 0, err
		}
	}
}
