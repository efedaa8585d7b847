package game

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

// ErrInputFormat is the cause of every rejected answer
var ErrInputFormat = errors.New("invalid answer")

// StreamError reports that the input can no longer produce tokens
type StreamError struct {
	Err error
}

func (err *StreamError) Error() string {
	return err.Err.Error()
}

func isStreamError(err error) bool {
	_, isStream := errors.Cause(err).(*StreamError)
	return isStream
}

// tokenReader splits its input into whitespace-delimited tokens. Tokens of
// the line being consumed wait in a queue until read or discarded. Lines are
// not length limited.
type tokenReader struct {
	source  io.Reader
	lines   *bufio.Reader
	pending deque.Deque

	// First read error; every later read fails with it too
	err error
}

func newTokenReader(in io.Reader) *tokenReader {
	return &tokenReader{source: in, lines: bufio.NewReader(in)}
}

func (reader *tokenReader) Next() (string, error) {
	for reader.pending.Len() == 0 {
		if reader.err != nil {
			return "", &StreamError{Err: errors.Wrap(reader.err, "reading token")}
		}

		// A final line without a newline still comes back along with io.EOF
		line, err := reader.lines.ReadString('\n')
		reader.err = err

		for _, field := range strings.Fields(line) {
			reader.pending.PushBack(field)
		}
	}

	return reader.pending.PopFront().(string), nil
}

func (reader *tokenReader) NextInt() (int, error) {
	token, err := reader.Next()
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(ErrInputFormat, "%q is not an integer", token)
	}
	return value, nil
}

// DiscardLine drops whatever remains of the current line
func (reader *tokenReader) DiscardLine() {
	for reader.pending.Len() > 0 {
		reader.pending.PopFront()
	}
}

// Close drops pending tokens and closes the input, unless it is stdin
func (reader *tokenReader) Close() error {
	reader.DiscardLine()
	reader.err = io.ErrClosedPipe

	if closer, ok := reader.source.(io.Closer); ok && reader.source != io.Reader(os.Stdin) {
		return errors.Wrap(closer.Close(), "closing input")
	}
	return nil
}
