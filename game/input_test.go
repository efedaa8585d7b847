package game

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenReaderSplitsAcrossLines(t *testing.T) {
	reader := newTokenReader(strings.NewReader("  easy 7\n\n\t3  \n"))

	for _, expected := range []string{"easy", "7", "3"} {
		token, err := reader.Next()
		require.NoError(t, err)
		assert.Equal(t, expected, token)
	}

	_, err := reader.Next()
	require.Error(t, err)
	assert.True(t, isStreamError(err))
	assert.Equal(t, io.EOF, errors.Cause(err.(*StreamError).Err))
}

func TestTokenReaderDiscardLine(t *testing.T) {
	reader := newTokenReader(strings.NewReader("bogus rest of line\nhard\n"))

	token, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "bogus", token)

	reader.DiscardLine()

	token, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "hard", token)
}

func TestTokenReaderNextInt(t *testing.T) {
	reader := newTokenReader(strings.NewReader("4 four 10"))

	value, err := reader.NextInt()
	require.NoError(t, err)
	assert.Equal(t, 4, value)

	_, err = reader.NextInt()
	require.Error(t, err)
	assert.Equal(t, ErrInputFormat, errors.Cause(err))
	assert.False(t, isStreamError(err))

	value, err = reader.NextInt()
	require.NoError(t, err)
	assert.Equal(t, 10, value)
}

func TestTokenReaderLongLine(t *testing.T) {
	long := strings.Repeat("7", 100000)
	reader := newTokenReader(strings.NewReader(long + " tail\n"))

	token, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, long, token)

	token, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "tail", token)
}

func TestTokenReaderCloseLeavesStdinOpen(t *testing.T) {
	require.NoError(t, newTokenReader(os.Stdin).Close())

	reader := newTokenReader(strings.NewReader("easy"))
	require.NoError(t, reader.Close())
	_, err := reader.Next()
	assert.True(t, isStreamError(err))
}
