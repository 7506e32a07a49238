package action

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadStreamAllKinds(t *testing.T) {
	data := `c a comment line
a 1 2
d 3 4
q 5 6
b
t
`
	actions, err := ReadStream(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []Action{
		{Kind: Add, U: 1, V: 2},
		{Kind: Del, U: 3, V: 4},
		{Kind: Query, U: 5, V: 6},
		{Kind: QueryBlock},
		{Kind: Timer},
	}, actions)
}

func TestReadStreamUnknownDirective(t *testing.T) {
	_, err := ReadStream(strings.NewReader("x 1 2\n"))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 1, perr.Line)
}

func TestReadStreamMissingArgs(t *testing.T) {
	_, err := ReadStream(strings.NewReader("a 1\n"))
	require.Error(t, err)
}

func TestWriteStreamRoundTrip(t *testing.T) {
	in := []Action{
		{Kind: Add, U: 1, V: 2},
		{Kind: Query, U: 1, V: 2},
		{Kind: Del, U: 1, V: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, "t.txt", "", in))

	out, err := ReadStream(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Add", Add.String())
	require.Equal(t, "QueryBlock", QueryBlock.String())
}
