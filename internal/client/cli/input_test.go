package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetWithDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetWithDefault(rdr("\n"), "Giver", "Sato", &out)
	require.NoError(t, err)
	assert.Equal(t, "Sato", got)
	assert.Equal(t, "Giver [Sato]\n> ", out.String())

	got, err = GetWithDefault(rdr("Ito\n"), "Giver", "Sato", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ito", got)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("Deepest\ncondolences\n\nnext\n"), "Message", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "Deepest\ncondolences", got)
	assert.Equal(t, "Message (empty line to finish)\n", out.String())

	got, err = GetMultiline(rdr("a\r\nb"), "Message", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	out.Reset()
	got, err = GetMultiline(rdr("\n"), "Message", "old text", &out)
	require.NoError(t, err)
	assert.Equal(t, "old text", got)
	assert.Contains(t, out.String(), `keep "old text"`)

	got, err = GetMultiline(rdr(""), "Message", "", &out)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "pw", string(pw))
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out)
	assert.Error(t, err)
}
