package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	value, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", value)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("partial"))

	value, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", value)
}

func TestGetOptionalText_FallsBackToDefault(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\n"))

	value, err := GetOptionalText(reader, "City", "Casablanca", &out)
	require.NoError(t, err)
	require.Equal(t, "Casablanca", value)
	require.Contains(t, out.String(), "[Casablanca]")
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("42\n"))

	n, err := GetInt(reader, "Count", &out)
	require.NoError(t, err)
	require.Equal(t, 42, n)

	reader = bufio.NewReader(strings.NewReader("nope\n"))
	_, err = GetInt(reader, "Count", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", pw)
	require.Contains(t, out.String(), "Enter password")
}
