package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGUIDStringFormat(t *testing.T) {
	g := GUID{
		Data1: 0x82066163, Data2: 0x7f6b, Data3: 0x49ab,
		Data4: [8]byte{0xb1, 0x51, 0x6a, 0x6b, 0x57, 0x97, 0x17, 0x6e},
	}
	assert.Equal(t, "{82066163-7f6b-49ab-b151-6a6b5797176e}", g.String())
}

func TestParseGUIDRoundTrip(t *testing.T) {
	text := "{82066163-7f6b-49ab-b151-6a6b5797176e}"
	g, err := ParseGUID(text)
	require.Nil(t, err)
	assert.Equal(t, text, g.String())
}

func TestParseGUIDAcceptsBareFormWithoutBraces(t *testing.T) {
	g, err := ParseGUID("82066163-7f6b-49ab-b151-6a6b5797176e")
	require.Nil(t, err)
	assert.Equal(t, uint32(0x82066163), g.Data1)
}

func TestParseGUIDRejectsWrongSegmentCount(t *testing.T) {
	_, err := ParseGUID("not-a-guid")
	require.NotNil(t, err)
	assert.Equal(t, InvalidArgument, err.Code)
}

func TestParseGUIDRejectsNonHexCharacters(t *testing.T) {
	_, err := ParseGUID("{zzzzzzzz-7f6b-49ab-b151-6a6b5797176e}")
	require.NotNil(t, err)
	assert.Equal(t, InvalidArgument, err.Code)
}

func TestParseGUIDTrimsWhitespace(t *testing.T) {
	g, err := ParseGUID("  {82066163-7f6b-49ab-b151-6a6b5797176e}  ")
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(g.String(), "{82066163"))
}
