package renamefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConservativeApply(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"allowed passthrough", "Track 01 (Remix).flac", "Track 01 (Remix).flac"},
		{"unicode replaced", "Café", "Caf_"},
		{"glob chars replaced", "01 – Song*.flac", "01 _ Song_.flac"},
		{"empty becomes underscore", "", "_"},
		{"only disallowed becomes underscores", "???", "___"},
	}

	f := Conservative{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Apply(tc.in))
		})
	}
}

func TestConservativeIdempotent(t *testing.T) {
	f := Conservative{}
	inputs := []string{"Café", "plain.txt", "", "!@#$%^&*()", "日本語"}
	for _, in := range inputs {
		once := f.Apply(in)
		twice := f.Apply(once)
		assert.Equal(t, once, twice, "filter(filter(%q)) must equal filter(%q)", in, in)
	}
}

func TestConservativeOnlyAllowedCharacters(t *testing.T) {
	f := Conservative{}
	out := f.Apply("héllo wörld — 2024.flac")
	for _, c := range out {
		assert.True(t, isAllowed(c), "unexpected character %q in filtered output", c)
	}
}

func TestNoneIsIdentity(t *testing.T) {
	f := None{}
	assert.Equal(t, "Café/weird*.flac", f.Apply("Café/weird*.flac"))
}

func TestByName(t *testing.T) {
	f, ok := ByName("conservative")
	require.True(t, ok)
	require.IsType(t, Conservative{}, f)

	f, ok = ByName("none")
	require.True(t, ok)
	require.IsType(t, None{}, f)

	_, ok = ByName("bogus")
	require.False(t, ok)
}
