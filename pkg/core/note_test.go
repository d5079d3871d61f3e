package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notegen/pkg/core"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"C#", "Cs"},
		{"A", "A"},
		{"C#4", "Cs4"},
		{"Db4", "Db4"},
		{"F##", "Fss"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got := core.Normalize(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.raw), len(got), "'#' and 's' are both one byte")
			assert.Equal(t, got, core.Normalize(tc.raw), "normalization must be pure")
		})
	}
}

func TestParseNoteRow(t *testing.T) {
	t.Run("Keeps published precision", func(t *testing.T) {
		row, err := core.ParseNoteRow(" C#0/Db0 ", "17.32")
		require.NoError(t, err)
		assert.Equal(t, "C#0/Db0", row.AliasGroup)
		assert.Equal(t, 17.32, row.Frequency)
		assert.Equal(t, "17.32", row.Literal)

		row, err = core.ParseNoteRow("E0", "20.60")
		require.NoError(t, err)
		assert.Equal(t, "20.60", row.Literal)
	})

	t.Run("Canonicalizes exotic literals", func(t *testing.T) {
		row, err := core.ParseNoteRow("A4", "4.4e2")
		require.NoError(t, err)
		assert.Equal(t, "440.0", row.Literal)

		row, err = core.ParseNoteRow("A4", "0440")
		require.NoError(t, err)
		assert.Equal(t, "440.0", row.Literal, "leading zeros would read as octal")
	})

	t.Run("Rejects bad cells", func(t *testing.T) {
		for _, freq := range []string{"", "abc", "NaN", "Inf"} {
			_, err := core.ParseNoteRow("A4", freq)
			assert.ErrorIs(t, err, core.ErrAcquisition, "freq %q", freq)
		}
		_, err := core.ParseNoteRow("  ", "440")
		assert.ErrorIs(t, err, core.ErrAcquisition)
	})
}

func TestFormatFrequency(t *testing.T) {
	assert.Equal(t, "440.0", core.FormatFrequency(440))
	assert.Equal(t, "277.18", core.FormatFrequency(277.18))
	assert.Equal(t, "16.35", core.FormatFrequency(16.35))
}

func TestSerializedForms(t *testing.T) {
	assert.Equal(t, []string{"C#4", "c#4"}, core.AliasEntry{RawName: "C#4"}.SerializedForms())
	assert.Equal(t, []string{"db"}, core.AliasEntry{RawName: "db"}.SerializedForms())
}
