package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(t Template) []TokenKind {
	out := make([]TokenKind, len(t.Tokens))
	for i, tok := range t.Tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestParseTemplate_Default(t *testing.T) {
	tmpl, err := ParseTemplate(DefaultEpisodeFormat)
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{
		TokenSeriesTitle, TokenLiteral, TokenSeasonEpisode, TokenLiteral,
		TokenEpisodeTitle, TokenLiteral, TokenQuality, TokenLiteral, TokenReleaseGroup,
	}, kinds(tmpl))

	se := tmpl.Tokens[2]
	assert.Equal(t, "S", se.Prefix)
	assert.Equal(t, "E", se.Infix)
	assert.Equal(t, " - ", tmpl.Tokens[1].Text)
	assert.Equal(t, "]-", tmpl.Tokens[7].Text)
}

func TestParseTemplate_TokenNames(t *testing.T) {
	cases := []struct {
		format string
		want   TokenKind
	}{
		{"{Series Title}", TokenSeriesTitle},
		{"{SERIES.TITLE}", TokenSeriesTitle},
		{"{series_title}", TokenSeriesTitle},
		{"{Episode Title}", TokenEpisodeTitle},
		{"{Air-Date}", TokenAirDate},
		{"{absolute}", TokenAbsoluteNumber},
		{"{Quality Title}", TokenQuality},
		{"{Release Group}", TokenReleaseGroup},
		{"{Original Title}", TokenSceneTitle},
		{"{Scene Title}", TokenSceneTitle},
		{"{season}", TokenSeasonNumber},
		{"{episode}", TokenEpisodeNumber},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			tmpl, err := ParseTemplate(tc.format)
			require.NoError(t, err)
			require.Len(t, tmpl.Tokens, 1)
			assert.Equal(t, tc.want, tmpl.Tokens[0].Kind)
		})
	}
}

func TestParseTemplate_Grouping(t *testing.T) {
	t.Run("legacy infix", func(t *testing.T) {
		tmpl, err := ParseTemplate("{Series Title} {season}x{episode}")
		require.NoError(t, err)
		require.Equal(t, []TokenKind{TokenSeriesTitle, TokenLiteral, TokenSeasonEpisode}, kinds(tmpl))
		assert.Equal(t, "", tmpl.Tokens[2].Prefix)
		assert.Equal(t, "x", tmpl.Tokens[2].Infix)
	})

	t.Run("spelled out is not grouped", func(t *testing.T) {
		tmpl, err := ParseTemplate("Season {season} Episode {episode}")
		require.NoError(t, err)
		assert.Equal(t, []TokenKind{TokenLiteral, TokenSeasonNumber, TokenLiteral, TokenEpisodeNumber}, kinds(tmpl))
	})

	t.Run("two letter prefix stays literal", func(t *testing.T) {
		tmpl, err := ParseTemplate("AS{season}E{episode}")
		require.NoError(t, err)
		require.Equal(t, []TokenKind{TokenLiteral, TokenSeasonEpisode}, kinds(tmpl))
		assert.Equal(t, "AS", tmpl.Tokens[0].Text)
		assert.Equal(t, "", tmpl.Tokens[1].Prefix)
	})

	t.Run("prefix only literal is consumed", func(t *testing.T) {
		tmpl, err := ParseTemplate("S{season}E{episode}")
		require.NoError(t, err)
		require.Equal(t, []TokenKind{TokenSeasonEpisode}, kinds(tmpl))
		assert.Equal(t, "S", tmpl.Tokens[0].Prefix)
	})
}

func TestParseTemplate_Errors(t *testing.T) {
	cases := []struct {
		format  string
		wantPos int
	}{
		{"{Series Title", 0},
		{"Series}", 6},
		{"{}", 0},
		{"{ }", 0},
		{"{Bogus}", 0},
		{"a{b{c}}", 1},
		{"{Series Title} - {Nope}", 17},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			_, err := ParseTemplate(tc.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTemplate))

			var te *TemplateError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tc.format, te.Format)
			assert.Equal(t, tc.wantPos, te.Pos)
			assert.NotEmpty(t, te.Reason)
		})
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "season/episode", TokenSeasonEpisode.String())
	assert.Equal(t, "unknown", TokenKind(99).String())
}
