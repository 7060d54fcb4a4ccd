package naming

import (
	"strings"
	"unicode/utf8"
)

// TokenKind identifies one part of a parsed [Template]. The set is closed;
// renderers switch over every kind.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenSeriesTitle
	TokenSeasonNumber
	TokenEpisodeNumber
	TokenSeasonEpisode
	TokenEpisodeTitle
	TokenAirDate
	TokenAbsoluteNumber
	TokenQuality
	TokenReleaseGroup
	TokenSceneTitle
)

var tokenKindNames = [...]string{
	TokenLiteral:        "literal",
	TokenSeriesTitle:    "series title",
	TokenSeasonNumber:   "season",
	TokenEpisodeNumber:  "episode",
	TokenSeasonEpisode:  "season/episode",
	TokenEpisodeTitle:   "episode title",
	TokenAirDate:        "air date",
	TokenAbsoluteNumber: "absolute",
	TokenQuality:        "quality",
	TokenReleaseGroup:   "release group",
	TokenSceneTitle:     "scene title",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// tokenNames maps a folded token name (lower case, separators removed) to
// its kind.
var tokenNames = map[string]TokenKind{
	"seriestitle":     TokenSeriesTitle,
	"season":          TokenSeasonNumber,
	"episode":         TokenEpisodeNumber,
	"episodetitle":    TokenEpisodeTitle,
	"airdate":         TokenAirDate,
	"absolute":        TokenAbsoluteNumber,
	"absoluteepisode": TokenAbsoluteNumber,
	"quality":         TokenQuality,
	"qualitytitle":    TokenQuality,
	"releasegroup":    TokenReleaseGroup,
	"originaltitle":   TokenSceneTitle,
	"scenetitle":      TokenSceneTitle,
}

var tokenNameFolder = strings.NewReplacer(" ", "", "-", "", "_", "", ".", "")

// Token is one part of a template. Literal tokens carry their text.
// TokenSeasonEpisode carries the marker letter before the season (Prefix,
// may be empty) and the literal between season and episode (Infix).
type Token struct {
	Kind   TokenKind
	Text   string
	Prefix string
	Infix  string
}

// Template is a parsed format string.
type Template struct {
	Format string
	Tokens []Token
}

// maxInfixLen bounds the literal that may sit between {season} and
// {episode} for the pair to be grouped.
const maxInfixLen = 3

// ParseTemplate parses a format string. Unbalanced braces, empty tokens and
// unknown token names return a [*TemplateError].
func ParseTemplate(format string) (Template, error) {
	var (
		tokens []Token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '}':
			return Template{}, &TemplateError{Format: format, Pos: i, Reason: "unmatched '}'"}
		case '{':
			end := strings.IndexAny(format[i+1:], "{}")
			if end < 0 || format[i+1+end] == '{' {
				return Template{}, &TemplateError{Format: format, Pos: i, Reason: "unclosed '{'"}
			}
			name := format[i+1 : i+1+end]
			kind, ok := tokenNames[strings.ToLower(tokenNameFolder.Replace(name))]
			if !ok {
				reason := "unknown token {" + name + "}"
				if strings.TrimSpace(name) == "" {
					reason = "empty token"
				}
				return Template{}, &TemplateError{Format: format, Pos: i, Reason: reason}
			}
			flush()
			tokens = append(tokens, Token{Kind: kind, Text: format[i : i+2+end]})
			i += 1 + end
		default:
			lit.WriteByte(format[i])
		}
	}
	flush()

	return Template{Format: format, Tokens: groupSeasonEpisode(tokens)}, nil
}

// groupSeasonEpisode merges "{season}", a short literal and "{episode}" into
// one TokenSeasonEpisode, pulling a single marker letter such as the "S" in
// "S{season}" out of the preceding literal.
func groupSeasonEpisode(in []Token) []Token {
	out := make([]Token, 0, len(in))
	for i := 0; i < len(in); i++ {
		if in[i].Kind != TokenSeasonNumber {
			out = append(out, in[i])
			continue
		}

		var infix string
		next := i + 1
		if next < len(in) && in[next].Kind == TokenLiteral {
			if len(in[next].Text) > maxInfixLen || strings.ContainsAny(in[next].Text, " \t") {
				out = append(out, in[i])
				continue
			}
			infix = in[next].Text
			next++
		}
		if next >= len(in) || in[next].Kind != TokenEpisodeNumber {
			out = append(out, in[i])
			continue
		}

		var prefix string
		if n := len(out); n > 0 && out[n-1].Kind == TokenLiteral {
			if p, rest, ok := splitMarkerLetter(out[n-1].Text); ok {
				prefix = p
				if rest == "" {
					out = out[:n-1]
				} else {
					out[n-1].Text = rest
				}
			}
		}

		out = append(out, Token{
			Kind:   TokenSeasonEpisode,
			Text:   in[i].Text + infix + in[next].Text,
			Prefix: prefix,
			Infix:  infix,
		})
		i = next
	}
	return out
}

// splitMarkerLetter splits a trailing lone ASCII letter off lit. "- S"
// yields ("S", "- "); "Season " and "AS" yield ok=false.
func splitMarkerLetter(lit string) (letter, rest string, ok bool) {
	r, size := utf8.DecodeLastRuneInString(lit)
	if !isASCIILetter(r) {
		return "", lit, false
	}
	rest = lit[:len(lit)-size]
	if prev, _ := utf8.DecodeLastRuneInString(rest); rest != "" && isASCIILetter(prev) {
		return "", lit, false
	}
	return string(r), rest, true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Has reports whether the template contains a token of kind k.
func (t Template) Has(k TokenKind) bool {
	for _, tok := range t.Tokens {
		if tok.Kind == k {
			return true
		}
	}
	return false
}

func (t Template) hasAnySet(sets [][]TokenKind) bool {
	for _, set := range sets {
		all := true
		for _, k := range set {
			if !t.Has(k) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
