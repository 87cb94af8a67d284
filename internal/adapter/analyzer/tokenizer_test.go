package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic split", Normalize("привет мир", DefaultOptions()), []string{"привет", "мир"}},
		{"hyphenation", Normalize("по-настоящему круто", DefaultOptions()), []string{"по-настоящему", "круто"}},
		{"punctuation", "hello,world!!!", []string{"hello", "world"}},
		{"digits", "2025 год", []string{"2025", "год"}},
		{"emoji", "emoji 😀 не слово", []string{"emoji", "не", "слово"}},
		{"underscore", "snake_case name", []string{"snake_case", "name"}},
		{"dangling hyphens", "-a--b- c-d-", []string{"a", "b", "c-d"}},
		{"multiple hyphens", "state-of-the-art", []string{"state-of-the-art"}},
		{"apostrophe splits", "word's", []string{"word", "s"}},
		{"empty", "", []string{}},
		{"separators only", " ,.!? -- ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenizer_Policies(t *testing.T) {
	tests := []struct {
		name  string
		opts  func(o *Options)
		input string
		want  []string
	}{
		{
			name:  "strip joins apostrophes",
			opts:  func(o *Options) { o.Punctuation = PunctuationStrip },
			input: "word's",
			want:  []string{"words"},
		},
		{
			name:  "strip removes hyphens",
			opts:  func(o *Options) { o.Punctuation = PunctuationStrip },
			input: "по-настоящему круто",
			want:  []string{"понастоящему", "круто"},
		},
		{
			name:  "no hyphen joining",
			opts:  func(o *Options) { o.JoinHyphens = false },
			input: "по-настоящему",
			want:  []string{"по", "настоящему"},
		},
		{
			name:  "alpha charset drops digits and underscore",
			opts:  func(o *Options) { o.Charset = CharsetAlpha },
			input: "hello_world 2025 мир",
			want:  []string{"hello", "world", "мир"},
		},
		{
			name: "alpha charset with strip",
			opts: func(o *Options) {
				o.Charset = CharsetAlpha
				o.Punctuation = PunctuationStrip
			},
			input: "2025 год",
			want:  []string{"год"},
		},
		{
			name:  "alpha charset keeps yo",
			opts:  func(o *Options) { o.Charset = CharsetAlpha },
			input: "ёлка",
			want:  []string{"ёлка"},
		},
		{
			name:  "min length",
			opts:  func(o *Options) { o.MinLength = 2 },
			input: "я и мы",
			want:  []string{"мы"},
		},
		{
			name:  "stopwords are normalized",
			opts:  func(o *Options) { o.Stopwords = []string{"The", "ЁЖ"} },
			input: "the cat the dog еж",
			want:  []string{"cat", "dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.opts(&opts)
			tok := NewTokenizer(opts)
			require.Equal(t, tt.want, tok.Tokenize(tt.input))
		})
	}
}

func TestTokenize_NoEmptyOrSpacedTokens(t *testing.T) {
	inputs := []string{
		"  a  b\tc\n",
		"-- - -",
		"x-y z_ _w",
		"😀😀 слово😀слово",
	}
	for _, opts := range optionVariants() {
		tok := NewTokenizer(opts)
		for _, in := range inputs {
			for _, token := range tok.Tokenize(Normalize(in, opts)) {
				require.NotEmpty(t, token)
				require.NotContains(t, token, " ")
			}
		}
	}
}
