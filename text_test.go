package topicdump_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/topicdump"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trims surrounding whitespace",
			in:   "  \n hello world \n\t",
			want: "hello world",
		},
		{
			name: "collapses three blank lines",
			in:   "first\n\n\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "collapses blank lines containing whitespace",
			in:   "first\n   \n\t\n  \nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "collapses lines of full-width spaces",
			in:   "a\n\u3000\n\u3000\n\u3000\nb",
			want: "a\n\nb",
		},
		{
			name: "collapses lines of non-breaking spaces",
			in:   "a\n\u00a0\n\n\u00a0\nb",
			want: "a\n\nb",
		},
		{
			name: "keeps non-breaking space inside a line",
			in:   "a\u00a0b\nc",
			want: "a\u00a0b\nc",
		},
		{
			name: "keeps single newlines",
			in:   "line one\nline two",
			want: "line one\nline two",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, topicdump.NormalizeText(tt.in))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"intro\n\n\n\n  body\n \n\n\nend  ",
		"intro\n\u00a0\n\u00a0\nbody\n\u3000\n\n\u3000\nend",
	} {
		once := topicdump.NormalizeText(in)
		twice := topicdump.NormalizeText(once)

		assert.Equal(t, once, twice)
		assert.NotContains(t, once, "\n\n\n")
		assert.NotContains(t, once, "\n\u00a0\n")
		assert.NotContains(t, once, "\n\u3000\n")
	}
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "strips filesystem-unsafe characters",
			title: "Hello / World?",
			want:  "Hello-World",
		},
		{
			name:  "collapses hyphen and whitespace runs",
			title: "a -- b\t\tc",
			want:  "a-b-c",
		},
		{
			name:  "keeps non-latin letters",
			title: "如何 学习 Go",
			want:  "如何-学习-Go",
		},
		{
			name:  "drops underscores and punctuation",
			title: "snake_case: v1.2!",
			want:  "snakecase-v12",
		},
		{
			name:  "keeps circled, superscript and roman numerals",
			title: "第①章 x² Ⅻ",
			want:  "第①章-x²-Ⅻ",
		},
		{
			name:  "keeps leading and trailing separators",
			title: " padded ",
			want:  "-padded-",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, topicdump.Slug(tt.title))
		})
	}
}

func TestSlug_Truncates(t *testing.T) {
	t.Parallel()

	title := strings.Repeat("word ", 30)
	slug := topicdump.Slug(title)

	assert.Equal(t, topicdump.MaxSlugLength, utf8.RuneCountInString(slug))
	assert.True(t, strings.HasPrefix(slug, "word-word-"))
}

func TestSlug_TruncatesByRune(t *testing.T) {
	t.Parallel()

	slug := topicdump.Slug(strings.Repeat("汉", 80))

	assert.Equal(t, topicdump.MaxSlugLength, utf8.RuneCountInString(slug))
	assert.True(t, utf8.ValidString(slug))
}

func TestFilename(t *testing.T) {
	t.Parallel()

	t.Run("contains only safe characters", func(t *testing.T) {
		t.Parallel()

		name := topicdump.Filename("Hello / World? <script> | *.* ~$", ".txt")
		slug := strings.TrimSuffix(strings.TrimPrefix(name, topicdump.FilenamePrefix), ".txt")

		for _, r := range slug {
			assert.True(t, unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-', "unexpected rune %q", r)
		}
		assert.LessOrEqual(t, utf8.RuneCountInString(slug), topicdump.MaxSlugLength)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		title := "Hello / World?"

		assert.Equal(t, topicdump.Filename(title, ".txt"), topicdump.Filename(title, ".txt"))
		assert.Equal(t, "v2ex_Hello-World.txt", topicdump.Filename(title, ".txt"))
	})

	t.Run("uses the given extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "v2ex_Topic.md", topicdump.Filename("Topic", ".md"))
	})
}
