package rat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text string
		want []string
	}{
		"empty":                   {text: "", want: nil},
		"single newline":          {text: "\n", want: []string{""}},
		"trailing newline":        {text: "a\nb\n", want: []string{"a", "b"}},
		"no trailing newline":     {text: "a\nb", want: []string{"a", "b"}},
		"blank lines":             {text: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
		"crlf":                    {text: "a\r\nb\r\n", want: []string{"a", "b"}},
		"lone carriage return":    {text: "a\rb\n", want: []string{"a\rb"}},
		"last carriage return":    {text: "a\r", want: []string{"a\r"}},
		"blank crlf":              {text: "\r\n", want: []string{""}},
		"double trailing newline": {text: "a\n\n", want: []string{"a", ""}},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, splitLines(tc.text))
		})
	}
}

func TestRecords(t *testing.T) {
	t.Parallel()

	got := records("a\n\nb\n")
	assert.Equal(t, []LineRecord{
		{Content: "a", Ordinal: 1},
		{Content: "", Ordinal: 2, Blank: true},
		{Content: "b", Ordinal: 3},
	}, got)
}
