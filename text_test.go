package speedtui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{
			name:  "ascii",
			input: "abc",
			want:  []rune{'a', 'b', 'c'},
		},
		{
			name:  "combining mark collapses to base",
			input: "éx",
			want:  []rune{'e', 'x'},
		},
		{
			name:  "wide runes",
			input: "世界",
			want:  []rune{'世', '界'},
		},
		{
			name:  "empty",
			input: "",
			want:  []rune{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Characters(test.input))
		})
	}
}

func TestPrintWraps(t *testing.T) {
	b := mustBuffer(t, 3, 2)
	col, row := Print(b, 0, 0, Segment{Text: "abcd"})

	for i, want := range []rune{'a', 'b', 'c'} {
		cell, _ := b.Cell(i, 0)
		assert.Equal(t, want, cell.Character)
	}
	cell, _ := b.Cell(0, 1)
	assert.Equal(t, 'd', cell.Character)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)
}

func TestPrintNewlineReturnsToStartColumn(t *testing.T) {
	b := mustBuffer(t, 10, 3)
	Print(b, 2, 0, Segment{Text: "a\nb"})

	cell, _ := b.Cell(2, 0)
	assert.Equal(t, 'a', cell.Character)
	cell, _ = b.Cell(2, 1)
	assert.Equal(t, 'b', cell.Character)
}

func TestPrintAppliesStyle(t *testing.T) {
	b := mustBuffer(t, 5, 1)
	Print(b, 0, 0, Segment{
		Text:       "hi",
		Foreground: PackRGB(1, 2, 3),
		Attributes: AttrUnderline,
	})

	cell, _ := b.Cell(1, 0)
	assert.Equal(t, Cell{
		Character:  'i',
		Foreground: PackRGB(1, 2, 3),
		Attributes: AttrUnderline,
	}, cell)
}

func TestPrintWideCharacterAdvance(t *testing.T) {
	b := mustBuffer(t, 4, 1)
	Print(b, 0, 0, Segment{Text: "世a"})

	cell, _ := b.Cell(0, 0)
	assert.Equal(t, '世', cell.Character)
	// The spacer column under the wide character is left alone
	cell, _ = b.Cell(1, 0)
	assert.Equal(t, DefaultCell(), cell)
	cell, _ = b.Cell(2, 0)
	assert.Equal(t, 'a', cell.Character)
}

func TestPrintStopsAtBottom(t *testing.T) {
	b := mustBuffer(t, 2, 1)
	Print(b, 0, 0, Segment{Text: "abcdef"})

	cell, _ := b.Cell(0, 0)
	assert.Equal(t, 'a', cell.Character)
	cell, _ = b.Cell(1, 0)
	assert.Equal(t, 'b', cell.Character)
}
