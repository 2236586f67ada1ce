package speedtui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellReset(t *testing.T) {
	c := Cell{
		Character:  'Z',
		Foreground: PackRGB(1, 2, 3),
		Background: PackRGB(4, 5, 6),
		Attributes: AttrBold | AttrItalic,
	}
	c.Reset()
	assert.Equal(t, DefaultCell(), c)
}

func TestCellEquality(t *testing.T) {
	a := Cell{Character: 'a', Foreground: PackRGB(1, 2, 3)}
	b := a
	assert.Equal(t, a, b)

	b.Attributes = AttrUnderline
	assert.NotEqual(t, a, b)
}

func TestCellSameStyle(t *testing.T) {
	a := Cell{Character: 'a', Foreground: PackRGB(1, 2, 3), Attributes: AttrBold}
	b := Cell{Character: 'b', Foreground: PackRGB(1, 2, 3), Attributes: AttrBold}
	assert.True(t, a.sameStyle(b))

	b.Background = PackRGB(0, 0, 0)
	assert.False(t, a.sameStyle(b))
}
