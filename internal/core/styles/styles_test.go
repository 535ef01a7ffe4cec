package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"nord", "solarized", "tokyo-night"}, ThemeNames())
}

func TestSetTheme(t *testing.T) {
	defer func() {
		p, _ := GetPalette(DefaultTheme)
		SetTheme(p)
	}()

	p, ok := GetPalette("nord")
	assert.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
	assert.Contains(t, TextSuccessStyle.Render("hello"), "hello")

	_, ok = GetPalette("missing")
	assert.False(t, ok)
}
