package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/goaltrack/goaltrack/internal/config"
)

// appTheme scales the default theme's text sizes from the user's configured
// base font size. Swapping the theme is how a font-size change propagates to
// every widget at once.
type appTheme struct {
	baseText float32
}

// NewAppTheme creates a theme whose text sizes derive from fontSize.
func NewAppTheme(fontSize int) fyne.Theme {
	return &appTheme{baseText: float32(fontSize)}
}

// Color returns theme colors.
func (t *appTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return SeveritySuccess.Color()
	case theme.ColorNameWarning:
		return SeverityWarning.Color()
	case theme.ColorNameError:
		return SeverityError.Color()
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts.
func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons.
func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with text sizes scaled from the base font size.
// Goal rows render two sizes up, and captions two sizes down but never
// below the minimum selectable size.
func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.baseText
	case theme.SizeNameSubHeadingText:
		return t.baseText
	case theme.SizeNameHeadingText:
		return t.baseText + 2
	case theme.SizeNameCaptionText:
		if t.baseText-2 < config.MinFontSize {
			return config.MinFontSize
		}
		return t.baseText - 2
	}
	return theme.DefaultTheme().Size(name)
}
