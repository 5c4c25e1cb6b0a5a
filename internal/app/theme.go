// Package app holds the desktop look of the editor.
package app

import (
	"image/color"

	"shapeedit/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EditorTheme is the default fyne theme with the guide color as primary and a
// white canvas background, so the rendered raster blends with the window.
type EditorTheme struct{}

var _ fyne.Theme = (*EditorTheme)(nil)

func (t *EditorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorutil.Guide
	case theme.ColorNameBackground:
		return colorutil.Background
	case theme.ColorNameForeground:
		return colorutil.Stroke
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4 // tighter toolbar
	default:
		return theme.DefaultTheme().Size(name)
	}
}
