package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type castTheme struct {
	base fyne.Theme
	font fyne.Resource
}

func newCastTheme(ttf []byte) fyne.Theme {
	t := &castTheme{base: theme.DarkTheme()}
	if len(ttf) > 0 {
		t.font = fyne.NewStaticResource("kmcaster.ttf", ttf)
	}
	return t
}

func (t *castTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground:
		return color.Transparent
	case theme.ColorNameForeground:
		return releasedText
	}
	return t.base.Color(name, variant)
}

func (t *castTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil {
		return t.font
	}
	return t.base.Font(style)
}

func (t *castTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *castTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return 0
	}
	return t.base.Size(name)
}
