package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Variant pins the Fyne theme to an explicit light or dark variant so the
// in-app toggle works regardless of the desktop preference.
type Variant struct {
	variant fyne.ThemeVariant
}

func Light() *Variant {
	return &Variant{variant: fynetheme.VariantLight}
}

func Dark() *Variant {
	return &Variant{variant: fynetheme.VariantDark}
}

func (v *Variant) IsDark() bool {
	return v.variant == fynetheme.VariantDark
}

func (v *Variant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return fynetheme.DefaultTheme().Color(name, v.variant)
}

func (v *Variant) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (v *Variant) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (v *Variant) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}
