package inspect

import (
	"github.com/fatih/color"
)

// Style is the semantic tag attached to a formatted fragment.
type Style string

const (
	StyleNone      Style = ""
	StyleBigInt    Style = "bigint"
	StyleBoolean   Style = "boolean"
	StyleDate      Style = "date"
	StyleModule    Style = "module"
	StyleName      Style = "name"
	StyleNull      Style = "null"
	StyleNumber    Style = "number"
	StyleRegExp    Style = "regexp"
	StyleSpecial   Style = "special"
	StyleString    Style = "string"
	StyleSymbol    Style = "symbol"
	StyleUndefined Style = "undefined"
)

var styles = []Style{
	StyleBigInt, StyleBoolean, StyleDate, StyleModule, StyleName, StyleNull,
	StyleNumber, StyleRegExp, StyleSpecial, StyleString, StyleSymbol, StyleUndefined,
}

// Styles returns every semantic style in a fixed order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// StylizeFunc maps a text fragment and its style to decorated text.
// Implementations must not change the visible characters of text; layout
// widths are computed before decoration is applied.
type StylizeFunc func(text string, style Style) string

// PlainStylize returns text unchanged.
func PlainStylize(text string, _ Style) string { return text }

// ColorStylize wraps text in the terminal color assigned to style. Fragments
// without a style, and styles without a color, are returned unchanged.
func ColorStylize(text string, style Style) string {
	c, ok := palette[style]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

var palette = newPalette()

func newPalette() map[Style]*color.Color {
	attrs := map[Style][]color.Attribute{
		StyleBigInt:    {color.FgYellow},
		StyleBoolean:   {color.FgYellow},
		StyleDate:      {color.FgMagenta},
		StyleModule:    {color.Underline},
		StyleNull:      {color.Bold},
		StyleNumber:    {color.FgYellow},
		StyleRegExp:    {color.FgRed},
		StyleSpecial:   {color.FgCyan},
		StyleString:    {color.FgGreen},
		StyleSymbol:    {color.FgGreen},
		StyleUndefined: {color.FgHiBlack},
	}
	p := make(map[Style]*color.Color, len(attrs))
	for s, a := range attrs {
		c := color.New(a...)
		// Decorate regardless of the tty; callers opt in with WithColors.
		c.EnableColor()
		p[s] = c
	}
	return p
}
