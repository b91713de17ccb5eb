package canopy

import "image/color"

// Theme keys read by the widget package. Override them in an Env, or in a
// YAML file loaded with LoadEnv.
var (
	KeyTextColor       = NewEnvKey[color.Color]("text.color", color.RGBA{0xe6, 0xe6, 0xe6, 0xff})
	KeyTextSize        = NewEnvKey("text.size", 15.0)
	KeyBackground      = NewEnvKey[color.Color]("background", color.RGBA{0x1e, 0x1e, 0x24, 0xff})
	KeyButtonColor     = NewEnvKey[color.Color]("button.color", color.RGBA{0x3a, 0x3d, 0x4a, 0xff})
	KeyButtonHotColor  = NewEnvKey[color.Color]("button.hot_color", color.RGBA{0x4f, 0x53, 0x66, 0xff})
	KeyButtonActive    = NewEnvKey[color.Color]("button.active_color", color.RGBA{0x2a, 0x2c, 0x36, 0xff})
	KeyBorderColor     = NewEnvKey[color.Color]("border.color", color.RGBA{0x5c, 0x60, 0x70, 0xff})
	KeyFocusColor      = NewEnvKey[color.Color]("focus.color", color.RGBA{0x5a, 0x9b, 0xf0, 0xff})
	KeyBorderWidth     = NewEnvKey("border.width", 1.0)
	KeyWidgetPadding   = NewEnvKey("widget.padding", 6.0)
	KeyCaretBlinkMs    = NewEnvKey("caret.blink_ms", 530)
	KeyHoverFadeMs     = NewEnvKey("hover.fade_ms", 120)
	KeyTextBoxMinWidth = NewEnvKey("textbox.min_width", 160.0)
)

// DefaultTheme returns an Env holding the default value of every theme key.
func DefaultTheme() Env {
	var env Env
	env = WithValue(env, KeyTextColor, KeyTextColor.Default)
	env = WithValue(env, KeyTextSize, KeyTextSize.Default)
	env = WithValue(env, KeyBackground, KeyBackground.Default)
	env = WithValue(env, KeyButtonColor, KeyButtonColor.Default)
	env = WithValue(env, KeyButtonHotColor, KeyButtonHotColor.Default)
	env = WithValue(env, KeyButtonActive, KeyButtonActive.Default)
	env = WithValue(env, KeyBorderColor, KeyBorderColor.Default)
	env = WithValue(env, KeyFocusColor, KeyFocusColor.Default)
	env = WithValue(env, KeyBorderWidth, KeyBorderWidth.Default)
	env = WithValue(env, KeyWidgetPadding, KeyWidgetPadding.Default)
	env = WithValue(env, KeyCaretBlinkMs, KeyCaretBlinkMs.Default)
	env = WithValue(env, KeyHoverFadeMs, KeyHoverFadeMs.Default)
	env = WithValue(env, KeyTextBoxMinWidth, KeyTextBoxMinWidth.Default)
	return env
}
