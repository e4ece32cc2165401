package uikit

// Option configures a control at construction time (retained mode) or
// per call (immediate mode).
type Option func(*options)

// options holds configuration via the typed extensions map.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for control options. Built-in keys are defined
// below; callers building custom widgets can define their own.
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, falling back to the key's default.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in option keys
// =============================================================================

var (
	OptFontSize       = NewOptKey("fontSize", 0)
	OptPaddingX       = NewOptKey[float32]("paddingX", -1)
	OptPaddingY       = NewOptKey[float32]("paddingY", -1)
	OptStyle          = NewOptKey("style", Style{})
	OptTriggerOnPress = NewOptKey("triggerOnPress", false)
	OptVertical       = NewOptKey("vertical", false)
	OptShowValue      = NewOptKey("showValue", false)
	OptFormat         = NewOptKey("format", "")
	OptMaxLength      = NewOptKey("maxLength", 0)
	OptPassword       = NewOptKey("password", false)
	OptMaskChar       = NewOptKey("maskChar", '*')
	OptOnLabel        = NewOptKey("onLabel", "")
	OptOffLabel       = NewOptKey("offLabel", "")
	OptContentHeight  = NewOptKey[float32]("contentHeight", 0)
)

// WithFontSize overrides the style's font size for one control.
func WithFontSize(size int) Option { return WithOpt(OptFontSize, size) }

// WithPadding overrides the style's horizontal and vertical padding.
func WithPadding(x, y float32) Option {
	return func(o *options) {
		WithOpt(OptPaddingX, x)(o)
		WithOpt(OptPaddingY, y)(o)
	}
}

// WithStyle gives the control its own style instead of the default.
func WithStyle(s Style) Option { return WithOpt(OptStyle, s) }

// TriggerOnPress makes buttons and switches fire on press-down instead
// of on release.
func TriggerOnPress() Option { return WithOpt(OptTriggerOnPress, true) }

// Vertical orients a slider vertically.
func Vertical() Option { return WithOpt(OptVertical, true) }

// ShowValue renders the slider's current value next to the thumb.
func ShowValue(format string) Option {
	return func(o *options) {
		WithOpt(OptShowValue, true)(o)
		if format != "" {
			WithOpt(OptFormat, format)(o)
		}
	}
}

// WithMaxLength limits a text input to n characters (0 = unlimited).
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// Password masks a text input's display text and suppresses copy/cut.
func Password(maskChar rune) Option {
	return func(o *options) {
		WithOpt(OptPassword, true)(o)
		if maskChar != 0 {
			WithOpt(OptMaskChar, maskChar)(o)
		}
	}
}

// WithThumbLabels puts on/off text on a switch thumb.
func WithThumbLabels(on, off string) Option {
	return func(o *options) {
		WithOpt(OptOnLabel, on)(o)
		WithOpt(OptOffLabel, off)(o)
	}
}

// WithContentHeight sets the content extent for an immediate-mode
// scroll view created from position parameters.
func WithContentHeight(h float32) Option { return WithOpt(OptContentHeight, h) }

// resolveStyle picks the control style from options, falling back to
// the package default, and applies font/padding overrides.
func resolveStyle(o options) Style {
	s := currentStyle
	if HasOpt(o, OptStyle) {
		s = GetOpt(o, OptStyle)
	}
	if fs := GetOpt(o, OptFontSize); fs > 0 {
		s.FontSize = fs
	}
	if px := GetOpt(o, OptPaddingX); px >= 0 {
		s.PaddingX = px
	}
	if py := GetOpt(o, OptPaddingY); py >= 0 {
		s.PaddingY = py
	}
	return s
}
