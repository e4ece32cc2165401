package uikit

// Style defines the visual appearance of controls. Controls copy the
// style at construction; mutate before constructing, or use WithStyle.
type Style struct {
	// Text
	TextColor         Color
	TextDisabledColor Color

	// Button colors
	ButtonColor         Color
	ButtonHoveredColor  Color
	ButtonPressedColor  Color
	ButtonDisabledColor Color
	ButtonBorderColor   Color

	// Checkbox / radio
	BoxColor        Color
	BoxBorderColor  Color
	CheckmarkColor  Color
	RadioFillColor  Color
	RadioHoverColor Color

	// Switch
	SwitchTrackOffColor Color
	SwitchTrackOnColor  Color
	SwitchThumbColor    Color

	// Input colors
	InputBgColor            Color
	InputBorderColor        Color
	InputFocusedBorderColor Color
	SelectionColor          Color
	CaretColor              Color

	// Dropdown
	DropdownBgColor    Color
	DropdownHoverColor Color
	DropdownArrowColor Color

	// Slider colors
	SliderTrackColor Color
	SliderFillColor  Color
	SliderGrabColor  Color

	// ScrollView
	ScrollViewBgColor     Color
	ScrollViewBorderColor Color
	ScrollbarTrackColor   Color
	ScrollbarThumbColor   Color
	ScrollbarThumbHovered Color

	// Sizing
	FontSize       int
	PaddingX       float32
	PaddingY       float32
	BorderSize     float32
	CheckThickness float32 // Checkmark stroke thickness in parallel strokes

	// Switch geometry
	SwitchTrackWidth  float32
	SwitchTrackHeight float32
	SwitchThumbPad    float32

	// Slider geometry
	SliderThumbSize      float32
	SliderTrackThickness float32

	// ScrollView geometry
	ScrollbarWidth float32
	ScrollSpeed    float32 // Pixels per wheel notch
	MinThumbHeight float32
}

// DefaultStyle returns the default dark-on-light-accent style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		ButtonColor:         RGB(50, 50, 50),
		ButtonHoveredColor:  RGB(70, 70, 70),
		ButtonPressedColor:  RGB(90, 90, 90),
		ButtonDisabledColor: RGB(30, 30, 30),
		ButtonBorderColor:   RGB(100, 100, 100),

		BoxColor:        RGB(30, 30, 30),
		BoxBorderColor:  RGB(100, 100, 100),
		CheckmarkColor:  RGB(100, 180, 255),
		RadioFillColor:  RGB(100, 180, 255),
		RadioHoverColor: RGB(70, 70, 70),

		SwitchTrackOffColor: RGB(60, 60, 60),
		SwitchTrackOnColor:  RGB(50, 120, 190),
		SwitchThumbColor:    RGB(220, 220, 220),

		InputBgColor:            RGB(30, 30, 30),
		InputBorderColor:        RGB(100, 100, 100),
		InputFocusedBorderColor: RGB(100, 180, 255),
		SelectionColor:          RGBA(50, 100, 150, 200),
		CaretColor:              ColorWhite,

		DropdownBgColor:    RGBA(25, 25, 25, 250),
		DropdownHoverColor: RGB(60, 60, 60),
		DropdownArrowColor: RGB(180, 180, 180),

		SliderTrackColor: RGB(40, 40, 40),
		SliderFillColor:  RGB(50, 100, 150),
		SliderGrabColor:  RGB(120, 120, 120),

		ScrollViewBgColor:     RGBA(20, 20, 20, 200),
		ScrollViewBorderColor: RGB(80, 80, 80),
		ScrollbarTrackColor:   RGB(30, 30, 30),
		ScrollbarThumbColor:   RGB(80, 80, 80),
		ScrollbarThumbHovered: RGB(100, 100, 100),

		FontSize:       16,
		PaddingX:       8,
		PaddingY:       4,
		BorderSize:     1,
		CheckThickness: 2,

		SwitchTrackWidth:  44,
		SwitchTrackHeight: 22,
		SwitchThumbPad:    2,

		SliderThumbSize:      14,
		SliderTrackThickness: 4,

		ScrollbarWidth: 12,
		ScrollSpeed:    25,
		MinThumbHeight: 20,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.ButtonColor = RGB(45, 45, 45)
	s.ButtonHoveredColor = RGB(65, 65, 65)
	s.SliderFillColor = RGB(65, 105, 225) // Royal blue
	s.CheckmarkColor = RGB(65, 105, 225)
	s.RadioFillColor = RGB(65, 105, 225)
	s.SwitchTrackOnColor = RGB(65, 105, 225)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGB(20, 20, 20)
	s.TextDisabledColor = RGB(150, 150, 150)

	s.ButtonColor = RGB(220, 220, 220)
	s.ButtonHoveredColor = RGB(200, 200, 200)
	s.ButtonPressedColor = RGB(180, 180, 180)
	s.ButtonDisabledColor = RGB(230, 230, 230)
	s.ButtonBorderColor = RGB(150, 150, 150)

	s.BoxColor = ColorWhite
	s.BoxBorderColor = RGB(150, 150, 150)
	s.CheckmarkColor = RGB(0, 120, 215)
	s.RadioFillColor = RGB(0, 120, 215)
	s.RadioHoverColor = RGB(230, 230, 230)

	s.SwitchTrackOffColor = RGB(200, 200, 200)
	s.SwitchTrackOnColor = RGB(0, 120, 215)
	s.SwitchThumbColor = ColorWhite

	s.InputBgColor = ColorWhite
	s.InputBorderColor = RGB(150, 150, 150)
	s.InputFocusedBorderColor = RGB(0, 120, 215)
	s.SelectionColor = RGBA(0, 120, 215, 120)
	s.CaretColor = ColorBlack

	s.DropdownBgColor = ColorWhite
	s.DropdownHoverColor = RGB(230, 230, 230)
	s.DropdownArrowColor = RGB(80, 80, 80)

	s.SliderTrackColor = RGB(220, 220, 220)
	s.SliderFillColor = RGB(0, 120, 215)
	s.SliderGrabColor = RGB(160, 160, 160)

	s.ScrollViewBgColor = RGBA(245, 245, 245, 250)
	s.ScrollViewBorderColor = RGB(200, 200, 200)
	s.ScrollbarTrackColor = RGB(240, 240, 240)
	s.ScrollbarThumbColor = RGB(180, 180, 180)
	s.ScrollbarThumbHovered = RGB(160, 160, 160)
	return s
}

// currentStyle is the style new controls pick up when none is given.
var currentStyle = DefaultStyle()

// SetDefaultStyle replaces the style used by controls constructed
// without an explicit WithStyle option.
func SetDefaultStyle(s Style) {
	currentStyle = s
}

// GetDefaultStyle returns the current default style.
func GetDefaultStyle() Style {
	return currentStyle
}
