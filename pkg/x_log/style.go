package x_log

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for structured output
type Styles struct {
	Out               io.Writer                 // output target
	NoColor           bool                      // plain text, e.g. when Out is not a terminal
	Timestamp         lipgloss.Style            // style for timestamps
	Levels            map[Level]lipgloss.Style  // level-to-style mapping
	Keys              map[string]lipgloss.Style // custom field keys
	Values            map[string]lipgloss.Style // custom field values
	DefaultKeyStyle   lipgloss.Style            // fallback for unknown keys
	DefaultValueStyle lipgloss.Style            // fallback for unknown values
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if s.NoColor {
		return text
	}
	return style.Render(text)
}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light")
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles.
// Value styles are picked by the preceding field name, so concurrent
// writers must share it through zerolog.SyncWriter.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	var lastKey string

	fieldName := func(key string) string {
		lastKey = key
		style, ok := styles.Keys[key]
		if !ok {
			style = styles.DefaultKeyStyle
		}
		eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
		return styles.render(style, key) + styles.render(eqStyle, "=")
	}
	fieldValue := func(i any) string {
		style, ok := styles.Values[lastKey]
		if !ok {
			style = styles.DefaultValueStyle
		}
		return styles.render(style, fmt.Sprintf("%s", i))
	}

	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		NoColor:    styles.NoColor,
		TimeFormat: "01-02 15:04:05",

		FormatLevel: func(i any) string {
			name := strings.ToLower(fmt.Sprint(i))
			label := strings.ToUpper(name)
			if len(label) > 3 {
				label = label[:3]
			}
			if styles.NoColor {
				return label
			}
			lvl, err := zerolog.ParseLevel(name)
			style, ok := styles.Levels[lvl]
			if err != nil || !ok {
				style = levelBadge(ColorGray60)
			}
			return style.Render(label)
		},

		FormatTimestamp: func(i any) string {
			return styles.render(styles.Timestamp, fmt.Sprintf("[%s]", i))
		},

		FormatFieldName:     func(i any) string { return fieldName(fmt.Sprint(i)) },
		FormatFieldValue:    fieldValue,
		FormatErrFieldName:  func(i any) string { return fieldName(fmt.Sprint(i)) },
		FormatErrFieldValue: fieldValue,

		FormatMessage: func(i any) string {
			return styles.render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)), fmt.Sprint(i))
		},
	}
}

// levelBadge renders a level label as white text on color.
func levelBadge(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

//
// ---------- Dark Theme ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: levelBadge(ColorTeal40),
			InfoLevel:  levelBadge(ColorBlue60),
			WarnLevel:  levelBadge(ColorOrange40),
			ErrorLevel: levelBadge(ColorRed60),
			FatalLevel: levelBadge(ColorRedStrong),
		},

		Keys: map[string]lipgloss.Style{
			"op":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"input":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"line":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"run":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			"module": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"error":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},

		Values: map[string]lipgloss.Style{
			"op":     lipgloss.NewStyle().Bold(true),
			"input":  lipgloss.NewStyle().Italic(true),
			"error":  lipgloss.NewStyle().Bold(true),
			"module": lipgloss.NewStyle(),
		},
	}
}

//
// ---------- Light Theme ----------

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: levelBadge(ColorTeal40),
			InfoLevel:  levelBadge(ColorBlue70),
			WarnLevel:  levelBadge(ColorOrange40),
			ErrorLevel: levelBadge(ColorRed60),
			FatalLevel: levelBadge(ColorRedStrong),
		},

		Keys: map[string]lipgloss.Style{
			"op":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"input":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"line":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"run":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			"module": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"error":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},

		Values: map[string]lipgloss.Style{
			"op":     lipgloss.NewStyle().Bold(true),
			"input":  lipgloss.NewStyle().Italic(true),
			"error":  lipgloss.NewStyle().Bold(true),
			"module": lipgloss.NewStyle(),
		},
	}
}
