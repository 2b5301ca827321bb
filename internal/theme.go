package internal

import "github.com/charmbracelet/lipgloss"

// Theme is the explicit color palette handed to the UI at construction.
type Theme struct {
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Border        lipgloss.Color
	Accent        lipgloss.Color
	Chart         lipgloss.Color
	ChartDim      lipgloss.Color
	Danger        lipgloss.Color
}

func DarkTheme() Theme {
	return Theme{
		Text:          lipgloss.Color("255"),
		TextSecondary: lipgloss.Color("250"),
		Border:        lipgloss.Color("238"),
		Accent:        lipgloss.Color("86"),
		Chart:         lipgloss.Color("255"),
		ChartDim:      lipgloss.Color("240"),
		Danger:        lipgloss.Color("203"),
	}
}

func LightTheme() Theme {
	return Theme{
		Text:          lipgloss.Color("235"),
		TextSecondary: lipgloss.Color("243"),
		Border:        lipgloss.Color("252"),
		Accent:        lipgloss.Color("29"),
		Chart:         lipgloss.Color("235"),
		ChartDim:      lipgloss.Color("250"),
		Danger:        lipgloss.Color("124"),
	}
}

// ThemeByName maps the config value to a palette, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
