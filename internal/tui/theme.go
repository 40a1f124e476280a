package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResolveTheme loads a theme with the following precedence:
//  1. NO_COLOR env var set → NoColorTheme (industry standard)
//  2. SITESCAN_THEME env var → parse custom colors.toml file
//  3. configPath (the theme file named in the config file), when non-empty
//  4. User theme from ~/.config/sitescan/theme/colors.toml
//  5. Default sitescan theme
//
// The theme directory may be a symlink into another terminal theme system.
func ResolveTheme(configPath string) Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColorTheme()
	}

	if path := os.Getenv("SITESCAN_THEME"); path != "" {
		if theme, err := LoadThemeFromFile(path); err == nil {
			return theme
		}
		// Fall through on error
	}

	if configPath != "" {
		if theme, err := LoadThemeFromFile(configPath); err == nil {
			return theme
		}
	}

	if theme, err := LoadUserTheme(); err == nil {
		return theme
	}

	return DefaultTheme()
}

// NoColorTheme returns a theme with empty colors. Lipgloss treats empty
// strings as "no color", so output comes out plain.
func NoColorTheme() Theme {
	empty := lipgloss.AdaptiveColor{Light: "", Dark: ""}
	return Theme{
		Primary:    empty,
		Secondary:  empty,
		Success:    empty,
		Warning:    empty,
		Error:      empty,
		Muted:      empty,
		Background: empty,
		Foreground: empty,
		Border:     empty,
	}
}

// LoadUserTheme attempts to load a theme from the user's sitescan config.
func LoadUserTheme() (Theme, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Theme{}, err
	}
	return LoadThemeFromFile(filepath.Join(home, ".config", "sitescan", "theme", "colors.toml"))
}

// LoadThemeFromFile parses a colors.toml file and returns a Theme.
func LoadThemeFromFile(path string) (Theme, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Path from trusted config
	if err != nil {
		return Theme{}, err
	}
	return themeFromColors(parseColorsTOML(data)), nil
}

// parseColorsTOML parses a minimal key = "value" TOML subset, keeping only
// entries whose value is a valid hex color.
func parseColorsTOML(data []byte) map[string]string {
	result := make(map[string]string)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		// Strip an inline comment that sits outside quotes
		if idx := inlineCommentIndex(value); idx > 0 {
			value = strings.TrimSpace(value[:idx])
		}
		value = strings.Trim(value, `"'`)

		if !isHexColor(value) {
			continue
		}
		result[key] = value
	}

	return result
}

func inlineCommentIndex(s string) int {
	inQuote := false
	quoteChar := rune(0)
	for i, c := range s {
		switch {
		case !inQuote && (c == '"' || c == '\''):
			inQuote = true
			quoteChar = c
		case inQuote && c == quoteChar:
			inQuote = false
		case !inQuote && c == '#':
			return i
		}
	}
	return -1
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, c := range hex {
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		isUpper := c >= 'A' && c <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}

// themeFromColors maps terminal-theme color names onto sitescan semantics.
// Terminal themes are typically dark, so parsed values populate the Dark
// variants and Light falls back to the defaults.
//
//	accent / color4 → Primary        color1 → Error
//	color7          → Secondary      color2 → Success
//	color8 / color0 → Muted, Border  color3 → Warning
//	foreground / background map directly
func themeFromColors(colors map[string]string) Theme {
	defaults := DefaultTheme()

	get := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := colors[k]; ok {
				return v
			}
		}
		return ""
	}

	dark := func(value, fallback string) string {
		if value != "" {
			return value
		}
		return fallback
	}

	return Theme{
		Primary: lipgloss.AdaptiveColor{
			Light: defaults.Primary.Light,
			Dark:  dark(get("accent", "color4"), defaults.Primary.Dark),
		},
		Secondary: lipgloss.AdaptiveColor{
			Light: defaults.Secondary.Light,
			Dark:  dark(get("color7"), defaults.Secondary.Dark),
		},
		Success: lipgloss.AdaptiveColor{
			Light: defaults.Success.Light,
			Dark:  dark(get("color2"), defaults.Success.Dark),
		},
		Warning: lipgloss.AdaptiveColor{
			Light: defaults.Warning.Light,
			Dark:  dark(get("color3"), defaults.Warning.Dark),
		},
		Error: lipgloss.AdaptiveColor{
			Light: defaults.Error.Light,
			Dark:  dark(get("color1"), defaults.Error.Dark),
		},
		Muted: lipgloss.AdaptiveColor{
			Light: defaults.Muted.Light,
			Dark:  dark(get("color8", "color0"), defaults.Muted.Dark),
		},
		Background: lipgloss.AdaptiveColor{
			Light: defaults.Background.Light,
			Dark:  dark(get("background"), defaults.Background.Dark),
		},
		Foreground: lipgloss.AdaptiveColor{
			Light: defaults.Foreground.Light,
			Dark:  dark(get("foreground"), defaults.Foreground.Dark),
		},
		Border: lipgloss.AdaptiveColor{
			Light: defaults.Border.Light,
			Dark:  dark(get("color8", "color0"), defaults.Border.Dark),
		},
	}
}
