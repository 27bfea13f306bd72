package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ThemeConfig holds the light and dark DaisyUI theme names
type ThemeConfig struct {
	Light string
	Dark  string
}

var DefaultThemes = ThemeConfig{
	Light: "valentine",
	Dark:  "dracula",
}

var themesPattern = regexp.MustCompile(`themes:\s*([a-zA-Z0-9-]+)\s+--default\s*,\s*([a-zA-Z0-9-]+)\s+--prefersdark`)

// GetThemes reads the theme names from css/input.css under staticDir.
// Expected format: themes: themeName --default, themeName --prefersdark;
func GetThemes(staticDir string) ThemeConfig {
	content, err := os.ReadFile(filepath.Join(staticDir, "css", "input.css"))
	if err != nil {
		return DefaultThemes
	}
	if themes := parseThemesFromCSS(string(content)); themes != nil {
		return *themes
	}
	return DefaultThemes
}

// parseThemesFromCSS extracts theme names from the DaisyUI plugin block
func parseThemesFromCSS(content string) *ThemeConfig {
	matches := themesPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		return nil
	}

	return &ThemeConfig{
		Light: strings.TrimSpace(matches[1]),
		Dark:  strings.TrimSpace(matches[2]),
	}
}
