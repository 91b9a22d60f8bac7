package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"settings_path":      "~/.config/claude-code/settings.json",
		"min_column_width":   20,
		"skip_confirmations": false,
		"no_color":           false,
	}
}
