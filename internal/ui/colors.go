package ui

// Accessors for the active theme's escape codes. Each returns "" when colors
// are disabled.

func ColorReset() string   { return GetCurrentTheme().Reset }
func ColorBold() string    { return GetCurrentTheme().Bold }
func ColorCyan() string    { return GetCurrentTheme().Primary }
func ColorGrey() string    { return GetCurrentTheme().Secondary }
func ColorGreen() string   { return GetCurrentTheme().Success }
func ColorYellow() string  { return GetCurrentTheme().Warning }
func ColorRed() string     { return GetCurrentTheme().Error }
func ColorMagenta() string { return GetCurrentTheme().Info }
