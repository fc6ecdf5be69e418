package ui

// Color accessors return the ANSI escape code of the active theme for a
// classic terminal hue, mapped onto the scheme's semantic slots. Callers can
// style output without holding a Theme value; under the "none" theme every
// accessor returns the empty string.

// ColorRed returns the error color of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary accent color of the active theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the informational color of the active theme.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the secondary color of the active theme.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code of the active theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
