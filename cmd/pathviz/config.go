package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose    = "verbose"
	FlagConfig     = "config"
	FlagLogFile    = "log-file"
	FlagCurriculum = "curriculum"
	FlagLayout     = "layout"

	// View command flags
	FlagDevice = "device"
	FlagMouse  = "mouse"

	// Render command flags
	FlagWidth  = "width"
	FlagFilter = "filter"
	FlagHover  = "hover"
	FlagOutput = "output"
	FlagFormat = "format"
	FlagRows   = "rows"

	// Output format flags
	FlagJSON = "json"
)

// Render output formats
const (
	FormatSVG  = "svg"
	FormatText = "text"
)
