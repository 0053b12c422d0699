package cli

import "flag"

// Flags holds all command-line flag values.
type Flags struct {
	ConfigFile  *string
	DataRoot    *string
	Symbols     *string
	FromDate    *string
	ToDate      *string
	OutputDir   *string
	Report      *bool
	MetricsAddr *string
	Verbose     *bool
	Version     *bool
}

// ParseFlags defines and parses command-line flags.
func ParseFlags() *Flags {
	flags := &Flags{
		ConfigFile:  flag.String("config", "", "Path to configuration file (required)"),
		DataRoot:    flag.String("data-root", "", "Override data root directory from config"),
		Symbols:     flag.String("symbol", "", "Override symbol list from config (comma-separated)"),
		FromDate:    flag.String("from", "", "Override start date (YYYY-MM-DD)"),
		ToDate:      flag.String("to", "", "Override end date (YYYY-MM-DD)"),
		OutputDir:   flag.String("output", "results", "Output directory for reports"),
		Report:      flag.Bool("report", true, "Write equity-curve CSV and Excel report"),
		MetricsAddr: flag.String("metrics-addr", "", "Serve Prometheus metrics on this address during the run"),
		Verbose:     flag.Bool("verbose", false, "Verbose output"),
		Version:     flag.Bool("version", false, "Show version and exit"),
	}

	flag.Parse()
	return flags
}

// Validate checks that required flags are provided.
func (f *Flags) Validate() error {
	if *f.ConfigFile == "" {
		return &ValidationError{Field: "config", Message: "config file path is required"}
	}
	return nil
}

// ValidationError represents a flag validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
