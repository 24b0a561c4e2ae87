package domain

// ReportOptions control how a batch run is rendered.
type ReportOptions struct {
	// Locale is a BCP 47 tag such as "en-US"; empty means the default locale.
	Locale string `json:"locale" yaml:"locale"`
	// Format names an output formatter ("console", "csv", "json", "svg", "html").
	Format string `json:"format" yaml:"format"`
}

// Configuration is the top-level structure of a calculation config file.
type Configuration struct {
	Scenarios []Scenario    `json:"scenarios" yaml:"scenarios"`
	Report    ReportOptions `json:"report" yaml:"report"`
}
