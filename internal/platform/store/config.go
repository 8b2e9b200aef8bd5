package store

// Config aggregates snapshot configuration
type Config struct {
	AppName string

	Data DataConfig
}

// DataConfig configures the dataset source
type DataConfig struct {
	// Path to the CSV export
	Path string

	// Comma overrides the field delimiter, 0 means ','
	Comma rune

	// MaxRows caps how many data rows are loaded, 0 means unlimited
	MaxRows int
}
