package compare

// Config holds configuration for the comparison pipeline.
type Config struct {
	// Marker is the literal token on a log line that introduces a timed
	// query record. The elapsed-time field follows it.
	Marker string `mapstructure:"marker" default:"timed-query"`
	// Timestamps enables the line shape with a fixed-width timestamp
	// prefix before the marker.
	Timestamps bool `mapstructure:"timestamps" default:"false"`
	// OutputDir is the directory where report and diff artifacts are written.
	OutputDir string `mapstructure:"output_dir" default:"."`
}
