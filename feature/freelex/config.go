package freelex

// Config holds configuration for the legacy Freelex content source.
type Config struct {
	// Host is the base URL of the Freelex instance.
	Host string `mapstructure:"host" default:"https://nzsl-assets.vuw.ac.nz/dnzsl/freelex"`
}
