package signbank

// Config holds configuration for the Signbank content source.
type Config struct {
	// Host is the base URL of the Signbank instance.
	Host string `mapstructure:"host" default:"https://signbank.nzsl.nz"`
	// DatasetID selects the dataset exported from /dictionary/advanced/.
	DatasetID string `mapstructure:"dataset_id" default:"1"`
	// Username is the account used to log in before exporting.
	Username string `mapstructure:"username" default:""`
	// Password is the account password.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
