package config

import (
	"reflect"
	"strings"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/database"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/fetch"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/logger"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/storage"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/freelex"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/images"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/signbank"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Build holds the file and folder layout of one pipeline run.
type Build struct {
	// GlossExportFile is where the fetched word export is saved.
	GlossExportFile string `mapstructure:"gloss_export_file" default:"signbank-glosses.csv"`
	// AssetExportFile is where the fetched asset export is saved.
	AssetExportFile string `mapstructure:"asset_export_file" default:"signbank-gloss-assets.csv"`
	// DumpFile is where the Freelex XML dump is saved.
	DumpFile string `mapstructure:"dump_file" default:"dnzsl-xmldump.xml"`
	// DatFile is the Android flat-file artifact.
	DatFile string `mapstructure:"dat_file" default:"nzsl.dat"`
	// AssetsFolder is where downloaded images land.
	AssetsFolder string `mapstructure:"assets_folder" default:"signbank-assets"`
	// PicturesFolder is the merged folder the image pass runs over.
	PicturesFolder string `mapstructure:"pictures_folder" default:"assets"`
	// DownloadAssets controls whether image assets are fetched during the
	// asset-linking pass.
	DownloadAssets bool `mapstructure:"download_assets" default:"true"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the dictionary store.
	Database database.Config `mapstructure:"database"`
	// Fetch holds configuration for the retrying HTTP client.
	Fetch fetch.Config `mapstructure:"fetch"`
	// Storage holds configuration for the object storage the bundle is
	// published to.
	Storage storage.Config `mapstructure:"storage"`
	// Signbank holds configuration for the Signbank content source.
	Signbank signbank.Config `mapstructure:"signbank"`
	// Freelex holds configuration for the legacy Freelex content source.
	Freelex freelex.Config `mapstructure:"freelex"`
	// Images holds configuration for the distribution image pass.
	Images images.Config `mapstructure:"images"`
	// Build holds the file layout of a pipeline run.
	Build Build `mapstructure:"build"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SIGNBANK_HOST -> signbank.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
