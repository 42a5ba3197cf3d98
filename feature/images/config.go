package images

// Config holds configuration for the distribution image pass.
type Config struct {
	// ThumbnailHeight is the pixel height of the search-screen thumbnails.
	ThumbnailHeight int `mapstructure:"thumbnail_height" default:"92"`
	// ThumbnailPrefix is prepended to thumbnail filenames. The apps look
	// images up by this naming convention.
	ThumbnailPrefix string `mapstructure:"thumbnail_prefix" default:"50."`
	// MaxDimension bounds both axes of distributed images; larger images
	// are scaled down.
	MaxDimension int `mapstructure:"max_dimension" default:"600"`
	// PaletteSize is the colour count images are reduced to. The source
	// illustrations are simple line drawings, so 4 colours suffice.
	PaletteSize int `mapstructure:"palette_size" default:"4"`
}
