package configs

import "time"

// Import bounds CSV uploads. TTL is how long a validated upload waits for
// confirmation before it is discarded.
type Import struct {
	TTL         time.Duration `env:"TTL" envDefault:"30m"`
	MaxFileSize int64         `env:"MAX_FILE_SIZE" envDefault:"10485760"`
	MaxRows     int           `env:"MAX_ROWS" envDefault:"100000"`
	MaxErrors   int           `env:"MAX_ERRORS" envDefault:"100"`
	PreviewRows int           `env:"PREVIEW_ROWS" envDefault:"5"`
}
