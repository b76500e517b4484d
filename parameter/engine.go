package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the nominal display refresh rate the simulation is tuned for
	DefaultFPS = 60

	// MaxFPS caps configured frame rate
	MaxFPS = 240

	// MaxExportFPS is the fastest rate a GIF can pace, two centiseconds a frame
	MaxExportFPS = 50

	// EventChannelSize is the buffered capacity between the input poller and the main loop
	EventChannelSize = 256
)

// Terminal Pixel Mapping
// One terminal cell is treated as CellPixelWidth x CellPixelHeight logical pixels so
// pixel-denominated page constants keep their meaning; half-block rendering splits a
// cell into two square sub-pixels of CellPixelWidth
const (
	CellPixelWidth  = 12
	CellPixelHeight = 24
)

// Logging
const (
	// LogDir is the directory for debug log output, relative to the working directory
	LogDir = "logs"

	// LogFileName is the debug log file name
	LogFileName = "hero-field.log"

	// MaxLogSize triggers rotation of the debug log at startup (10 MB)
	MaxLogSize = 10 * 1024 * 1024
)
