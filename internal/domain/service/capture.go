package service

import "context"

// ScanDelegate receives capture-session events. Calls arrive on the
// Dispatcher.
type ScanDelegate interface {
	SymbolDetected(text string)
	ScanningFailed(err error)
	ScanningStopped()
}

// CaptureSource is a live frame feed that reports decoded symbols.
type CaptureSource interface {
	// Start begins scanning; it fails when the source cannot be set up
	Start(ctx context.Context, delegate ScanDelegate) error

	// Stop ends scanning and reports ScanningStopped once
	Stop()

	// Running reports whether a session is active
	Running() bool
}

// ImagePicker presents a picture chooser and calls onSelected exactly once
// with the chosen image bytes, or nil when nothing was picked.
type ImagePicker interface {
	Present(ctx context.Context, onSelected func(data []byte))
}
