package translate

import "context"

// Detector resolves the language of a piece of text.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// StaticDetector answers every detection with a fixed language. It backs the
// "auto" source-language path when no Translate credentials are configured.
// Note: this silently reports the default instead of detecting anything,
// which matches the reference behavior of the service.
type StaticDetector struct {
	Default string
}

// NewStaticDetector creates a detector that always answers lang.
func NewStaticDetector(lang string) *StaticDetector {
	if lang == "" {
		lang = "en"
	}
	return &StaticDetector{Default: lang}
}

// Detect returns the configured default language.
func (d *StaticDetector) Detect(ctx context.Context, text string) (string, error) {
	return d.Default, nil
}
