package errors

// MaxPercent is the largest accepted size hint.
const MaxPercent = 100

// ValidatePercent checks that a size hint is a percentage in [0, 100].
// The name identifies the offending field in the returned message.
func ValidatePercent(name string, pct int) error {
	if pct < 0 || pct > MaxPercent {
		return New(ErrCodeInvalidInput, "%s must be within 0-%d, got %d", name, MaxPercent, pct)
	}
	return nil
}

// MaxContainerSide is the largest accepted container width or height in
// pixels.
const MaxContainerSide = 16384

// ValidateContainer checks that container dimensions are usable for layout.
func ValidateContainer(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidInput, "container must have positive size, got %dx%d", width, height)
	}
	if width > MaxContainerSide || height > MaxContainerSide {
		return New(ErrCodeInvalidInput, "container sides must not exceed %d px, got %dx%d", MaxContainerSide, width, height)
	}
	return nil
}
