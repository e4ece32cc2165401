package uikit

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
type ClipboardProvider interface {
	// HasText reports whether the clipboard currently holds text.
	HasText() bool

	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// Global clipboard provider (set by the application during initialization).
var clipboardProvider ClipboardProvider

// SetClipboardProvider sets the global clipboard provider.
// Call this during application initialization with a platform-specific
// implementation; the GLFW backend's Window implements it.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// GetClipboardProvider returns the current clipboard provider, or nil if not set.
func GetClipboardProvider() ClipboardProvider {
	return clipboardProvider
}

// ClipboardHasText reports whether text is available to paste.
// Returns false if no clipboard provider is set.
func ClipboardHasText() bool {
	return clipboardProvider != nil && clipboardProvider.HasText()
}

// ClipboardGetText retrieves text from the clipboard.
// Returns empty string if no clipboard provider is set or clipboard is empty.
func ClipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the clipboard.
// Does nothing if no clipboard provider is set.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}
