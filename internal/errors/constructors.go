package errors

// Convenience functions for common error patterns

// Config errors

func ConfigParse(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to parse configuration").
		WithContext("path", path)
}

func ConfigRead(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to read configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content pipeline errors

func UnknownTheme(name string) *SiteError {
	return New(CategoryTheme, SeverityFatal, "theme not registered").
		WithContext("theme", name)
}

func UnknownLanguage(lang string) *SiteError {
	return New(CategoryHighlight, SeverityError, "no lexer for language").
		WithContext("language", lang)
}

func HighlightFailed(lang string, cause error) *SiteError {
	return Wrap(cause, CategoryHighlight, SeverityError, "highlighting failed").
		WithContext("language", lang)
}

func MarkdownFailed(cause error) *SiteError {
	return Wrap(cause, CategoryMarkdown, SeverityError, "markdown conversion failed")
}

func RenderFailed(stage string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityError, "render failed").
		WithContext("stage", stage)
}

// Filesystem errors

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
