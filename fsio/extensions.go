package fsio

import "slices"

// Built-in extension sets. Plain data; all lower-case with leading dot.
//
//nolint:gochecknoglobals // Extension constants
var (
	imageExtensions = []string{
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".ico", ".webp",
	}
	videoExtensions = []string{
		".mp4", ".avi", ".mov", ".wmv", ".flv", ".mpeg", ".mpg", ".m4v", ".mkv",
	}
	audioExtensions = []string{
		".mp3", ".wav", ".ogg", ".m4a", ".flac", ".aac", ".wma", ".m4b", ".m4p",
	}
	documentExtensions = []string{
		".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".ppt", ".pptx",
	}
)

// ImageExtensions returns the common image file extensions.
func ImageExtensions() []string { return slices.Clone(imageExtensions) }

// VideoExtensions returns the common video file extensions.
func VideoExtensions() []string { return slices.Clone(videoExtensions) }

// AudioExtensions returns the common audio file extensions.
func AudioExtensions() []string { return slices.Clone(audioExtensions) }

// DocumentExtensions returns the common document file extensions.
func DocumentExtensions() []string { return slices.Clone(documentExtensions) }
