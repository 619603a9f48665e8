package util

import (
	"errors"
	"net/http"
	"strings"
)

// DetectImageType sniffs generated bytes and rejects anything that is not an image.
func DetectImageType(data []byte) (string, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mimeType := http.DetectContentType(head)
	if !IsImage(mimeType) {
		return mimeType, errors.New("invalid file type: " + mimeType)
	}
	return mimeType, nil
}

// ExtensionForImage maps an image MIME type to a file extension.
func ExtensionForImage(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}
