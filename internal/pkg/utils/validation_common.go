package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") || !strings.Contains(parts[0], ";") {
		return nil, "", errors.New("invalid base64 image")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}

	contentType := parts[0][5:strings.Index(parts[0], ";")]
	ext, err := mime.ExtensionsByType(contentType)
	if err != nil || len(ext) == 0 {
		return nil, "", errors.New("invalid image type")
	}

	return data, preferredExtension(ext), nil
}

// mime lists jpeg as .jfif first on recent Go versions.
func preferredExtension(extensions []string) string {
	for _, candidate := range []string{".png", ".jpg", ".jpeg"} {
		for _, ext := range extensions {
			if ext == candidate {
				return ext
			}
		}
	}
	return extensions[0]
}

func ValidateImageFormat(ext string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(data []byte, maxSize int) error {
	if len(data) > maxSize*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSize)
	}
	return nil
}
