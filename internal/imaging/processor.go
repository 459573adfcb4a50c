// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging processes uploaded media: decoding, EXIF-aware
// orientation, thumbnail generation and safe storage under the upload
// directory.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Thumbnail bounds. Thumbnails keep aspect ratio within this box.
const (
	thumbWidth  = 400
	thumbHeight = 400
	jpegQuality = 90
)

// Result describes a processed upload.
type Result struct {
	FileName      string
	OriginalPath  string
	ThumbnailPath string
	MimeType      string
	Size          int64
	Width         int
	Height        int
}

// Processor stores uploads and their thumbnails under uploadDir.
type Processor struct {
	uploadDir string
}

func NewProcessor(uploadDir string) *Processor {
	return &Processor{uploadDir: uploadDir}
}

// Process reads an uploaded image, normalizes its orientation, writes the
// re-encoded original plus a thumbnail, and returns their metadata.
// Re-encoding strips EXIF, which also drops GPS tags from user uploads.
func (p *Processor) Process(reader io.Reader, fileName string) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	format := detectFormat(data)
	if format == "" {
		return nil, fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	img = applyOrientation(img, exifOrientation(bytes.NewReader(data)))

	bounds := img.Bounds()

	original, err := encode(img, format)
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	originalPath, err := p.save("originals", fileName, original)
	if err != nil {
		return nil, fmt.Errorf("saving original: %w", err)
	}

	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
	thumbData, err := encode(thumb, format)
	if err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}
	thumbPath, err := p.save("thumbnails", fileName, thumbData)
	if err != nil {
		return nil, fmt.Errorf("saving thumbnail: %w", err)
	}

	return &Result{
		FileName:      filepath.Base(fileName),
		OriginalPath:  originalPath,
		ThumbnailPath: thumbPath,
		MimeType:      mimeType(format),
		Size:          int64(len(original)),
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
	}, nil
}

// Remove deletes the stored original and thumbnail for a file name.
func (p *Processor) Remove(fileName string) error {
	for _, sub := range []string{"originals", "thumbnails"} {
		path, err := p.resolve(sub, fileName)
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return nil
}

// IsSupported reports whether a MIME type can be processed.
func (p *Processor) IsSupported(mime string) bool {
	switch mime {
	case "image/jpeg", "image/png", "image/gif":
		return true
	default:
		return false
	}
}

// DetectMimeType sniffs the MIME type of raw upload data.
func DetectMimeType(data []byte) string {
	contentType := http.DetectContentType(data)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return contentType
}

// exifOrientation reads the EXIF orientation tag, defaulting to 1 (normal).
func exifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// detectFormat sniffs the image format from raw bytes. TIFF is rejected
// (CVE-2023-36308 in disintegration/imaging).
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	switch {
	case strings.Contains(contentType, "tiff"):
		return ""
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	default:
		return ""
	}
}

func mimeType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// resolve builds a path under uploadDir, rejecting traversal attempts.
func (p *Processor) resolve(subDir, fileName string) (string, error) {
	safe := filepath.Base(fileName)
	if safe == "." || safe == ".." || safe == "" {
		return "", fmt.Errorf("invalid file name")
	}

	absBase, err := filepath.Abs(p.uploadDir)
	if err != nil {
		return "", fmt.Errorf("resolving upload directory: %w", err)
	}
	target := filepath.Join(absBase, subDir, safe)

	rel, err := filepath.Rel(absBase, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path traversal detected")
	}
	return target, nil
}

func (p *Processor) save(subDir, fileName string, data []byte) (string, error) {
	path, err := p.resolve(subDir, fileName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return path, nil
}
