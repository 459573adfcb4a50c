// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessorProcess(t *testing.T) {
	p := NewProcessor(t.TempDir())

	data := testPNG(t, 800, 600)
	res, err := p.Process(bytes.NewReader(data), "photo.png")
	require.NoError(t, err)

	require.Equal(t, "photo.png", res.FileName)
	require.Equal(t, "image/png", res.MimeType)
	require.Equal(t, 800, res.Width)
	require.Equal(t, 600, res.Height)
	require.Positive(t, res.Size)

	require.FileExists(t, res.OriginalPath)
	require.FileExists(t, res.ThumbnailPath)

	// Thumbnail fits within the bounding box, keeping aspect ratio.
	f, err := os.Open(res.ThumbnailPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 400, cfg.Width)
	require.Equal(t, 300, cfg.Height)
}

func TestProcessorRejectsNonImage(t *testing.T) {
	p := NewProcessor(t.TempDir())

	_, err := p.Process(strings.NewReader("definitely not an image"), "notes.txt")
	require.Error(t, err)
}

func TestProcessorRemove(t *testing.T) {
	p := NewProcessor(t.TempDir())

	res, err := p.Process(bytes.NewReader(testPNG(t, 100, 100)), "small.png")
	require.NoError(t, err)

	require.NoError(t, p.Remove("small.png"))
	require.NoFileExists(t, res.OriginalPath)
	require.NoFileExists(t, res.ThumbnailPath)

	// Removing again is a no-op
	require.NoError(t, p.Remove("small.png"))
}

func TestProcessorPathTraversal(t *testing.T) {
	p := NewProcessor(t.TempDir())

	_, err := p.Process(bytes.NewReader(testPNG(t, 10, 10)), "../escape.png")
	// filepath.Base strips the traversal, so the upload lands inside the
	// upload directory rather than failing.
	require.NoError(t, err)
	require.NoError(t, p.Remove("escape.png"))

	_, err = p.resolve("originals", "..")
	require.Error(t, err)
}

func TestDetectMimeType(t *testing.T) {
	require.Equal(t, "image/png", DetectMimeType(testPNG(t, 4, 4)))
	require.Equal(t, "text/plain", DetectMimeType([]byte("plain text content")))
}

func TestIsSupported(t *testing.T) {
	p := NewProcessor(t.TempDir())

	require.True(t, p.IsSupported("image/jpeg"))
	require.True(t, p.IsSupported("image/png"))
	require.True(t, p.IsSupported("image/gif"))
	require.False(t, p.IsSupported("image/tiff"))
	require.False(t, p.IsSupported("application/pdf"))
}
