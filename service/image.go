package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/disintegration/imaging"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/types"

	_ "golang.org/x/image/webp"
)

const (
	// MaxChatImageBytes is the largest chat image accepted.
	MaxChatImageBytes = 10 << 20
	// ChatImagesBucket is where chat images are stored.
	ChatImagesBucket = "chat-images"

	chatImageMaxRes = 2_000
)

var (
	ErrUnsupportedImageFormat = errs.InvalidArgumentError("이미지 파일(jpeg, jpg, png, gif, webp)만 업로드 가능합니다")
	ErrImageTooLarge          = errs.InvalidArgumentError("이미지는 10MB 이하만 업로드 가능합니다")
)

var chatImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// processChatImage checks and normalizes an uploaded chat image. PNG stays
// PNG; everything else is re-encoded as JPEG.
func processChatImage(r io.ReadSeeker, now time.Time) (types.Attachment, error) {
	var out types.Attachment

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return out, fmt.Errorf("process chat image: seek to end: %w", err)
	}

	if size > MaxChatImageBytes {
		return out, ErrImageTooLarge
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return out, fmt.Errorf("process chat image: seek to start: %w", err)
	}

	ct, err := detectContentType(r)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return out, ErrUnsupportedImageFormat
	}

	if err != nil {
		return out, fmt.Errorf("process chat image: %w", err)
	}

	if !chatImageContentTypes[ct] {
		return out, ErrUnsupportedImageFormat
	}

	img, err := imaging.Decode(io.LimitReader(r, MaxChatImageBytes), imaging.AutoOrientation(true))
	if errors.Is(err, image.ErrFormat) {
		return out, ErrUnsupportedImageFormat
	}

	if err != nil {
		return out, fmt.Errorf("could not decode chat image: %w", err)
	}

	if b := img.Bounds(); b.Dx() > chatImageMaxRes || b.Dy() > chatImageMaxRes {
		img = imaging.Fit(img, chatImageMaxRes, chatImageMaxRes, imaging.Lanczos)
	}

	format, ext, contentType := imaging.JPEG, "jpg", "image/jpeg"
	if ct == "image/png" {
		format, ext, contentType = imaging.PNG, "png", "image/png"
	}

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return out, fmt.Errorf("could not encode chat image: %w", err)
	}

	fileName, err := gonanoid.New()
	if err != nil {
		return out, fmt.Errorf("could not generate chat image filename: %w", err)
	}

	bounds := img.Bounds()
	out = types.Attachment{
		Path:        fmt.Sprintf("%d/%02d/%02d/%s.%s", now.Year(), now.Month(), now.Day(), fileName, ext),
		ContentType: contentType,
		FileSize:    int64(buf.Len()),
		Width:       uint32(bounds.Dx()),
		Height:      uint32(bounds.Dy()),
	}
	out.SetReader(bytes.NewReader(buf.Bytes()))

	return out, nil
}
