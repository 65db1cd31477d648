package preprocess

import (
	"image"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ResolvePath turns an image reference into a local path. Plain paths are
// returned as-is; file:// URIs are unwrapped. Other schemes are refused.
func ResolvePath(ref string) (string, error) {
	if ref == "" {
		return "", errors.Wrap(ErrImageDecode, "empty image reference")
	}
	if !strings.Contains(ref, "://") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", errors.Wrapf(ErrImageDecode, "parse %q: %v", ref, err)
	}
	if u.Scheme != "file" {
		return "", errors.Wrapf(ErrImageDecode, "unsupported scheme %q", u.Scheme)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", errors.Wrapf(ErrImageDecode, "remote file host %q", u.Host)
	}
	return filepath.FromSlash(u.Path), nil
}

// Open decodes the image referenced by ref, applying any EXIF orientation.
func Open(ref string) (image.Image, error) {
	path, err := ResolvePath(ref)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(ErrImageDecode, "%s: %v", path, err)
	}
	return checkDecoded(img)
}

// Decode reads an image from r, applying any EXIF orientation.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(ErrImageDecode, "%v", err)
	}
	return checkDecoded(img)
}

func checkDecoded(img image.Image) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Wrap(ErrImageDecode, "empty image")
	}
	return img, nil
}
