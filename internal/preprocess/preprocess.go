// Package preprocess turns decoded images into the packed byte layout the
// classifier consumes.
package preprocess

import (
	"image"
	"image/color"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// MaxChannels is the number of colour channels a pixel can contribute.
const MaxChannels = 3

// channelShifts extracts red, green and blue from a packed ARGB value.
var channelShifts = [MaxChannels]uint{16, 8, 0}

// Resamplers maps configuration names to interpolation functions.
var Resamplers = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"lanczos3": resize.Lanczos3,
}

// ParseResampler looks up an interpolation function by name.
func ParseResampler(name string) (resize.InterpolationFunction, error) {
	fn, ok := Resamplers[strings.ToLower(name)]
	if !ok {
		return 0, errors.Errorf("unknown resampler %q", name)
	}
	return fn, nil
}

// Preprocessor resizes images and packs them into a reused PixelBuffer.
type Preprocessor struct {
	Width    int
	Height   int
	Channels int
	// Interpolation defaults to nearest neighbour.
	Interpolation resize.InterpolationFunction

	buf *PixelBuffer
}

// New returns a preprocessor with its own buffer.
func New(width, height, channels int, interp resize.InterpolationFunction) (*Preprocessor, error) {
	buf, err := NewPixelBuffer(width, height, channels)
	if err != nil {
		return nil, err
	}
	return &Preprocessor{
		Width:         width,
		Height:        height,
		Channels:      channels,
		Interpolation: interp,
		buf:           buf,
	}, nil
}

// Process resizes img and writes it into the preprocessor's buffer. The
// returned buffer is reused by the next call.
func (p *Preprocessor) Process(img image.Image) (*PixelBuffer, error) {
	if err := Fill(p.buf, Resize(img, p.Width, p.Height, p.Interpolation), p.Width, p.Height, p.Channels); err != nil {
		return nil, err
	}
	return p.buf, nil
}

// Preprocess resizes img to targetWidth x targetHeight and returns a freshly
// allocated buffer of exactly targetWidth*targetHeight*channels bytes.
func Preprocess(img image.Image, targetWidth, targetHeight, channels int) (*PixelBuffer, error) {
	if img == nil {
		return nil, errors.Wrap(ErrImageDecode, "nil image")
	}
	buf, err := NewPixelBuffer(targetWidth, targetHeight, channels)
	if err != nil {
		return nil, err
	}
	if err := Fill(buf, Resize(img, targetWidth, targetHeight, resize.NearestNeighbor), targetWidth, targetHeight, channels); err != nil {
		return nil, err
	}
	return buf, nil
}

// Resize scales img to exactly width x height. Horizontal and vertical scale
// factors are independent, so the aspect ratio is not kept. An image that
// already has the target size is returned unchanged.
func Resize(img image.Image, width, height int, interp resize.InterpolationFunction) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, interp)
}

// Fill rewinds buf and writes img row by row, emitting the first `channels`
// of red, green and blue per pixel. img must be exactly width x height and
// buf must hold exactly width*height*channels bytes.
func Fill(buf *PixelBuffer, img image.Image, width, height, channels int) error {
	if err := checkGeometry(width, height, channels); err != nil {
		return err
	}
	if img == nil {
		return errors.Wrap(ErrImageDecode, "nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return errors.Wrapf(ErrInvalidGeometry, "image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	}
	if want := width * height * channels; buf.Cap() != want {
		return errors.Wrapf(ErrBufferOverflow, "buffer holds %d bytes, image needs %d", buf.Cap(), want)
	}

	buf.Rewind()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := PackARGB(img.At(x, y))
			for c := 0; c < channels; c++ {
				if err := buf.Put(byte((px >> channelShifts[c]) & 0xFF)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// PackARGB converts c to a non-premultiplied 0xAARRGGBB value.
func PackARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

func checkGeometry(width, height, channels int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "size %dx%d", width, height)
	}
	if channels < 1 || channels > MaxChannels {
		return errors.Wrapf(ErrInvalidGeometry, "%d channels, want 1..%d", channels, MaxChannels)
	}
	return nil
}
