package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// NumPixels is the number of LEDs on the strip.
const NumPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels [NumPixels]colorful.Color
}

// NewFrame creates a new, black, Frame instance.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// NewSolidFrame creates a Frame with every pixel set to c.
func NewSolidFrame(c Colour) *Frame {
	f := NewFrame()
	f.Fill(c)
	return f
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c Colour) {
	for i := range f.pixels {
		f.pixels[i] = c.Color
	}
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) Colour {
	return Colour{f.pixels[i]}
}

// SetPixel sets the colour of pixel i.
func (f *Frame) SetPixel(i int, c Colour) {
	f.pixels[i] = c.Color
}

// Lerp blends each pixel of f toward the matching pixel of end. Neither frame
// is modified; the result is a new Frame, so a track inside its blend window
// allocates one Frame per tick. Tracks outside a blend window return their
// authored frames without allocating.
func (f *Frame) Lerp(end *Frame, t float64) *Frame {
	out := NewFrame()
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendRgb(end.pixels[i], t)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian pixel count
// followed by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (NumPixels*3)+2)
	binary.LittleEndian.PutUint16(data, NumPixels)
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
