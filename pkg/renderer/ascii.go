package renderer

import (
	"bufio"
	"io"
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-cube-raytracer/pkg/core"
)

// asciiRamp runs from dark to bright
const asciiRamp = " .:-=+*#%@"

// shadeChar maps a linear color to a ramp character by luminance
func shadeChar(c core.Vec3) byte {
	l := core.NewInterval(0, 1).Clamp(c.Luminance())
	if math.IsNaN(l) {
		l = 0
	}
	idx := int(l*float64(len(asciiRamp)-1) + 0.5)
	return asciiRamp[idx]
}

// WriteASCII writes the frame as text, one character per pixel and one line per row
func WriteASCII(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)
	for j := 0; j < frame.Height; j++ {
		for i := 0; i < frame.Width; i++ {
			bw.WriteByte(shadeChar(frame.At(i, j)))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.New("writing ascii frame failed").Wrap(err)
	}
	return nil
}
