package render

import (
	"github.com/crazy3lf/colorconv"
)

// TempSampler reports a temperature in Celsius for a cell.
type TempSampler interface {
	TempAt(x, y int) float64
}

const (
	heatMinTemp = -50.0
	heatMaxTemp = 1800.0
)

// FillHeatRGBA writes a temperature heat map into buf: cold cells map to
// blue hues, hot cells to red, via an HSV ramp. buf must hold 4*w*h bytes.
func FillHeatRGBA(buf []byte, sampler TempSampler, w, h int) {
	if len(buf) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := sampler.TempAt(x, y)
			f := (t - heatMinTemp) / (heatMaxTemp - heatMinTemp)
			if f < 0 {
				f = 0
			} else if f > 1 {
				f = 1
			}
			// 240 deg (blue) down to 0 deg (red).
			hue := 240 * (1 - f)
			r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
			if err != nil {
				continue
			}
			base := 4 * (y*w + x)
			buf[base+0] = r
			buf[base+1] = g
			buf[base+2] = b
			buf[base+3] = 200
		}
	}
}
