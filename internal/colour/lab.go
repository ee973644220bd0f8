package colour

import (
	"fmt"
	"math"
)

// D65 reference white, 2° observer.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labEpsilon is the switch point between the cube-root and linear segments of f(t).
const labEpsilon = 0.008856

// LabColor is a colour in CIE L*a*b* with the sRGB value it was derived from.
// L is lightness [0, 100], A is the green-red axis and B the blue-yellow axis (roughly ±128).
type LabColor struct {
	L      float64 `json:"l"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Source RGB     `json:"-"`
}

// String returns the colour as "lab(L, a, b)".
func (c LabColor) String() string {
	return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", c.L, c.A, c.B)
}

// RGB returns the sRGB colour carried with the LAB value.
func (c LabColor) RGB() RGB {
	return c.Source
}

// NewLab builds a LabColor from coordinates, deriving its sRGB source.
func NewLab(l, a, b float64) LabColor {
	return LabColor{L: l, A: a, B: b, Source: LabToRGB(l, a, b)}
}

// Distance returns the Euclidean (CIE76) distance between two colours.
func Distance(c1, c2 LabColor) float64 {
	dl := c1.L - c2.L
	da := c1.A - c2.A
	db := c1.B - c2.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// RGBToLab converts an sRGB colour to L*a*b* using the D65 illuminant.
func RGBToLab(rgb RGB) LabColor {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return LabColor{
		L:      116.0*fy - 16.0,
		A:      500.0 * (fx - fy),
		B:      200.0 * (fy - fz),
		Source: rgb,
	}
}

// LabToRGB converts L*a*b* coordinates back to sRGB.
// Out-of-gamut results are clamped per channel.
func LabToRGB(l, a, b float64) RGB {
	fy := (l + 16.0) / 116.0
	fx := a/500.0 + fy
	fz := fy - b/200.0

	x := labFInv(fx) * whiteX
	y := labFInv(fy) * whiteY
	z := labFInv(fz) * whiteZ

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	bl := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: toByte(linearToSRGB(r)),
		G: toByte(linearToSRGB(g)),
		B: toByte(linearToSRGB(bl)),
	}
}

// srgbToLinear removes the sRGB transfer curve from a [0,1] component.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB applies the sRGB transfer curve to a linear component.
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (f - 16.0/116.0) / 7.787
}

// toByte clamps a [0,1] component and scales it to the nearest 8-bit value.
func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}
