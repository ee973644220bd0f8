// Test image generator for a synthetic room frame and its surface masks.
//
// Usage: go run testdata/generate_test_image.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

const (
	width  = 320
	height = 240
)

var (
	wallColour   = color.RGBA{R: 200, G: 100, B: 50, A: 255} // Terracotta
	doorColour   = color.RGBA{R: 44, G: 62, B: 80, A: 255}   // Navy
	floorColour  = color.RGBA{R: 139, G: 115, B: 85, A: 255}
	shadowColour = color.RGBA{R: 60, G: 30, B: 15, A: 255}
	glareColour  = color.RGBA{R: 250, G: 245, B: 240, A: 255}

	door  = image.Rect(200, 60, 260, 200)
	floor = image.Rect(0, 200, width, height)
)

func main() {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	wallMask := image.NewGray(frame.Bounds())
	doorMask := image.NewGray(frame.Bounds())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := image.Pt(x, y)
			switch {
			case p.In(floor):
				frame.Set(x, y, floorColour)
			case p.In(door):
				frame.Set(x, y, doorColour)
				doorMask.SetGray(x, y, color.Gray{Y: 255})
			default:
				c := wallColour
				// A shadow band under the ceiling and a lamp highlight on the left.
				if y < 20 {
					c = shadowColour
				} else if x > 30 && x < 60 && y > 90 && y < 120 {
					c = glareColour
				}
				frame.Set(x, y, c)
				wallMask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	write("testdata/room.png", frame)
	write("testdata/wall_mask.png", wallMask)
	write("testdata/door_mask.png", doorMask)

	println("Test images created: testdata/room.png, testdata/wall_mask.png, testdata/door_mask.png")
}

func write(path string, img image.Image) {
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}
}
