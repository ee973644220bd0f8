// Huecore - AR room-painting colour engine
//
// Huecore measures the true colour of walls and other surfaces from a camera
// frame and segmentation mask, and recommends paint colours for the room.
package main

import "github.com/huehome/huecore/internal/cli"

func main() {
	cli.Execute()
}
