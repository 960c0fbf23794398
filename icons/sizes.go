// Package icons holds the launcher icon size table and prints it.
package icons

import "fmt"

// Density is one screen density bucket and the launcher icon edge length it
// expects, in pixels.
type Density struct {
	Label string
	Size  int
}

// String formats the density as "label: NxN px".
func (d Density) String() string {
	return fmt.Sprintf("%s: %dx%d px", d.Label, d.Size, d.Size)
}

// Order matters: the report prints densities from smallest to largest.
var densities = []Density{
	{Label: "mdpi", Size: 48},
	{Label: "hdpi", Size: 72},
	{Label: "xhdpi", Size: 96},
	{Label: "xxhdpi", Size: 144},
	{Label: "xxxhdpi", Size: 192},
}

var tips = []string{
	"Start from a 512x512 px source image and scale down for each density.",
	"Keep the logo inside the center 66% so adaptive icon masks do not clip it.",
	"Put each size in its matching res/mipmap-<density> folder.",
}

var files = []string{
	"ic_launcher.png",
	"ic_launcher_round.png",
	"ic_launcher_foreground.png",
	"ic_launcher_background.png",
}

// Densities returns the size table in print order.
func Densities() []Density {
	return append([]Density(nil), densities...)
}

// Tips returns the tips printed after the size table.
func Tips() []string {
	return append([]string(nil), tips...)
}

// Files returns the launcher file names to replace in each mipmap folder.
func Files() []string {
	return append([]string(nil), files...)
}
