// Shader debug tool - renders the gradient shader to a PNG file for inspection
// and compares it against the CPU reference.
//
// Usage: go run ./cmd/shaderdebug -time 12.5 -out gradient.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/game"
	"github.com/pthm-cable/backdrop/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "gradient.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	simTime := flag.Float64("time", 0, "Simulated time uniform")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()

	gradient, err := renderer.NewGradientRenderer(cfg.Gradient.Base, cfg.Gradient.Amplitude)
	if err != nil {
		slog.Error("failed to load shader", "error", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer gradient.Unload()

	w, h := float32(*width), float32(*height)
	gradient.SetTime(float32(*simTime))
	gradient.SetResolution(w, h)

	// Render shader to texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	gradient.DrawQuad()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)
	defer rl.UnloadImage(img)

	uniforms := game.Uniforms{Time: float32(*simTime), Width: w, Height: h}
	maxDiff := compare(img, uniforms, cfg.Gradient.Base, cfg.Gradient.Amplitude)
	slog.Info("compared against cpu reference", "time", *simTime, "max_level_diff", maxDiff)

	if !rl.ExportImage(*img, *outPath) {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		rl.CloseWindow()
		os.Exit(1)
	}
	fmt.Printf("Shader rendered to: %s (%dx%d)\n", *outPath, *width, *height)
}

// compare returns the largest difference, in 8-bit levels, between the
// rendered red channel and the CPU reference. Row 0 of the flipped image is
// the top of the viewport, where gl_FragCoord.y is largest.
func compare(img *rl.Image, u game.Uniforms, base, amplitude float64) int {
	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)

	w, h := int(img.Width), int(img.Height)
	maxDiff := 0
	for row := 0; row < h; row++ {
		fragY := float64(h-row) - 0.5
		for col := 0; col < w; col++ {
			want := int(math.Round(game.Shade(float64(col)+0.5, fragY, u, base, amplitude) * 255))
			got := int(colors[row*w+col].R)
			if d := abs(got - want); d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
