package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"time"

	"math3d-core/internal/config"
	"math3d-core/internal/mesh"
	"math3d-core/internal/postprocess"
	"math3d-core/internal/raster"
	"math3d-core/internal/texture"
	"math3d-core/math3d"
	"math3d-core/scalar"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	shape := flag.String("shape", "", "Primitive to render: box, sphere or torus")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	texPath := flag.String("texture", "", "Texture file (TGA/PNG/JPEG); 'checker' for a test pattern")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Shape:     *shape,
		Size:      *size,
		Frames:    *frames,
		OutputDir: *outputDir,
		Texture:   *texPath,
	})

	m, err := buildMesh(cfg.Shape)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var tex *image.NRGBA
	switch cfg.Texture {
	case "":
	case "checker":
		tex = texture.Checkerboard(256, 32)
	default:
		tex, err = texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", cfg.OutputDir, err)
		os.Exit(1)
	}

	cam := raster.Camera{
		Eye:    math3d.NewVector3(0, 0, -cfg.Distance),
		Target: math3d.Zero(),
		FOV:    scalar.ToRadians(cfg.FOVDeg),
		Near:   0.1,
		Far:    100,
	}

	start := time.Now()
	for frame := 0; frame < cfg.Frames; frame++ {
		yaw := scalar.ToRadians(cfg.YawDeg) + 2*math.Pi*float64(frame)/float64(cfg.Frames)
		world := math3d.RotationYawPitchRollMatrix(
			yaw,
			scalar.ToRadians(cfg.PitchDeg),
			scalar.ToRadians(cfg.RollDeg),
		)

		img := raster.Render(m, world, cam, tex, 168, 172, 186, cfg.Size, cfg.Supersample)
		img = postprocess.Downsample(img, cfg.Size)

		name := fmt.Sprintf("%s.webp", cfg.Shape)
		if cfg.Frames > 1 {
			name = fmt.Sprintf("%s_%03d.webp", cfg.Shape, frame)
		}
		if err := writeWebP(filepath.Join(cfg.OutputDir, name), img); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("  [%d/%d] %s\n", frame+1, cfg.Frames, name)
	}

	fmt.Printf("Done: %d frame(s) of %q in %.2fs\n", cfg.Frames, cfg.Shape, time.Since(start).Seconds())
}

func buildMesh(shape string) (*mesh.Mesh, error) {
	switch shape {
	case "box":
		return mesh.Box(2), nil
	case "sphere":
		return mesh.UVSphere(1.2, 48, 32), nil
	case "torus":
		return mesh.Torus(1.2, 0.45, 48, 24), nil
	}
	return nil, fmt.Errorf("render: unknown shape %q", shape)
}

func writeWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}
