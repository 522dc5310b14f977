package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/framebuffer"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = log.New("pathtracer")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using recursive path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes, or a Wavefront OBJ mesh placed on a ground
plane, to a PNG or OpenEXR file. Sampling flags left at zero fall back to the
scene's recommended settings.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "materials",
					Usage: "built-in scene name (see the scenes command)",
				},
				cli.StringFlag{
					Name:  "integrator",
					Value: "path",
					Usage: "light transport: path or normals",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "render this Wavefront OBJ file instead of a built-in scene",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Usage: "exposure multiplier applied before tone mapping",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (.png or .exr); defaults to output/<scene>/render_<timestamp>.png",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}

	return app
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// renderScene implements the render command
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	selectedScene, err := createScene(sceneName, ctx.String("obj"))
	if err != nil {
		return err
	}
	if ctx.String("obj") != "" {
		sceneName = "obj"
	}

	config := selectedScene.SamplingConfig.Merge(scene.SamplingConfig{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Exposure:        ctx.Float64("exposure"),
		Seed:            ctx.Int64("seed"),
	})
	if err := config.Validate(); err != nil {
		return err
	}
	selectedScene.ApplySamplingConfig(config)

	rayIntegrator, err := integrator.New(ctx.String("integrator"))
	if err != nil {
		return err
	}

	outPath, err := createOutputPath(sceneName, ctx.String("out"), time.Now())
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config)
	if err != nil {
		return err
	}
	raytracer.SetIntegrator(rayIntegrator)

	logger.Noticef("rendering scene %q (%d primitives)", sceneName, selectedScene.GetPrimitiveCount())
	fb := framebuffer.New(config.Width, config.Height)
	stats, err := raytracer.Render(fb)
	if err != nil {
		return fmt.Errorf("error rendering frame: %w", err)
	}

	if err := fb.Save(outPath); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("saved %s", outPath)
	return nil
}

// createScene builds the named built-in scene, or a mesh scene when objPath is set
func createScene(name, objPath string) (*scene.Scene, error) {
	if objPath == "" {
		return scene.Lookup(name)
	}

	gray := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	data, err := loaders.LoadOBJ(objPath, gray)
	if err != nil {
		return nil, err
	}
	return scene.NewMeshScene(data.Triangles), nil
}

// createOutputPath returns out unchanged when given; otherwise it creates
// output/<scene> and returns a timestamped PNG path inside it
func createOutputPath(sceneName, out string, now time.Time) (string, error) {
	if out != "" {
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", fmt.Errorf("creating output directory: %w", err)
			}
		}
		return out, nil
	}

	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	filename := fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))
	return filepath.Join(outputDir, filename), nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame statistics\n%s", buf.String())
}

// listScenes implements the scenes command
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description", "Resolution", "SPP", "Max depth"})
	for _, info := range scene.ListScenes() {
		config := info.Recommended()
		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%dx%d", config.Width, config.Height),
			fmt.Sprintf("%d", config.SamplesPerPixel),
			fmt.Sprintf("%d", config.MaxDepth),
		})
	}
	table.Render()
	return nil
}
