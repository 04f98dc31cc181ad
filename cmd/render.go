package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/prism-render/prism/pkg/renderer"
	"github.com/prism-render/prism/pkg/scene"
)

// RenderScene renders a built-in scene progressively and writes the
// tone-mapped result as a PNG.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.ByName(ctx.String("scene"))
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:        ctx.Int("width"),
		Height:       ctx.Int("height"),
		BatchSamples: ctx.Int("spp"),
		Exposure:     ctx.Float64("exposure"),
		NumWorkers:   ctx.Int("workers"),
		UseSceneCam:  true,
	}

	frames := ctx.Int("frames")
	if frames < 1 {
		return fmt.Errorf("frame count must be >= 1, got %d", frames)
	}

	r, err := renderer.New(sc, config)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("rendering scene %q at %dx%d, %d frames x %d spp",
		sc.Name, config.Width, config.Height, frames, config.BatchSamples)

	stats := make([]renderer.RenderStats, 0, frames)
	for i := 0; i < frames; i++ {
		frameStats, err := r.RenderFrame(context.Background())
		if err != nil {
			return err
		}
		stats = append(stats, frameStats)
	}
	displayFrameStats(stats)

	imgFile := ctx.String("out")
	if err := writePNG(imgFile, r); err != nil {
		return err
	}
	logger.Noticef("wrote %s (%d samples/pixel)", imgFile, r.CumulativeSamples())

	if edge := ctx.Int("preview"); edge > 0 {
		previewFile := previewName(imgFile)
		if err := writePreview(previewFile, r, edge); err != nil {
			return err
		}
		logger.Noticef("wrote preview %s", previewFile)
	}

	if ctx.Bool("upload") {
		return uploadFile(imgFile)
	}
	return nil
}

// ListScenes prints the built-in scene names
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene", "Description"})
	table.Append([]string{"default", "ground plane with a mirror cube and a glossy cube under the sky"})
	table.Append([]string{"cornell", "open-front Cornell box with colored walls and two blocks"})
	table.Render()

	fmt.Print(buf.String())
	return nil
}

func displayFrameStats(stats []renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Batch spp", "Total spp", "Samples", "Workers", "Render time"})

	var total int
	for _, stat := range stats {
		total += stat.SamplesTraced()
		table.Append([]string{
			fmt.Sprintf("%d", stat.Frame),
			fmt.Sprintf("%d", stat.BatchSamples),
			fmt.Sprintf("%d", stat.CumulativeSamples),
			fmt.Sprintf("%d", stat.SamplesTraced()),
			fmt.Sprintf("%d", stat.Workers),
			fmt.Sprintf("%s", stat.Elapsed),
		})
	}
	table.SetFooter([]string{"", "", "", fmt.Sprintf("%d", total), "", "TOTAL"})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

func writePNG(name string, r *renderer.Renderer) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, r.Image())
}

// writePreview downscales the frame so its longer edge matches the
// requested size and writes it next to the full image
func writePreview(name string, r *renderer.Renderer, edge int) error {
	img := r.Image()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	// Leave one dimension 0 so resize preserves the aspect ratio
	var previewW, previewH uint
	if w >= h {
		previewW = uint(edge)
	} else {
		previewH = uint(edge)
	}
	small := resize.Resize(previewW, previewH, img, resize.Bilinear)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, small)
}

func previewName(imgFile string) string {
	if ext := ".png"; strings.HasSuffix(imgFile, ext) {
		return strings.TrimSuffix(imgFile, ext) + "_preview" + ext
	}
	return imgFile + ".preview.png"
}
