package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aksappy/beam/internal/config"
	"github.com/aksappy/beam/internal/engine"
	"github.com/aksappy/beam/internal/script"
	"github.com/aksappy/beam/internal/system"
	"github.com/aksappy/beam/internal/video"
)

var buildVersion = "dev"

func main() {
	system.InitResourceLimits()

	inputPtr := flag.String("input", "", "Path to a beam script document (YAML)")
	outputPtr := flag.String("output", "", "Output video path (default: output/<script>.mp4)")
	fpsPtr := flag.Int("fps", 30, "Frames per second")
	workersPtr := flag.Int("workers", 0, "Render workers (0 = auto from CPU and memory)")
	encoderPtr := flag.String("encoder", "", "Video encoder (default: best available H.264)")
	qualityPtr := flag.Int("quality", 23, "Quality (x264: CRF 1-51, VideoToolbox: bitrate = Q*100kbit/s)")
	statsPtr := flag.Bool("stats", false, "Print a performance report")

	flag.Parse()

	if *inputPtr == "" {
		log.Fatal("[-] -input is required: path to a script document")
	}
	if *fpsPtr < 1 {
		log.Fatal("[-] -fps must be at least 1")
	}

	doc, err := script.Read(*inputPtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	output := *outputPtr
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(*inputPtr), filepath.Ext(*inputPtr))
		output = filepath.Join("output", base+".mp4")
	}
	os.MkdirAll(filepath.Dir(output), 0755)

	encoder := *encoderPtr
	if encoder == "" {
		encoder = system.GetBestH264Encoder()
		fmt.Printf("[*] Encoder: %s\n", encoder)
	}

	cfg := &config.Config{
		InputPath:    *inputPtr,
		OutputVideo:  output,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		VideoEncoder: encoder,
		Quality:      *qualityPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	project := engine.NewProject(cfg, doc, &video.FFmpegEncoder{})
	if err := project.Run(context.Background()); err != nil {
		log.Fatalf("[-] %v", err)
	}

	fmt.Printf("[+++] Done! Video saved: %s\n", cfg.OutputVideo)
}
