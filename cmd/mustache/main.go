package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/aescanero/dago-node-render/internal/eval/template"
	"github.com/aescanero/dago-node-render/internal/tracing"
	"github.com/aescanero/dago-node-render/pkg/mustache/format"
)

func main() {
	templatePath := flag.String("template", "", "template file to render")
	dataPath := flag.String("data", "", "YAML or JSON data file (empty renders without data)")
	formatName := flag.String("format", "html", "output format: html, text or sanitized")
	output := flag.String("output", "", "output file (stdout if empty)")
	trace := flag.Bool("trace", false, "log every rendered tag to stderr")
	flag.Parse()

	if *templatePath == "" {
		log.Fatal("-template is required")
	}

	source, err := os.ReadFile(*templatePath)
	if err != nil {
		log.Fatalf("Failed to read template: %v", err)
	}

	data, err := loadData(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	formatter, ok := format.ByName(*formatName)
	if !ok {
		log.Fatalf("unknown format: %q", *formatName)
	}

	logger := zap.NewNop()
	if *trace {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	opts := []template.Option{template.WithFormatter(formatter)}
	if *trace {
		opts = append(opts, template.WithObserver(tracing.NewTagLogger(logger)))
	}
	engine := template.NewEngine(logger, opts...)

	rendered, err := engine.Render(string(source), data)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", *output)
		return
	}
	fmt.Print(rendered)
}

// loadData reads a YAML document; JSON files parse as YAML too.
func loadData(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}
