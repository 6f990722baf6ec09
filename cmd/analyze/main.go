// Package main provides a CLI for text analysis.
// Usage: textstats-analyze [--locale TAG] [--op NAME] [--output json] [file ...]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"textstats/internal/analyzer"
	analyzeUC "textstats/internal/usecase/analyze"
)

// fileParallelism caps concurrent file reads.
const fileParallelism = 8

// FileOutput represents the JSON output format for one analyzed input.
type FileOutput struct {
	Name   string          `json:"name"`
	Locale string          `json:"locale"`
	Result analyzer.Result `json:"result"`
}

// CountOutput represents the JSON output format when a single operation is
// requested.
type CountOutput struct {
	Name      string `json:"name"`
	Operation string `json:"operation"`
	Locale    string `json:"locale"`
	Result    string `json:"result"`
}

func main() {
	var (
		locale       string
		operation    string
		outputFormat string
	)

	flag.StringVar(&locale, "locale", "", "BCP 47 locale tag (default en-US)")
	flag.StringVar(&operation, "op", "", "run a single operation instead of the full analysis")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: invalid output format %q (must be 'text' or 'json')\n", outputFormat)
		os.Exit(2)
	}

	svc := analyzeUC.Service{Registry: analyzer.NewRegistry(analyzer.DefaultLocale)}

	if operation != "" {
		known := false
		for _, name := range analyzeUC.Operations() {
			if name == operation {
				known = true
				break
			}
		}
		if !known {
			fmt.Fprintf(os.Stderr, "Error: unknown operation %q\n\nAvailable operations:\n", operation)
			for _, name := range analyzeUC.Operations() {
				fmt.Fprintf(os.Stderr, "  %-18s %s\n", name, analyzeUC.Descriptions[name])
			}
			os.Exit(2)
		}
	}

	if err := run(context.Background(), svc, locale, operation, outputFormat, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run analyzes stdin when no files are given, otherwise every named file.
// Files are read concurrently but results print in argument order.
func run(ctx context.Context, svc analyzeUC.Service, locale, operation, outputFormat string, files []string) error {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return report(ctx, svc, os.Stdout, "stdin", string(data), locale, operation, outputFormat)
	}

	texts := make(map[string]string, len(files))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(fileParallelism)
	for _, file := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			mu.Lock()
			texts[file] = string(data)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	// Dedupe repeated arguments while preserving first-occurrence order.
	seen := make(map[string]bool, len(files))
	ordered := files[:0:0]
	for _, file := range files {
		if !seen[file] {
			seen[file] = true
			ordered = append(ordered, file)
		}
	}
	for _, file := range ordered {
		if err := report(ctx, svc, os.Stdout, file, texts[file], locale, operation, outputFormat); err != nil {
			return err
		}
	}
	return nil
}

func report(ctx context.Context, svc analyzeUC.Service, w io.Writer, name, text, locale, operation, outputFormat string) error {
	if operation != "" {
		n, err := svc.Count(ctx, operation, text, locale)
		if err != nil {
			return err
		}
		if outputFormat == "json" {
			return json.NewEncoder(w).Encode(CountOutput{
				Name:      name,
				Operation: operation,
				Locale:    svc.Locale(locale),
				Result:    fmt.Sprintf("%d", n),
			})
		}
		fmt.Fprintf(w, "%s: %s = %d\n", name, operation, n)
		return nil
	}

	result := svc.Analyze(ctx, text, locale)
	if outputFormat == "json" {
		return json.NewEncoder(w).Encode(FileOutput{
			Name:   name,
			Locale: svc.Locale(locale),
			Result: result,
		})
	}

	fmt.Fprintf(w, "%s (%s)\n", name, svc.Locale(locale))
	fmt.Fprintf(w, "  words:      %d\n", result.WordCount)
	fmt.Fprintf(w, "  letters:    %d\n", result.LetterCount)
	fmt.Fprintf(w, "  characters: %d\n", result.CharacterCount)
	fmt.Fprintf(w, "  sentences:  %d\n", result.SentenceCount)
	fmt.Fprintf(w, "  paragraphs: %d\n", result.ParagraphCount)
	return nil
}
