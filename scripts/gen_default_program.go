// Command gen_default_program regenerates
// internal/defaultprogram/hello.go from scripts/hello.gl, the same way
// the teacher regenerates its generated expectation tables: pipe a
// rendered buffer through goimports under a timeout, coordinated with
// errgroup.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var (
	srcPath = flag.String("src", "scripts/hello.gl", "GridLoc source fixture")
	outPath = flag.String("out", "internal/defaultprogram/hello.go", "generated Go file")
)

func main() {
	flag.Parse()

	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	source, err := os.ReadFile(*srcPath)
	if err != nil {
		log.Fatalf("failed to read %v: %v", *srcPath, err)
	}

	var rendered bytes.Buffer
	fmt.Fprintf(&rendered, "%s\n\n%s\n\n%s\n%q\n",
		"// Package defaultprogram holds the built-in source run when the CLI is",
		"// given no positional source file argument. Generated by scripts/gen_default_program.go from "+*srcPath+"; do not edit directly.",
		"package defaultprogram\n\n// Source is the built-in hello-world GridLoc program.\nconst Source =",
		string(source))

	eg, ctx := errgroup.WithContext(ctx)

	var formatted bytes.Buffer
	eg.Go(func() error {
		goimports := exec.CommandContext(ctx, "goimports")
		goimports.Stdin = &rendered
		goimports.Stdout = &formatted
		goimports.Stderr = os.Stderr
		if err := goimports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outPath, formatted.Bytes(), 0o644); err != nil {
		log.Fatalf("failed to write %v: %v", *outPath, err)
	}
}
