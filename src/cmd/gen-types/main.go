// Command gen-types writes TypeScript declarations for the JSON types served
// by the reference API.
//
//	go run ./src/cmd/gen-types -out web/src/api/types.gen.ts
package main

import (
	"flag"
	"os"

	"github.com/coder/guts"
	"github.com/coder/guts/config"

	"github.com/validatedpatterns/reference-api/src/internal/log"
)

var packages = []string{
	"github.com/validatedpatterns/reference-api/src/internal/resource",
	"github.com/validatedpatterns/reference-api/src/internal/api",
}

func main() {
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	golang, err := guts.NewGolangParser()
	if err != nil {
		log.Fatalf("Failed to create parser: %v", err)
	}

	for _, pkg := range packages {
		if err := golang.IncludeGenerate(pkg); err != nil {
			log.Fatalf("Failed to include %s: %v", pkg, err)
		}
	}

	ts, err := golang.ToTypescript()
	if err != nil {
		log.Fatalf("Failed to convert to TypeScript: %v", err)
	}

	ts.ApplyMutations(config.ExportTypes)

	output, err := ts.Serialize()
	if err != nil {
		log.Fatalf("Failed to serialize TypeScript: %v", err)
	}

	output = "// Code generated by gen-types. DO NOT EDIT.\n\n" + output

	if *out == "" {
		_, _ = os.Stdout.WriteString(output)
		return
	}
	if err := os.WriteFile(*out, []byte(output), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Infof("Wrote %s", *out)
}
