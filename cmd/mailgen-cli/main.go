package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/goliatone/go-mailgen"
	"github.com/goliatone/go-mailgen/pkg/compile"
	"github.com/goliatone/go-mailgen/pkg/prompt"
	"github.com/goliatone/go-mailgen/pkg/responsive"
	"github.com/goliatone/go-mailgen/pkg/template"
	"github.com/goliatone/go-mailgen/pkg/variables"
)

func main() {
	templatePath := flag.String("template", "template.yaml", "template document path (YAML or JSON)")
	varsPath := flag.String("variables", "", "variable map path (YAML, dotted paths)")
	mode := flag.String("mode", "desktop", "render mode: desktop or mobile")
	normalize := flag.Bool("normalize", false, "run the mobile normalization pass over the output")
	title := flag.String("title", "", "override the document subject as the HTML title")
	interactive := flag.Bool("interactive", false, "prompt for variables the map does not cover")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	doc, err := loadDocument(*templatePath)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	vars, err := loadVariables(*varsPath)
	if err != nil {
		log.Fatalf("Failed to load variables: %v", err)
	}

	renderMode := parseMode(*mode)
	if renderMode == "" {
		log.Fatalf("invalid mode: %q", *mode)
	}

	if *interactive {
		vars, err = fillMissing(ctx, doc, vars)
		if err != nil {
			log.Fatalf("Failed to collect variables: %v", err)
		}
	}

	compiler := compile.New()
	html, err := compiler.Compile(ctx, compile.Request{
		Document:  doc,
		Variables: vars,
		Mode:      renderMode,
		Title:     *title,
	})
	if err != nil {
		log.Fatalf("Failed to compile email: %v", err)
	}

	if *normalize && renderMode == mailgen.ModeMobile {
		html, err = responsive.NormalizeHTML(html, responsive.ModeMobile)
		if err != nil {
			log.Fatalf("Failed to normalize output: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Email written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

func loadDocument(path string) (mailgen.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mailgen.Document{}, err
	}
	return template.ParseDocument(data)
}

func loadVariables(path string) (mailgen.VariableMap, error) {
	if path == "" {
		return mailgen.VariableMap{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return variables.ParseMap(data)
}

func parseMode(raw string) mailgen.Mode {
	switch raw {
	case "desktop":
		return mailgen.ModeDesktop
	case "mobile":
		return mailgen.ModeMobile
	}
	return ""
}

// documentRaws collects the subject and every property value in a stable
// order: instances in document order, keys sorted within each instance. The
// order drives the interactive prompt sequence, so it must not depend on map
// iteration.
func documentRaws(doc mailgen.Document) []string {
	raws := []string{doc.Subject}
	for _, instance := range doc.Instances {
		keys := make([]string, 0, len(instance.PropertyValues))
		for key := range instance.PropertyValues {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			raws = append(raws, instance.PropertyValues[key])
		}
	}
	return raws
}

// fillMissing prompts for every variable token the document references that
// the map does not already cover. Empty answers stay empty, which downstream
// substitution treats the same as an unresolved token.
func fillMissing(ctx context.Context, doc mailgen.Document, vars mailgen.VariableMap) (mailgen.VariableMap, error) {
	missing := variables.Missing(vars, documentRaws(doc)...)
	if len(missing) == 0 {
		return vars, nil
	}

	driver := prompt.NewDriver()
	if err := driver.Info(ctx, fmt.Sprintf("%d variable(s) need a value", len(missing))); err != nil {
		return nil, err
	}

	filled := make(mailgen.VariableMap, len(vars)+len(missing))
	for path, value := range vars {
		filled[path] = value
	}
	for _, path := range missing {
		answer, err := driver.Input(ctx, prompt.InputConfig{
			Message: path,
			Help:    "substituted wherever {{" + path + "}} appears",
		})
		if err != nil {
			return nil, err
		}
		filled[path] = answer
	}
	return filled, nil
}
