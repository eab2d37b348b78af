// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the Go sources. It reports
// keys passed to i18n.T that the primary locale lacks, keys the primary
// locale has that other locales lack, and keys nothing refers to.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key", ...)
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// Any literal shaped like a key, e.g. in a conditional before the call.
	literalRe = regexp.MustCompile(`"([a-z]+\.[a-z_]+)"`)
)

// report is the outcome of one lint run. Undefined and Missing are errors,
// Orphaned is a warning.
type report struct {
	Undefined []string            // used in i18n.T but not in the primary locale
	Missing   map[string][]string // locale file -> keys it lacks
	Orphaned  []string            // in the primary locale but never referenced
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, filepath.Join(projectRoot, localesDir), primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Keys used in code but not defined ---")
	printList(r.Undefined, "Undefined")

	fmt.Println("--- Keys missing from secondary locales ---")
	if len(r.Missing) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, file := range sortedKeys(r.Missing) {
		fmt.Printf("%s:\n", file)
		printList(r.Missing[file], "Missing")
	}

	fmt.Println("--- Orphaned keys ---")
	printList(r.Orphaned, "Orphaned")

	fmt.Println("\n--- Linter Finished ---")
	switch {
	case r.failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func printList(items []string, label string) {
	if len(items) == 0 {
		fmt.Println("  ✨ None found.")
		return
	}
	for _, it := range items {
		fmt.Printf("  - %s: %s\n", label, it)
	}
}

// lint compares the sources under root with the locale files in dir.
func lint(root, dir, primary string) (report, error) {
	called, mentioned, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("finding used keys: %w", err)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return report{}, fmt.Errorf("loading primary locale %q: %w", primary, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return report{}, fmt.Errorf("finding locale files: %w", err)
	}

	r := report{Missing: map[string][]string{}}
	for key := range called {
		if _, ok := primaryKeys[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primaryKeys {
		if _, ok := mentioned[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}

	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}

	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)
	return r, nil
}

// findUsedKeys scans non-test .go files. called holds keys passed directly
// to i18n.T; mentioned additionally holds every key-shaped literal.
func findUsedKeys(root string) (called, mentioned map[string]struct{}, err error) {
	called = make(map[string]struct{})
	mentioned = make(map[string]struct{})

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			called[m[1]] = struct{}{}
			mentioned[m[1]] = struct{}{}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			mentioned[m[1]] = struct{}{}
		}
		return nil
	})
	return called, mentioned, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys. Flat files with
// dotted keys come out unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
