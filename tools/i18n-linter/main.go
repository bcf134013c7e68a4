// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the source tree. It reports
// keys used in code but missing from the primary locale, keys a secondary
// locale lacks, keys nothing uses, and translations whose fmt verbs differ
// from the primary locale. i18n.T applies its arguments fmt-style, so a verb
// mismatch garbles a status line at runtime.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("status.ready") and bare "dropin.card_number" literals handed
	// to i18n.T through a variable.
	keyRe  = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)
	verbRe = regexp.MustCompile(`%[-+# 0]*\d*(?:\.\d+)?[a-zA-Z%]`)
)

// Report is the outcome of one lint run. Undefined and Missing fail the run.
type Report struct {
	Used      int
	Primary   int
	Undefined []string
	Orphaned  []string
	// Missing and VerbMismatch are keyed by locale file name.
	Missing      map[string][]string
	VerbMismatch map[string][]string
}

// Failed reports whether the report holds errors rather than warnings.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	for _, keys := range r.VerbMismatch {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	report, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	report := Report{
		Missing:      map[string][]string{},
		VerbMismatch: map[string][]string{},
	}

	used, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report, fmt.Errorf("load primary locale %s: %w", primaryLocale, err)
	}
	report.Used = len(used)
	report.Primary = len(primary)

	for key := range used {
		if _, ok := primary[key]; !ok && looksLikeNamespace(key, primary) {
			report.Undefined = append(report.Undefined, key)
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	slices.Sort(report.Undefined)
	slices.Sort(report.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report, err
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		secondary, err := loadLocale(file)
		if err != nil {
			return report, fmt.Errorf("load %s: %w", name, err)
		}
		for key, text := range primary {
			translated, ok := secondary[key]
			if !ok {
				report.Missing[name] = append(report.Missing[name], key)
				continue
			}
			if !slices.Equal(verbs(text), verbs(translated)) {
				report.VerbMismatch[name] = append(report.VerbMismatch[name], key)
			}
		}
		slices.Sort(report.Missing[name])
		slices.Sort(report.VerbMismatch[name])
	}
	return report, nil
}

// looksLikeNamespace filters dotted literals that are not translation keys
// (file names, flag names) by requiring a namespace the primary locale uses.
func looksLikeNamespace(key string, primary map[string]string) bool {
	ns, _, ok := strings.Cut(key, ".")
	if !ok {
		return false
	}
	for k := range primary {
		if strings.HasPrefix(k, ns+".") {
			return true
		}
	}
	return false
}

// findUsedKeys scans non-test .go files under root, skipping tools and
// any _-prefixed directory.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
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
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadLocale reads a locale file into a flat key to text map. Nested maps
// are flattened with dots.
func loadLocale(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flattenYAML("", data, out)
	return out, nil
}

func flattenYAML(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenYAML(key, val, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// verbs lists the fmt verbs of s in order, ignoring %%.
func verbs(s string) []string {
	var out []string
	for _, v := range verbRe.FindAllString(s, -1) {
		if v != "%%" {
			out = append(out, v)
		}
	}
	return out
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "%d keys used in source, %d keys in %s\n", r.Used, r.Primary, primaryLocale)
	section := func(title string, keys []string) {
		if len(keys) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Used but not defined in "+primaryLocale, r.Undefined)
	for _, name := range sortedKeys(r.Missing) {
		section("Missing from "+name, r.Missing[name])
	}
	for _, name := range sortedKeys(r.VerbMismatch) {
		section("Format verbs differ in "+name, r.VerbMismatch[name])
	}
	section("Orphaned (defined but unused)", r.Orphaned)

	switch {
	case r.Failed():
		fmt.Fprintln(w, "\nlocale files need attention")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "\nlocale files are consistent; consider removing orphaned keys")
	default:
		fmt.Fprintln(w, "\nlocale files are consistent")
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
