package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered encodes cfg as TOML and writes it to path.
// Keys keep struct order; tables are sorted by name so rewrites diff cleanly.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	out := "#:schema " + schemaID + "\n\n" + sortTOMLSections(buf.String())
	if err := os.WriteFile(path, []byte(out), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders tables alphabetically by header. Keys that appear
// before the first table stay on top.
func sortTOMLSections(content string) string {
	type table struct {
		name  string
		lines []string
	}

	var (
		head   []string
		tables []table
	)
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, table{name: m[1], lines: []string{line}})
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(tables) == 0 {
			head = append(head, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(tables, func(i, j int) bool { return tables[i].name < tables[j].name })

	blocks := make([]string, 0, len(tables)+1)
	if len(head) > 0 {
		blocks = append(blocks, strings.Join(head, "\n"))
	}
	for _, t := range tables {
		blocks = append(blocks, strings.Join(t.lines, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
