package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/etru/helpers/internal/config"
)

// conversion is one converted numeral or message.
type conversion struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

type bezout struct {
	A int64 `json:"a" yaml:"a"`
	B int64 `json:"b" yaml:"b"`
	G int64 `json:"g" yaml:"g"`
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

type primality struct {
	Input string `json:"input" yaml:"input"`
	Prime bool   `json:"prime" yaml:"prime"`
}

// render writes v in the requested format. Text output is one line per entry
// of lines.
func render(w io.Writer, format string, lines []string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText:
		if len(lines) == 0 {
			return nil
		}
		_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

func conversionLines(cs []conversion) []string {
	lines := make([]string, len(cs))
	for i, c := range cs {
		lines[i] = c.Output
	}
	return lines
}
