package prompt

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.md
var builtinFS embed.FS

func loadBuiltin(name string) (*Template, error) {
	path := "templates/" + name + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, err
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	return tmpl, nil
}

func listBuiltins() []Info {
	dirEntries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := builtinFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			continue
		}
		tmpl, err := parseTemplate(string(data))
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Name:        strings.TrimSuffix(entry.Name(), ".md"),
			Description: tmpl.Description,
			Source:      "built-in",
		})
	}

	return infos
}
