// Package prompt supplies journaling prompts: short template documents that
// seed an entry, resolved from the journal directory, the user's config
// directory, or the built-in set.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/anguspiv/micro-journal/internal/config"
)

// Template is a journaling prompt with metadata and body text.
type Template struct {
	// Metadata from frontmatter
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags,omitempty"`

	// Body after the frontmatter, with placeholders unexpanded
	Body string `yaml:"-"`

	// Where the template was resolved from, for display
	Source string `yaml:"-"`
}

// Info describes a template for listing.
type Info struct {
	Name        string
	Description string
	Source      string // "built-in", "global", or "project"
	Overrides   string // empty or the source this one shadows
}

// Load finds a template by name.
// Resolution order: project-local, then user global, then built-in.
func Load(name string) (*Template, error) {
	if tmpl, err := loadFromDir(projectDir(), name); err == nil {
		tmpl.Source = "project"
		return tmpl, nil
	}

	if tmpl, err := loadFromDir(globalDir(), name); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}

	return nil, fmt.Errorf("prompt template %q not found", name)
}

// List returns every available template. A project or global template with
// the same name as a built-in shadows it; the shadowed built-in is omitted
// and the winner's Overrides field names what it replaced.
func List() []Info {
	seen := make(map[string]string)
	var infos []Info

	for _, src := range []struct {
		name string
		dir  string
	}{
		{"project", projectDir()},
		{"global", globalDir()},
	} {
		for _, info := range listFromDir(src.dir, src.name) {
			if _, exists := seen[info.Name]; exists {
				continue
			}
			seen[info.Name] = src.name
			infos = append(infos, info)
		}
	}

	for _, info := range listBuiltins() {
		if winner, exists := seen[info.Name]; exists {
			for i := range infos {
				if infos[i].Name == info.Name && infos[i].Source == winner {
					infos[i].Overrides = "built-in"
				}
			}
			continue
		}
		infos = append(infos, info)
	}

	return infos
}

// Render expands the template body's placeholders for the given moment:
// {{date}} as YYYY-MM-DD, {{time}} as HH:MM, and {{weekday}} as the day name.
func (t *Template) Render(now time.Time) string {
	r := strings.NewReplacer(
		"{{date}}", now.Format("2006-01-02"),
		"{{time}}", now.Format("15:04"),
		"{{weekday}}", now.Weekday().String(),
	)
	return r.Replace(t.Body)
}

// projectDir is the journal-local template directory, relative to the
// working directory.
func projectDir() string {
	return filepath.Join(".microlog", "templates")
}

func globalDir() string {
	return filepath.Join(config.Dir(), "templates")
}

func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+".md")
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
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

func listFromDir(dir, source string) []Info {
	if dir == "" {
		return nil
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
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
			Source:      source,
		})
	}

	return infos
}

// parseTemplate splits optional YAML frontmatter from the body.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, body := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Body = strings.TrimSpace(body)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter delimited by --- lines from
// the remainder of the document.
func splitFrontmatter(raw string) (frontmatter, body string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
