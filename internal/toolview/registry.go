package toolview

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schemas/*.yaml
var schemasFS embed.FS

// registry is the singleton built-in schema registry.
var registry = &Registry{}

// Registry holds schemas for known first-party tools. When a result document
// arrives without an inline schema, the viewer falls back to these before
// giving up and rendering raw.
type Registry struct {
	once    sync.Once
	byTool  map[string]*Schema
	loadErr error
}

func (r *Registry) load() {
	r.once.Do(func() {
		r.byTool = make(map[string]*Schema)

		entries, err := schemasFS.ReadDir("schemas")
		if err != nil {
			r.loadErr = fmt.Errorf("reading schemas dir: %w", err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			data, err := schemasFS.ReadFile("schemas/" + entry.Name())
			if err != nil {
				continue
			}
			schema := new(Schema)
			if err := yaml.Unmarshal(data, schema); err != nil {
				continue
			}
			if schema.Tool == "" || schema.Validate() != nil {
				continue
			}
			r.byTool[schema.Tool] = schema
		}
	})
}

// LookupTool returns the built-in schema for a tool name, or nil.
func LookupTool(name string) *Schema {
	registry.load()
	return registry.byTool[name]
}

// KnownTools returns the names of all tools with built-in schemas.
func KnownTools() []string {
	registry.load()
	names := make([]string, 0, len(registry.byTool))
	for name := range registry.byTool {
		names = append(names, name)
	}
	return names
}
