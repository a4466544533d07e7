// Package template builds CloudFormation templates from pipeline resource records.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

// Builder assembles resource records into a CloudFormation template.
//
// Records are added in any order; Build validates references, orders
// resources by dependency, and serializes the result.
type Builder struct {
	description string
	records     map[string]datastream.Record
	outputs     map[string]datastream.Output
}

// NewBuilder creates an empty template builder.
func NewBuilder() *Builder {
	return &Builder{
		records: make(map[string]datastream.Record),
		outputs: make(map[string]datastream.Output),
	}
}

// SetDescription sets the template description.
func (b *Builder) SetDescription(desc string) {
	b.description = desc
}

// Add registers a resource record under its logical ID.
func (b *Builder) Add(rec datastream.Record) error {
	if rec.Name == "" {
		return errors.New("record has no logical ID")
	}
	if rec.Resource == nil {
		return fmt.Errorf("record %s has no resource", rec.Name)
	}
	if _, exists := b.records[rec.Name]; exists {
		return fmt.Errorf("duplicate logical ID: %s", rec.Name)
	}
	b.records[rec.Name] = rec
	return nil
}

// AddOutput registers a template output.
func (b *Builder) AddOutput(name string, out datastream.Output) {
	b.outputs[name] = out
}

// Build constructs the CloudFormation template.
func (b *Builder) Build() (*datastream.Template, error) {
	props := make(map[string]map[string]any, len(b.records))
	deps := make(map[string][]string, len(b.records))

	for name, rec := range b.records {
		serialized, err := serializeResource(rec.Resource)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}
		props[name] = serialized

		refs := append(extractReferences(serialized), rec.DependsOn...)
		for _, ref := range refs {
			if isPseudoParameter(ref) {
				continue
			}
			if _, exists := b.records[ref]; !exists {
				return nil, fmt.Errorf("resource %s references undefined resource %s", name, ref)
			}
			deps[name] = append(deps[name], ref)
		}
	}

	order, err := b.topologicalSort(deps)
	if err != nil {
		return nil, err
	}

	template := &datastream.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              b.description,
		Resources:                make(map[string]datastream.ResourceDef, len(order)),
	}

	for _, name := range order {
		rec := b.records[name]

		dependsOn := append([]string(nil), rec.DependsOn...)
		sort.Strings(dependsOn)

		template.Resources[name] = datastream.ResourceDef{
			Type:           rec.Resource.ResourceType(),
			Properties:     props[name],
			DependsOn:      dependsOn,
			DeletionPolicy: rec.DeletionPolicy,
		}
	}

	if len(b.outputs) > 0 {
		template.Outputs = make(map[string]datastream.Output, len(b.outputs))
		for name, out := range b.outputs {
			template.Outputs[name] = out
		}
	}

	return template, nil
}

// extractReferences walks serialized properties and collects the logical IDs
// referenced through Ref, Fn::GetAtt, and Fn::Sub.
func extractReferences(value any) []string {
	var refs []string

	switch v := value.(type) {
	case map[string]any:
		if target, ok := v["Ref"].(string); ok && len(v) == 1 {
			return []string{target}
		}
		if target, ok := v["Fn::GetAtt"]; ok && len(v) == 1 {
			switch att := target.(type) {
			case []any:
				if len(att) > 0 {
					if name, ok := att[0].(string); ok {
						return []string{name}
					}
				}
			case string:
				if name, _, found := strings.Cut(att, "."); found {
					return []string{name}
				}
			}
			return nil
		}
		if target, ok := v["Fn::Sub"]; ok && len(v) == 1 {
			switch sub := target.(type) {
			case string:
				return extractSubReferences(sub)
			case []any:
				if len(sub) > 0 {
					if s, ok := sub[0].(string); ok {
						refs = extractSubReferences(s)
					}
				}
				for _, elem := range sub[1:] {
					refs = append(refs, extractReferences(elem)...)
				}
			}
			return refs
		}
		for _, val := range v {
			refs = append(refs, extractReferences(val)...)
		}

	case []any:
		for _, elem := range v {
			refs = append(refs, extractReferences(elem)...)
		}
	}

	return refs
}

// extractSubReferences finds ${Name} substitutions in an Fn::Sub string.
// ${!Literal} escapes and attribute references (${Name.Attr}) resolve to the
// resource name.
func extractSubReferences(s string) []string {
	var refs []string
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			return refs
		}
		s = s[start+2:]
		end := strings.Index(s, "}")
		if end < 0 {
			return refs
		}
		name := s[:end]
		s = s[end+1:]

		if strings.HasPrefix(name, "!") {
			continue
		}
		if dot := strings.Index(name, "."); dot >= 0 {
			name = name[:dot]
		}
		refs = append(refs, name)
	}
}

// isPseudoParameter reports whether a reference targets a CloudFormation
// pseudo-parameter such as AWS::Region rather than a template resource.
func isPseudoParameter(ref string) bool {
	return strings.Contains(ref, "::")
}

// topologicalSort returns resource names in dependency order.
func (b *Builder) topologicalSort(deps map[string][]string) ([]string, error) {
	// Build adjacency list
	graph := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range b.records {
		graph[name] = nil
		inDegree[name] = 0
	}

	for name, resourceDeps := range deps {
		for _, dep := range resourceDeps {
			graph[dep] = append(graph[dep], name)
			inDegree[name]++
		}
	}

	// Kahn's algorithm
	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue) // Deterministic order

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range graph[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue) // Keep sorted for determinism
			}
		}
	}

	if len(result) != len(b.records) {
		return nil, b.detectCycle(deps)
	}

	return result, nil
}

// detectCycle finds and reports a cycle in the dependency graph.
func (b *Builder) detectCycle(deps map[string][]string) error {
	visited := make(map[string]bool)
	path := make(map[string]bool)

	var cycle []string
	var findCycle func(node string) bool
	findCycle = func(node string) bool {
		visited[node] = true
		path[node] = true

		for _, dep := range deps[node] {
			if !visited[dep] {
				if findCycle(dep) {
					cycle = append([]string{node}, cycle...)
					return true
				}
			} else if path[dep] {
				cycle = append([]string{dep, node}, cycle...)
				return true
			}
		}

		path[node] = false
		return false
	}

	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !visited[name] {
			if findCycle(name) {
				break
			}
		}
	}

	if len(cycle) > 0 {
		msg := "circular dependency detected:\n"
		for i, name := range cycle {
			msg += "  " + name
			if i < len(cycle)-1 {
				msg += "\n    → "
			}
		}
		return errors.New(msg)
	}

	return errors.New("circular dependency detected")
}

// ToJSON serializes the template to JSON.
func ToJSON(t *datastream.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
func ToYAML(t *datastream.Template) ([]byte, error) {
	return yaml.Marshal(t)
}
