// Package graph renders DOT and Mermaid dependency graphs from built
// CloudFormation templates.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator renders the dependency graph of a template. Nodes are
// resources; edges are property references. Fn::GetAtt references are drawn
// blue, explicit DependsOn edges dashed.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// ClusterByService groups resources by AWS service.
	ClusterByService bool
}

// Generate renders the graph for tmpl and writes it to w.
func (g *Generator) Generate(tmpl *datastream.Template, w io.Writer) error {
	graph := g.buildGraph(tmpl)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(tmpl *datastream.Template) (string, error) {
	var sb strings.Builder
	if err := g.Generate(tmpl, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type edge struct {
	from, to string
}

// buildGraph creates the dot.Graph structure from the template.
func (g *Generator) buildGraph(tmpl *datastream.Template) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	names := make([]string, 0, len(tmpl.Resources))
	for name := range tmpl.Resources {
		names = append(names, name)
	}
	sort.Strings(names)

	if g.ClusterByService {
		g.addClusteredNodes(graph, tmpl, names)
	} else {
		for _, name := range names {
			n := graph.Node(name)
			n.Label(name + "\\n[" + tmpl.Resources[name].Type + "]")
		}
	}

	refEdges := make(map[edge]bool)
	getAttEdges := make(map[edge]bool)
	dependsEdges := make(map[edge]bool)

	for _, name := range names {
		def := tmpl.Resources[name]
		refs, getAtts := collectReferences(def.Properties)
		for _, target := range refs {
			if _, ok := tmpl.Resources[target]; ok {
				refEdges[edge{name, target}] = true
			}
		}
		for _, target := range getAtts {
			if _, ok := tmpl.Resources[target]; ok {
				getAttEdges[edge{name, target}] = true
			}
		}
		for _, target := range def.DependsOn {
			if _, ok := tmpl.Resources[target]; ok {
				dependsEdges[edge{name, target}] = true
			}
		}
	}

	// A property reference already implies the ordering an explicit
	// DependsOn would add; draw the stronger form only.
	for e := range dependsEdges {
		if refEdges[e] || getAttEdges[e] {
			delete(dependsEdges, e)
		}
	}
	for e := range refEdges {
		if getAttEdges[e] {
			delete(refEdges, e)
		}
	}

	for _, e := range sortedEdges(refEdges) {
		graph.Edge(graph.Node(e.from), graph.Node(e.to))
	}
	for _, e := range sortedEdges(getAttEdges) {
		graph.Edge(graph.Node(e.from), graph.Node(e.to)).Attr("color", "blue")
	}
	for _, e := range sortedEdges(dependsEdges) {
		graph.Edge(graph.Node(e.from), graph.Node(e.to)).Attr("style", "dashed")
	}

	return graph
}

func sortedEdges(edges map[edge]bool) []edge {
	result := make([]edge, 0, len(edges))
	for e := range edges {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].from != result[j].from {
			return result[i].from < result[j].from
		}
		return result[i].to < result[j].to
	})
	return result
}

// addClusteredNodes adds resource nodes grouped by AWS service.
func (g *Generator) addClusteredNodes(graph *dot.Graph, tmpl *datastream.Template, names []string) {
	serviceResources := make(map[string][]string)
	for _, name := range names {
		service := extractService(tmpl.Resources[name].Type)
		serviceResources[service] = append(serviceResources[service], name)
	}

	services := make([]string, 0, len(serviceResources))
	for service := range serviceResources {
		services = append(services, service)
	}
	sort.Strings(services)

	for _, service := range services {
		resNames := serviceResources[service]
		if len(resNames) > 1 {
			cluster := graph.Subgraph("cluster_"+service, dot.ClusterOption{})
			cluster.Attr("label", service)
			cluster.Attr("style", "rounded")
			cluster.Attr("bgcolor", "lightyellow")

			for _, name := range resNames {
				n := cluster.Node(name)
				n.Label(name + "\\n[" + tmpl.Resources[name].Type + "]")
			}
		} else {
			for _, name := range resNames {
				n := graph.Node(name)
				n.Label(name + "\\n[" + tmpl.Resources[name].Type + "]")
			}
		}
	}
}

// collectReferences walks serialized resource properties and returns the
// logical IDs referenced via Ref and via Fn::GetAtt, separately so edges
// can be styled by reference kind.
func collectReferences(value any) (refs, getAtts []string) {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 1 {
			if target, ok := v["Ref"].(string); ok {
				return []string{target}, nil
			}
			if raw, ok := v["Fn::GetAtt"]; ok {
				switch att := raw.(type) {
				case []any:
					if len(att) > 0 {
						if target, ok := att[0].(string); ok {
							return nil, []string{target}
						}
					}
				case string:
					if idx := strings.Index(att, "."); idx > 0 {
						return nil, []string{att[:idx]}
					}
				}
				return nil, nil
			}
		}
		for _, nested := range v {
			r, a := collectReferences(nested)
			refs = append(refs, r...)
			getAtts = append(getAtts, a...)
		}
	case []any:
		for _, nested := range v {
			r, a := collectReferences(nested)
			refs = append(refs, r...)
			getAtts = append(getAtts, a...)
		}
	}
	return refs, getAtts
}

// extractService pulls the service segment out of a CloudFormation type.
// e.g., "AWS::S3::Bucket" -> "S3"
func extractService(cfType string) string {
	parts := strings.Split(cfType, "::")
	if len(parts) == 3 {
		return parts[1]
	}
	return "Other"
}
