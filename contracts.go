// Package datastream provides Go types for the Cloud Platform Firehose
// log-delivery pipeline.
//
// The pipeline subscribes CloudWatch Log Groups to an Amazon Data Firehose
// delivery stream that forwards matching events to exactly one destination,
// an S3 bucket or an HTTP endpoint:
//
//	pipe, err := delivery.New(delivery.Config{
//	    LogGroupNames: []string{"app-1", "app-2"},
//	    BucketARN:     "arn:aws:s3:::audit-archive",
//	})
//	tmpl, err := pipe.Template()
//
// The synthesized CloudFormation template is handed to an external
// provisioning engine; this module never calls provisioning APIs itself.
package datastream

import (
	"encoding/json"
)

// Resource represents a CloudFormation resource.
// All resource types (s3.Bucket, iam.Role, etc.) implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::S3::Bucket")
	ResourceType() string
}

// Ref represents a by-name reference to another resource in the template.
//
// When serialized to CloudFormation JSON, Ref becomes:
//
//	{"Ref": "ErrorBucket"}
type Ref struct {
	// Resource is the logical name of the referenced resource
	Resource string
}

// MarshalJSON serializes Ref to CloudFormation Ref syntax.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"Ref": r.Resource,
	})
}

// IsZero returns true if the Ref has not been populated.
func (r Ref) IsZero() bool {
	return r.Resource == ""
}

// AttrRef represents a GetAtt reference to a resource attribute.
//
// Example:
//
//	var policy = intrinsics.PolicyDocument{...}
//	stream.HttpEndpointDestinationConfiguration.RoleARN = datastream.AttrRef{
//	    Resource:  "FirehoseDeliveryRole",
//	    Attribute: "Arn",
//	}
//
// When serialized to CloudFormation JSON, AttrRef becomes:
//
//	{"Fn::GetAtt": ["FirehoseDeliveryRole", "Arn"]}
type AttrRef struct {
	// Resource is the logical name of the referenced resource
	Resource string
	// Attribute is the attribute name (e.g., "Arn", "DomainName")
	Attribute string
}

// MarshalJSON serializes AttrRef to CloudFormation GetAtt syntax.
func (a AttrRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{
		"Fn::GetAtt": {a.Resource, a.Attribute},
	})
}

// IsZero returns true if the AttrRef has not been populated.
func (a AttrRef) IsZero() bool {
	return a.Resource == "" && a.Attribute == ""
}

// Record is one named resource in the pipeline graph. The delivery package
// produces an ordered set of these; the template builder serializes them.
type Record struct {
	// Name is the CloudFormation logical ID
	Name string
	// Resource is the typed resource declaration
	Resource Resource
	// DependsOn lists logical IDs that must exist first, beyond what
	// property references already imply
	DependsOn []string
	// DeletionPolicy overrides the stack default ("Delete", "Retain")
	DeletionPolicy string
}

// Template represents a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Mappings                 map[string]any         `json:"Mappings,omitempty" yaml:"Mappings,omitempty"`
	Conditions               map[string]any         `json:"Conditions,omitempty" yaml:"Conditions,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type           string         `json:"Type" yaml:"Type"`
	Properties     map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn      []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	DeletionPolicy string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type          string   `json:"Type" yaml:"Type"`
	Description   string   `json:"Description,omitempty" yaml:"Description,omitempty"`
	Default       any      `json:"Default,omitempty" yaml:"Default,omitempty"`
	AllowedValues []string `json:"AllowedValues,omitempty" yaml:"AllowedValues,omitempty"`
}

// Output is a CloudFormation template output.
type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
	Export      *struct {
		Name string `json:"Name" yaml:"Name"`
	} `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// BuildResult is the JSON output from `firehose-data-stream build`.
type BuildResult struct {
	Success   bool     `json:"success"`
	Template  Template `json:"template,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// LintResult is the JSON output from `firehose-data-stream lint`.
type LintResult struct {
	Success bool        `json:"success"`
	Issues  []LintIssue `json:"issues,omitempty"`
}

// LintIssue is a single linting issue.
type LintIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"` // "error", "warning", "info"
	Message  string `json:"message"`
	Rule     string `json:"rule"`
}

// ListResult is the JSON output from `firehose-data-stream list`.
type ListResult struct {
	Resources []ListResource `json:"resources"`
}

// ListResource is a single resource in the list output.
type ListResource struct {
	// Name is the CloudFormation logical ID
	Name string `json:"name"`
	// Type is the CloudFormation resource type
	Type string `json:"type"`
}

// ValidateResult is the JSON output from `firehose-data-stream validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// TemplateDiff groups resource-level differences between two templates.
type TemplateDiff struct {
	Added    []DiffEntry `json:"added,omitempty"`
	Removed  []DiffEntry `json:"removed,omitempty"`
	Modified []DiffEntry `json:"modified,omitempty"`
}

// DiffEntry describes one changed resource.
type DiffEntry struct {
	Resource string   `json:"resource"`
	Type     string   `json:"type"`
	Changes  []string `json:"changes,omitempty"`
}

// DiffSummary counts resource-level differences.
type DiffSummary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
	Total    int `json:"total"`
}

// SchemaError is a single finding from offline schema validation.
type SchemaError struct {
	Resource string `json:"resource"`
	Property string `json:"property"`
	Message  string `json:"message"`
}
