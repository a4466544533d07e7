// Package intrinsics provides CloudFormation intrinsic functions.
// This file contains IAM policy document types and helpers.
package intrinsics

import (
	"encoding/json"
)

// Json is a shorthand for map[string]any.
// Used for inline JSON objects like Condition blocks.
//
// Example:
//
//	Condition: Json{
//	    StringEquals: Json{"sts:ExternalId": AWS_ACCOUNT_ID},
//	}
type Json = map[string]any

// Any creates a []any slice from the given items.
// Use for fields typed as []any that accept mixed types or intrinsics.
//
// Example:
//
//	// Instead of:
//	Action: []any{"firehose:PutRecord", "firehose:PutRecordBatch"},
//	// Write:
//	Action: Any("firehose:PutRecord", "firehose:PutRecordBatch"),
func Any(items ...any) []any {
	return items
}

// PolicyDocument represents an IAM policy document.
//
// Example:
//
//	var trust = PolicyDocument{
//	    Version:   "2012-10-17",
//	    Statement: []any{assumeStatement},
//	}
type PolicyDocument struct {
	Version   string `json:"Version,omitempty"`
	Statement []any  `json:"Statement"`
}

// NewPolicyDocument creates a PolicyDocument with the default version.
func NewPolicyDocument() PolicyDocument {
	return PolicyDocument{Version: "2012-10-17"}
}

// PolicyStatement represents an IAM policy statement.
//
// Example:
//
//	var assumeStatement = PolicyStatement{
//	    Effect:    "Allow",
//	    Principal: ServicePrincipal{"firehose.amazonaws.com"},
//	    Action:    "sts:AssumeRole",
//	}
type PolicyStatement struct {
	Sid       string `json:"Sid,omitempty"`
	Effect    string `json:"Effect"`
	Principal any    `json:"Principal,omitempty"`
	Action    any    `json:"Action,omitempty"`
	Resource  any    `json:"Resource,omitempty"`
	Condition Json   `json:"Condition,omitempty"`
}

// --- Principal Helpers ---

// ServicePrincipal represents a service principal (e.g., firehose.amazonaws.com).
// Serializes to {"Service": ...} format.
//
// Examples:
//
//	ServicePrincipal{"firehose.amazonaws.com"}
//	ServicePrincipal{Sub{String: "logs.${AWS::Region}.amazonaws.com"}}
type ServicePrincipal []any

// MarshalJSON serializes to {"Service": ...} format.
func (p ServicePrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"Service": p[0]})
	}
	return json.Marshal(map[string]any{"Service": []any(p)})
}

// AWSPrincipal represents an AWS account/role/user principal.
// Serializes to {"AWS": ...} format.
//
// Examples:
//
//	AWSPrincipal{Sub{String: "arn:aws:iam::${AWS::AccountId}:root"}}
//	AWSPrincipal{"arn:aws:iam::123456789012:root"}
type AWSPrincipal []any

// MarshalJSON serializes to {"AWS": ...} format.
func (p AWSPrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"AWS": p[0]})
	}
	return json.Marshal(map[string]any{"AWS": []any(p)})
}

// AllPrincipal represents the wildcard principal "*".
const AllPrincipal = "*"

// --- IAM Condition Operator Constants ---
// Use these as keys in Condition maps for typo prevention.
//
// Example:
//
//	Condition: Json{
//	    StringLike: Json{"aws:SourceArn": logsNamespaceARN},
//	}

const (
	// String conditions
	StringEquals    = "StringEquals"
	StringNotEquals = "StringNotEquals"
	StringLike      = "StringLike"
	StringNotLike   = "StringNotLike"

	// Boolean condition
	Bool = "Bool"

	// ARN conditions
	ArnEquals    = "ArnEquals"
	ArnNotEquals = "ArnNotEquals"
	ArnLike      = "ArnLike"
	ArnNotLike   = "ArnNotLike"

	// Null condition
	Null = "Null"
)
