// Package iam provides CloudFormation resource types for AWS Identity and Access Management.
package iam

// Role represents an AWS::IAM::Role resource.
type Role struct {
	// AssumeRolePolicyDocument is the trust policy that controls which
	// principals can assume the role.
	AssumeRolePolicyDocument any `json:"AssumeRolePolicyDocument,omitempty"`

	// Description describes the role.
	Description any `json:"Description,omitempty"`

	// ManagedPolicyArns lists ARNs of managed policies to attach.
	ManagedPolicyArns []any `json:"ManagedPolicyArns,omitempty"`

	// MaxSessionDuration is the maximum session duration in seconds.
	MaxSessionDuration any `json:"MaxSessionDuration,omitempty"`

	// Path is the IAM path for the role.
	Path any `json:"Path,omitempty"`

	// PermissionsBoundary is the ARN of the permissions-boundary policy.
	PermissionsBoundary any `json:"PermissionsBoundary,omitempty"`

	// Policies are inline policies embedded in the role.
	Policies []any `json:"Policies,omitempty"`

	// RoleName is the physical role name. Maximum 64 characters.
	RoleName any `json:"RoleName,omitempty"`

	// Tags are key-value pairs attached to the role.
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (Role) ResourceType() string {
	return "AWS::IAM::Role"
}

// Role_Policy represents an inline policy embedded in a Role.
type Role_Policy struct {
	// PolicyDocument is the policy in IAM policy document form.
	PolicyDocument any `json:"PolicyDocument,omitempty"`

	// PolicyName names the inline policy.
	PolicyName any `json:"PolicyName,omitempty"`
}
