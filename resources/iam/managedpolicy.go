package iam

// ManagedPolicy represents an AWS::IAM::ManagedPolicy resource.
//
// Attachment is expressed through the Roles, Users, and Groups lists; the
// policy and its attachments are a single resource.
type ManagedPolicy struct {
	// Description describes the policy. Immutable after creation.
	Description any `json:"Description,omitempty"`

	// Groups lists group names to attach the policy to.
	Groups []any `json:"Groups,omitempty"`

	// ManagedPolicyName is the physical policy name.
	ManagedPolicyName any `json:"ManagedPolicyName,omitempty"`

	// Path is the IAM path for the policy.
	Path any `json:"Path,omitempty"`

	// PolicyDocument is the policy in IAM policy document form.
	PolicyDocument any `json:"PolicyDocument,omitempty"`

	// Roles lists role names to attach the policy to.
	Roles []any `json:"Roles,omitempty"`

	// Users lists user names to attach the policy to.
	Users []any `json:"Users,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (ManagedPolicy) ResourceType() string {
	return "AWS::IAM::ManagedPolicy"
}
