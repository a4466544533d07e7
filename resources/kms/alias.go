package kms

// Alias represents an AWS::KMS::Alias resource.
type Alias struct {
	// AliasName is the display name. Must begin with "alias/".
	AliasName any `json:"AliasName,omitempty"`

	// TargetKeyId is the key ID or key ARN of the aliased key.
	TargetKeyId any `json:"TargetKeyId,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (Alias) ResourceType() string {
	return "AWS::KMS::Alias"
}
