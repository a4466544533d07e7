// Package kms provides CloudFormation resource types for AWS Key Management Service.
package kms

// Key represents an AWS::KMS::Key resource.
type Key struct {
	// BypassPolicyLockoutSafetyCheck skips the safety check that prevents
	// an unmanageable key policy.
	BypassPolicyLockoutSafetyCheck any `json:"BypassPolicyLockoutSafetyCheck,omitempty"`

	// Description describes the key.
	Description any `json:"Description,omitempty"`

	// EnableKeyRotation enables automatic rotation of the key material.
	EnableKeyRotation any `json:"EnableKeyRotation,omitempty"`

	// Enabled toggles the key on or off.
	Enabled any `json:"Enabled,omitempty"`

	// KeyPolicy is the resource policy attached to the key.
	KeyPolicy any `json:"KeyPolicy,omitempty"`

	// KeySpec specifies the type of key material. Defaults to SYMMETRIC_DEFAULT.
	KeySpec any `json:"KeySpec,omitempty"`

	// KeyUsage determines the cryptographic operations the key supports.
	KeyUsage any `json:"KeyUsage,omitempty"`

	// MultiRegion marks the key as a multi-Region primary key.
	MultiRegion any `json:"MultiRegion,omitempty"`

	// PendingWindowInDays is the waiting period, between 7 and 30 days,
	// before a scheduled deletion removes the key.
	PendingWindowInDays any `json:"PendingWindowInDays,omitempty"`

	// RotationPeriodInDays is the number of days between automatic rotations.
	RotationPeriodInDays any `json:"RotationPeriodInDays,omitempty"`

	// Tags are key-value pairs attached to the key.
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (Key) ResourceType() string {
	return "AWS::KMS::Key"
}
