// Package logs provides CloudFormation resource types for Amazon CloudWatch Logs.
package logs

// LogGroup represents an AWS::Logs::LogGroup resource.
type LogGroup struct {
	// KmsKeyId is the ARN of the KMS key used to encrypt log data.
	KmsKeyId any `json:"KmsKeyId,omitempty"`

	// LogGroupClass is STANDARD or INFREQUENT_ACCESS.
	LogGroupClass any `json:"LogGroupClass,omitempty"`

	// LogGroupName is the physical log group name.
	LogGroupName any `json:"LogGroupName,omitempty"`

	// RetentionInDays is how long events are kept before expiring.
	RetentionInDays any `json:"RetentionInDays,omitempty"`

	// Tags are key-value pairs attached to the log group.
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (LogGroup) ResourceType() string {
	return "AWS::Logs::LogGroup"
}
