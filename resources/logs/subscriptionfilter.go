package logs

// SubscriptionFilter represents an AWS::Logs::SubscriptionFilter resource.
//
// A log group supports a small fixed quota of subscription filters, so the
// pipeline creates exactly one per subscribed group.
type SubscriptionFilter struct {
	// DestinationArn is the ARN of the delivery target (Kinesis stream,
	// Firehose delivery stream, or Lambda function).
	DestinationArn any `json:"DestinationArn,omitempty"`

	// Distribution controls how log data is grouped across destination
	// shards: Random or ByLogStream. Kinesis streams only.
	Distribution any `json:"Distribution,omitempty"`

	// FilterName names the filter. Defaults to the logical ID when unset.
	FilterName any `json:"FilterName,omitempty"`

	// FilterPattern selects which events are forwarded. An empty pattern
	// matches every event.
	FilterPattern any `json:"FilterPattern,omitempty"`

	// LogGroupName is the log group to subscribe.
	LogGroupName any `json:"LogGroupName,omitempty"`

	// RoleArn grants CloudWatch Logs permission to write to the destination.
	RoleArn any `json:"RoleArn,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (SubscriptionFilter) ResourceType() string {
	return "AWS::Logs::SubscriptionFilter"
}
