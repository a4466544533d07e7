package logs

// LogStream represents an AWS::Logs::LogStream resource.
type LogStream struct {
	// LogGroupName is the log group the stream belongs to.
	LogGroupName any `json:"LogGroupName,omitempty"`

	// LogStreamName is the physical stream name.
	LogStreamName any `json:"LogStreamName,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (LogStream) ResourceType() string {
	return "AWS::Logs::LogStream"
}
