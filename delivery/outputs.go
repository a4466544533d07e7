package delivery

import (
	"strings"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

// buildOutputs declares the template outputs consumers wire against:
// physical names for out-of-band tooling, ARNs for IAM policies in other
// stacks.
func (p *Pipeline) buildOutputs() map[string]datastream.Output {
	filterNames := make([]string, 0, len(p.cfg.LogGroupNames))
	for _, group := range p.cfg.LogGroupNames {
		filterNames = append(filterNames, p.names.Filter(group))
	}

	return map[string]datastream.Output{
		"DeliveryStreamName": {
			Description: "Physical name of the Firehose delivery stream",
			Value:       p.names.Stream(),
		},
		"DeliveryStreamArn": {
			Description: "ARN of the Firehose delivery stream",
			Value:       datastream.AttrRef{Resource: streamID, Attribute: "Arn"},
		},
		"KmsKeyArn": {
			Description: "ARN of the customer-managed encryption key",
			Value:       datastream.AttrRef{Resource: keyID, Attribute: "Arn"},
		},
		"FirehoseRoleName": {
			Description: "Name of the delivery role assumed by Firehose",
			Value:       p.names.FirehoseRole(),
		},
		"FirehoseRoleArn": {
			Description: "ARN of the delivery role assumed by Firehose",
			Value:       datastream.AttrRef{Resource: firehoseRoleID, Attribute: "Arn"},
		},
		"SubscriptionRoleName": {
			Description: "Name of the role assumed by CloudWatch Logs",
			Value:       p.names.SubscriptionRole(),
		},
		"SubscriptionRoleArn": {
			Description: "ARN of the role assumed by CloudWatch Logs",
			Value:       datastream.AttrRef{Resource: subscriptionRoleID, Attribute: "Arn"},
		},
		"SubscriptionFilterNames": {
			Description: "Names of the subscription filters, in configuration order",
			Value:       strings.Join(filterNames, ","),
		},
		"DiagnosticsLogGroupName": {
			Description: "Log group receiving Firehose delivery diagnostics",
			Value:       p.names.DiagnosticsGroup(),
		},
		"ErrorBucketName": {
			Description: "Bucket capturing events that failed delivery",
			Value:       p.names.ErrorBucket(),
		},
		"EndpointSecretArn": {
			Description: "ARN of the secret holding the HTTP endpoint credentials",
			Value:       datastream.Ref{Resource: secretID},
		},
	}
}
