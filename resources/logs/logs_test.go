package logs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

// TestResourceTypes verifies the Logs resource types return correct CloudFormation types.
func TestResourceTypes(t *testing.T) {
	tests := []struct {
		name     string
		resource datastream.Resource
		expected string
	}{
		{"LogGroup", LogGroup{}, "AWS::Logs::LogGroup"},
		{"LogStream", LogStream{}, "AWS::Logs::LogStream"},
		{"SubscriptionFilter", SubscriptionFilter{}, "AWS::Logs::SubscriptionFilter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resource.ResourceType())
		})
	}
}

// TestLogGroupSerialization tests that LogGroup serializes to valid JSON.
func TestLogGroupSerialization(t *testing.T) {
	group := LogGroup{
		LogGroupName:    "/aws/kinesisfirehose/audit-pipeline-4f2a9c8d1e6b3a7f",
		RetentionInDays: 14,
	}

	data, err := json.Marshal(group)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "/aws/kinesisfirehose/audit-pipeline-4f2a9c8d1e6b3a7f", parsed["LogGroupName"])
	assert.Equal(t, float64(14), parsed["RetentionInDays"])
	assert.NotContains(t, parsed, "KmsKeyId")
}

// TestLogStreamSerialization tests that LogStream references its group by Ref.
func TestLogStreamSerialization(t *testing.T) {
	stream := LogStream{
		LogGroupName:  datastream.Ref{Resource: "DiagnosticsLogGroup"},
		LogStreamName: "DestinationDelivery",
	}

	data, err := json.Marshal(stream)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	ref := parsed["LogGroupName"].(map[string]any)
	assert.Equal(t, "DiagnosticsLogGroup", ref["Ref"])
	assert.Equal(t, "DestinationDelivery", parsed["LogStreamName"])
}

// TestSubscriptionFilterSerialization tests the filter shape, including that
// an explicitly empty pattern survives serialization.
func TestSubscriptionFilterSerialization(t *testing.T) {
	filter := SubscriptionFilter{
		DestinationArn: datastream.AttrRef{Resource: "LogDeliveryStream", Attribute: "Arn"},
		FilterName:     "audit-pipeline-app-1-4f2a9c8d1e6b3a7f",
		FilterPattern:  "",
		LogGroupName:   "app-1",
		RoleArn:        datastream.AttrRef{Resource: "SubscriptionRole", Attribute: "Arn"},
	}

	data, err := json.Marshal(filter)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	dest := parsed["DestinationArn"].(map[string]any)
	assert.Equal(t, []any{"LogDeliveryStream", "Arn"}, dest["Fn::GetAtt"])

	// Empty pattern means "match everything" and must not be dropped.
	pattern, ok := parsed["FilterPattern"]
	require.True(t, ok, "FilterPattern should be present even when empty")
	assert.Equal(t, "", pattern)

	assert.Equal(t, "app-1", parsed["LogGroupName"])
	assert.NotContains(t, parsed, "Distribution")
}
