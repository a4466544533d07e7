package datastream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		ref      Ref
		expected string
	}{
		{
			name:     "bucket",
			ref:      Ref{Resource: "ErrorBucket"},
			expected: `{"Ref":"ErrorBucket"}`,
		},
		{
			name:     "secret",
			ref:      Ref{Resource: "EndpointSecret"},
			expected: `{"Ref":"EndpointSecret"}`,
		},
		{
			name:     "key",
			ref:      Ref{Resource: "LogDeliveryKey"},
			expected: `{"Ref":"LogDeliveryKey"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestRef_IsZero(t *testing.T) {
	assert.True(t, Ref{}.IsZero())
	assert.False(t, Ref{Resource: "ErrorBucket"}.IsZero())
}

func TestAttrRef_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		ref      AttrRef
		expected string
	}{
		{
			name:     "role arn",
			ref:      AttrRef{Resource: "FirehoseDeliveryRole", Attribute: "Arn"},
			expected: `{"Fn::GetAtt":["FirehoseDeliveryRole","Arn"]}`,
		},
		{
			name:     "key arn",
			ref:      AttrRef{Resource: "LogDeliveryKey", Attribute: "Arn"},
			expected: `{"Fn::GetAtt":["LogDeliveryKey","Arn"]}`,
		},
		{
			name:     "stream arn",
			ref:      AttrRef{Resource: "LogDeliveryStream", Attribute: "Arn"},
			expected: `{"Fn::GetAtt":["LogDeliveryStream","Arn"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestAttrRef_IsZero(t *testing.T) {
	tests := []struct {
		name     string
		ref      AttrRef
		expected bool
	}{
		{
			name:     "empty",
			ref:      AttrRef{},
			expected: true,
		},
		{
			name:     "with resource",
			ref:      AttrRef{Resource: "FirehoseDeliveryRole"},
			expected: false,
		},
		{
			name:     "with attribute",
			ref:      AttrRef{Attribute: "Arn"},
			expected: false,
		},
		{
			name:     "fully populated",
			ref:      AttrRef{Resource: "FirehoseDeliveryRole", Attribute: "Arn"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.IsZero())
		})
	}
}

func TestTemplate_JSON(t *testing.T) {
	template := Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              "Firehose log delivery pipeline",
		Resources: map[string]ResourceDef{
			"ErrorBucket": {
				Type: "AWS::S3::Bucket",
				Properties: map[string]any{
					"BucketName": "cloud-platform-firehose-log-delivery-errors-0a1b2c3d4e5f6071",
				},
			},
		},
		Outputs: map[string]Output{
			"KmsKeyArn": {
				Description: "ARN of the customer-managed key",
				Value:       map[string][]string{"Fn::GetAtt": {"LogDeliveryKey", "Arn"}},
			},
		},
	}

	data, err := json.Marshal(template)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "2010-09-09", parsed["AWSTemplateFormatVersion"])
	assert.Equal(t, "Firehose log delivery pipeline", parsed["Description"])

	resources := parsed["Resources"].(map[string]any)
	bucket := resources["ErrorBucket"].(map[string]any)
	assert.Equal(t, "AWS::S3::Bucket", bucket["Type"])

	outputs := parsed["Outputs"].(map[string]any)
	keyArn := outputs["KmsKeyArn"].(map[string]any)
	assert.Equal(t, "ARN of the customer-managed key", keyArn["Description"])

	// Empty optional sections stay out of the document entirely.
	_, hasParams := parsed["Parameters"]
	assert.False(t, hasParams)
	_, hasConditions := parsed["Conditions"]
	assert.False(t, hasConditions)
}

func TestResourceDef_DependsOn(t *testing.T) {
	resource := ResourceDef{
		Type: "AWS::Logs::SubscriptionFilter",
		Properties: map[string]any{
			"LogGroupName": "app-1",
		},
		DependsOn: []string{"SubscriptionPolicy", "LogDeliveryStream"},
	}

	data, err := json.Marshal(resource)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "AWS::Logs::SubscriptionFilter", parsed["Type"])
	dependsOn := parsed["DependsOn"].([]any)
	assert.Len(t, dependsOn, 2)
	assert.Equal(t, "SubscriptionPolicy", dependsOn[0])
	assert.Equal(t, "LogDeliveryStream", dependsOn[1])
}

func TestResourceDef_DeletionPolicy(t *testing.T) {
	resource := ResourceDef{
		Type:           "AWS::SecretsManager::Secret",
		DeletionPolicy: "Delete",
	}

	data, err := json.Marshal(resource)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "Delete", parsed["DeletionPolicy"])

	// Unset policy is omitted, leaving the stack default in force.
	data, err = json.Marshal(ResourceDef{Type: "AWS::KMS::Alias"})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &parsed))
	_, present := parsed["DeletionPolicy"]
	assert.False(t, present)
}

func TestRecord_Fields(t *testing.T) {
	record := Record{
		Name:           "ErrorBucket",
		Resource:       nil,
		DependsOn:      []string{"LogDeliveryKey"},
		DeletionPolicy: "Delete",
	}

	assert.Equal(t, "ErrorBucket", record.Name)
	assert.Equal(t, []string{"LogDeliveryKey"}, record.DependsOn)
	assert.Equal(t, "Delete", record.DeletionPolicy)
}

func TestBuildResult_Success(t *testing.T) {
	result := BuildResult{
		Success: true,
		Template: Template{
			AWSTemplateFormatVersion: "2010-09-09",
			Resources: map[string]ResourceDef{
				"ErrorBucket": {
					Type: "AWS::S3::Bucket",
				},
			},
		},
		Resources: []string{"ErrorBucket"},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.True(t, parsed["success"].(bool))
	resources := parsed["resources"].([]any)
	assert.Equal(t, "ErrorBucket", resources[0])
}

func TestBuildResult_Error(t *testing.T) {
	result := BuildResult{
		Success: false,
		Errors:  []string{"destination: exactly one of destination_bucket_arn or destination_http_endpoint must be set"},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.False(t, parsed["success"].(bool))
	errors := parsed["errors"].([]any)
	assert.Len(t, errors, 1)
}

func TestLintResult(t *testing.T) {
	result := LintResult{
		Success: false,
		Issues: []LintIssue{
			{
				File:     "template.json",
				Line:     42,
				Column:   9,
				Severity: "warning",
				Message:  "Property BufferingHints should have an IntervalInSeconds",
				Rule:     "W3002",
			},
			{
				File:     "template.json",
				Line:     108,
				Column:   5,
				Severity: "error",
				Message:  "Resource LogDeliveryStream has invalid Type",
				Rule:     "E3001",
			},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.False(t, parsed["success"].(bool))
	issues := parsed["issues"].([]any)
	assert.Len(t, issues, 2)

	issue1 := issues[0].(map[string]any)
	assert.Equal(t, "template.json", issue1["file"])
	assert.Equal(t, "warning", issue1["severity"])

	issue2 := issues[1].(map[string]any)
	assert.Equal(t, "error", issue2["severity"])
	assert.Equal(t, "E3001", issue2["rule"])
}

func TestListResult(t *testing.T) {
	result := ListResult{
		Resources: []ListResource{
			{Name: "ErrorBucket", Type: "AWS::S3::Bucket"},
			{Name: "LogDeliveryStream", Type: "AWS::KinesisFirehose::DeliveryStream"},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	resources := parsed["resources"].([]any)
	assert.Len(t, resources, 2)

	first := resources[0].(map[string]any)
	assert.Equal(t, "ErrorBucket", first["name"])
	assert.Equal(t, "AWS::S3::Bucket", first["type"])
}

func TestOutput_WithExport(t *testing.T) {
	output := Output{
		Description: "Delivery stream ARN for cross-stack reference",
		Value:       map[string][]string{"Fn::GetAtt": {"LogDeliveryStream", "Arn"}},
		Export: &struct {
			Name string `json:"Name" yaml:"Name"`
		}{
			Name: "LogDelivery-StreamArn",
		},
	}

	data, err := json.Marshal(output)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	export := parsed["Export"].(map[string]any)
	assert.Equal(t, "LogDelivery-StreamArn", export["Name"])
}
