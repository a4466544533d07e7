package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/intrinsics"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/firehose"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/logs"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/s3"
)

func TestSerializeResource_SimpleStruct(t *testing.T) {
	bucket := s3.Bucket{
		BucketName: "audit-pipeline-errors-4f2a9c8d1e6b3a7f",
	}

	props, err := serializeResource(bucket)
	require.NoError(t, err)

	assert.Equal(t, "audit-pipeline-errors-4f2a9c8d1e6b3a7f", props["BucketName"])
	assert.NotContains(t, props, "Tags")
	assert.NotContains(t, props, "LifecycleConfiguration")
}

func TestSerializeResource_NestedStruct(t *testing.T) {
	bucket := s3.Bucket{
		BucketName: "audit-pipeline-errors",
		VersioningConfiguration: &s3.Bucket_VersioningConfiguration{
			Status: "Enabled",
		},
	}

	props, err := serializeResource(bucket)
	require.NoError(t, err)

	versioning := props["VersioningConfiguration"].(map[string]any)
	assert.Equal(t, "Enabled", versioning["Status"])
}

func TestSerializeResource_Tags(t *testing.T) {
	bucket := s3.Bucket{
		BucketName: "audit-pipeline-errors",
		Tags: []any{
			intrinsics.Tag{Key: "team", Value: "platform"},
			intrinsics.Tag{Key: "source", Value: "firehose-data-stream"},
		},
	}

	props, err := serializeResource(bucket)
	require.NoError(t, err)

	tags := props["Tags"].([]any)
	assert.Len(t, tags, 2)

	tag0 := tags[0].(map[string]any)
	assert.Equal(t, "team", tag0["Key"])
	assert.Equal(t, "platform", tag0["Value"])
}

func TestSerializeResource_IntrinsicValues(t *testing.T) {
	filter := logs.SubscriptionFilter{
		DestinationArn: datastream.AttrRef{Resource: "LogDeliveryStream", Attribute: "Arn"},
		FilterPattern:  "",
		LogGroupName:   "app-1",
		RoleArn:        datastream.AttrRef{Resource: "SubscriptionRole", Attribute: "Arn"},
	}

	props, err := serializeResource(filter)
	require.NoError(t, err)

	dest := props["DestinationArn"].(map[string]any)
	assert.Equal(t, []any{"LogDeliveryStream", "Arn"}, dest["Fn::GetAtt"])

	// The interface holds an explicit empty string, so the property survives.
	pattern, ok := props["FilterPattern"]
	require.True(t, ok)
	assert.Equal(t, "", pattern)
}

func TestSerializeResource_OmitsZeroValues(t *testing.T) {
	props, err := serializeResource(firehose.DeliveryStream{})
	require.NoError(t, err)

	assert.Empty(t, props)
}

func TestSerializeResource_OmitsZeroReferences(t *testing.T) {
	alias := struct {
		AliasName   string             `json:"AliasName,omitempty"`
		TargetKeyId datastream.Ref     `json:"TargetKeyId,omitempty"`
		KeyArn      datastream.AttrRef `json:"KeyArn,omitempty"`
	}{
		AliasName: "alias/audit-pipeline",
	}

	props, err := serializeResource(alias)
	require.NoError(t, err)

	assert.Equal(t, "alias/audit-pipeline", props["AliasName"])
	assert.NotContains(t, props, "TargetKeyId")
	assert.NotContains(t, props, "KeyArn")
}

func TestSerializeResource_ExplicitBooleans(t *testing.T) {
	pab := s3.Bucket_PublicAccessBlockConfiguration{
		BlockPublicAcls:       true,
		BlockPublicPolicy:     true,
		IgnorePublicAcls:      true,
		RestrictPublicBuckets: true,
	}

	props, err := serializeResource(pab)
	require.NoError(t, err)

	assert.Equal(t, true, props["BlockPublicAcls"])
	assert.Equal(t, true, props["RestrictPublicBuckets"])
}
