package firehose

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

// TestResourceType verifies DeliveryStream returns the correct CloudFormation type.
func TestResourceType(t *testing.T) {
	assert.Equal(t, "AWS::KinesisFirehose::DeliveryStream", DeliveryStream{}.ResourceType())
}

// TestExtendedS3Serialization tests the S3 destination shape: buffering,
// prefixes, compression, and stream encryption.
func TestExtendedS3Serialization(t *testing.T) {
	stream := DeliveryStream{
		DeliveryStreamName: "audit-pipeline-4f2a9c8d1e6b3a7f",
		DeliveryStreamType: "DirectPut",
		DeliveryStreamEncryptionConfigurationInput: &DeliveryStream_DeliveryStreamEncryptionConfigurationInput{
			KeyType: "CUSTOMER_MANAGED_CMK",
			KeyARN:  datastream.AttrRef{Resource: "LogDeliveryKey", Attribute: "Arn"},
		},
		ExtendedS3DestinationConfiguration: &DeliveryStream_ExtendedS3DestinationConfiguration{
			BucketARN: "arn:aws:s3:::audit-archive",
			RoleARN:   datastream.AttrRef{Resource: "FirehoseDeliveryRole", Attribute: "Arn"},
			BufferingHints: &DeliveryStream_BufferingHints{
				IntervalInSeconds: 60,
				SizeInMBs:         64,
			},
			CompressionFormat: "UNCOMPRESSED",
			Prefix:            "logs/!{timestamp:yyyy/MM/dd}/",
			ErrorOutputPrefix: "errors/!{firehose:error-output-type}/!{timestamp:yyyy/MM/dd}/",
		},
	}

	data, err := json.Marshal(stream)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "DirectPut", parsed["DeliveryStreamType"])

	sse := parsed["DeliveryStreamEncryptionConfigurationInput"].(map[string]any)
	assert.Equal(t, "CUSTOMER_MANAGED_CMK", sse["KeyType"])
	assert.Equal(t, []any{"LogDeliveryKey", "Arn"}, sse["KeyARN"].(map[string]any)["Fn::GetAtt"])

	s3 := parsed["ExtendedS3DestinationConfiguration"].(map[string]any)
	assert.Equal(t, "arn:aws:s3:::audit-archive", s3["BucketARN"])

	hints := s3["BufferingHints"].(map[string]any)
	assert.Equal(t, float64(60), hints["IntervalInSeconds"])
	assert.Equal(t, float64(64), hints["SizeInMBs"])

	assert.Equal(t, "logs/!{timestamp:yyyy/MM/dd}/", s3["Prefix"])
	assert.Equal(t, "errors/!{firehose:error-output-type}/!{timestamp:yyyy/MM/dd}/", s3["ErrorOutputPrefix"])

	assert.NotContains(t, parsed, "HttpEndpointDestinationConfiguration")
}

// TestHttpEndpointSerialization tests the HTTP destination shape: endpoint,
// retries, GZIP encoding, secret-based auth, and S3 backup.
func TestHttpEndpointSerialization(t *testing.T) {
	stream := DeliveryStream{
		DeliveryStreamName: "audit-pipeline-4f2a9c8d1e6b3a7f",
		DeliveryStreamType: "DirectPut",
		HttpEndpointDestinationConfiguration: &DeliveryStream_HttpEndpointDestinationConfiguration{
			EndpointConfiguration: &DeliveryStream_HttpEndpointConfiguration{
				Url: "https://intake.example.com/v1/logs",
			},
			BufferingHints: &DeliveryStream_BufferingHints{
				IntervalInSeconds: 60,
				SizeInMBs:         5,
			},
			RequestConfiguration: &DeliveryStream_HttpEndpointRequestConfiguration{
				ContentEncoding: "GZIP",
			},
			RetryOptions: &DeliveryStream_RetryOptions{
				DurationInSeconds: 300,
			},
			RoleARN:      datastream.AttrRef{Resource: "FirehoseDeliveryRole", Attribute: "Arn"},
			S3BackupMode: "FailedDataOnly",
			S3Configuration: &DeliveryStream_S3DestinationConfiguration{
				BucketARN: datastream.AttrRef{Resource: "ErrorBucket", Attribute: "Arn"},
				RoleARN:   datastream.AttrRef{Resource: "FirehoseDeliveryRole", Attribute: "Arn"},
				BufferingHints: &DeliveryStream_BufferingHints{
					IntervalInSeconds: 400,
					SizeInMBs:         10,
				},
				CompressionFormat: "GZIP",
			},
			SecretsManagerConfiguration: &DeliveryStream_SecretsManagerConfiguration{
				Enabled:   true,
				SecretARN: datastream.Ref{Resource: "EndpointSecret"},
				RoleARN:   datastream.AttrRef{Resource: "FirehoseDeliveryRole", Attribute: "Arn"},
			},
		},
	}

	data, err := json.Marshal(stream)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	http := parsed["HttpEndpointDestinationConfiguration"].(map[string]any)

	endpoint := http["EndpointConfiguration"].(map[string]any)
	assert.Equal(t, "https://intake.example.com/v1/logs", endpoint["Url"])
	assert.NotContains(t, endpoint, "AccessKey")

	request := http["RequestConfiguration"].(map[string]any)
	assert.Equal(t, "GZIP", request["ContentEncoding"])

	retry := http["RetryOptions"].(map[string]any)
	assert.Equal(t, float64(300), retry["DurationInSeconds"])

	assert.Equal(t, "FailedDataOnly", http["S3BackupMode"])

	backup := http["S3Configuration"].(map[string]any)
	assert.Equal(t, "GZIP", backup["CompressionFormat"])
	backupHints := backup["BufferingHints"].(map[string]any)
	assert.Equal(t, float64(400), backupHints["IntervalInSeconds"])
	assert.Equal(t, float64(10), backupHints["SizeInMBs"])

	secrets := http["SecretsManagerConfiguration"].(map[string]any)
	assert.Equal(t, true, secrets["Enabled"])
	assert.Equal(t, "EndpointSecret", secrets["SecretARN"].(map[string]any)["Ref"])

	assert.NotContains(t, parsed, "ExtendedS3DestinationConfiguration")
}

// TestDeliveryStreamOmitsUnsetFields tests that unset fields are excluded from JSON.
func TestDeliveryStreamOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(DeliveryStream{DeliveryStreamName: "minimal"})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Len(t, parsed, 1)
	assert.NotContains(t, parsed, "DeliveryStreamEncryptionConfigurationInput")
	assert.NotContains(t, parsed, "Tags")
}
