// Package firehose provides CloudFormation resource types for Amazon Data Firehose.
package firehose

// DeliveryStream represents an AWS::KinesisFirehose::DeliveryStream resource.
//
// Exactly one destination configuration may be set. The two destinations this
// package models are extended S3 and generic HTTP endpoint.
type DeliveryStream struct {
	// DeliveryStreamEncryptionConfigurationInput enables server-side
	// encryption for data at rest in the stream.
	DeliveryStreamEncryptionConfigurationInput *DeliveryStream_DeliveryStreamEncryptionConfigurationInput `json:"DeliveryStreamEncryptionConfigurationInput,omitempty"`

	// DeliveryStreamName is the physical stream name. Maximum 64 characters.
	DeliveryStreamName any `json:"DeliveryStreamName,omitempty"`

	// DeliveryStreamType is DirectPut or KinesisStreamAsSource.
	DeliveryStreamType any `json:"DeliveryStreamType,omitempty"`

	// ExtendedS3DestinationConfiguration delivers to an S3 bucket.
	ExtendedS3DestinationConfiguration *DeliveryStream_ExtendedS3DestinationConfiguration `json:"ExtendedS3DestinationConfiguration,omitempty"`

	// HttpEndpointDestinationConfiguration delivers to an HTTP endpoint.
	HttpEndpointDestinationConfiguration *DeliveryStream_HttpEndpointDestinationConfiguration `json:"HttpEndpointDestinationConfiguration,omitempty"`

	// Tags are key-value pairs attached to the stream.
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (DeliveryStream) ResourceType() string {
	return "AWS::KinesisFirehose::DeliveryStream"
}

// DeliveryStream_BufferingHints controls how much data accumulates before delivery.
// Firehose delivers when either threshold is reached.
type DeliveryStream_BufferingHints struct {
	// IntervalInSeconds is the buffering window, between 0 and 900.
	IntervalInSeconds any `json:"IntervalInSeconds,omitempty"`

	// SizeInMBs is the buffer size, between 1 and 128.
	SizeInMBs any `json:"SizeInMBs,omitempty"`
}

// DeliveryStream_CloudWatchLoggingOptions routes delivery diagnostics to a
// CloudWatch Logs stream.
type DeliveryStream_CloudWatchLoggingOptions struct {
	// Enabled turns diagnostic logging on.
	Enabled any `json:"Enabled,omitempty"`

	// LogGroupName is the diagnostics log group.
	LogGroupName any `json:"LogGroupName,omitempty"`

	// LogStreamName is the stream within the diagnostics group.
	LogStreamName any `json:"LogStreamName,omitempty"`
}

// DeliveryStream_DeliveryStreamEncryptionConfigurationInput selects the key
// used for server-side encryption of the stream.
type DeliveryStream_DeliveryStreamEncryptionConfigurationInput struct {
	// KeyARN is the customer-managed key ARN. Required when KeyType is
	// CUSTOMER_MANAGED_CMK.
	KeyARN any `json:"KeyARN,omitempty"`

	// KeyType is AWS_OWNED_CMK or CUSTOMER_MANAGED_CMK.
	KeyType any `json:"KeyType,omitempty"`
}

// DeliveryStream_DynamicPartitioningConfiguration enables partitioning of
// delivered data by keys extracted from the records.
type DeliveryStream_DynamicPartitioningConfiguration struct {
	// Enabled turns dynamic partitioning on.
	Enabled any `json:"Enabled,omitempty"`

	// RetryOptions controls retry behavior for partition delivery.
	RetryOptions *DeliveryStream_RetryOptions `json:"RetryOptions,omitempty"`
}

// DeliveryStream_EncryptionConfiguration selects the encryption applied to
// objects written to S3.
type DeliveryStream_EncryptionConfiguration struct {
	// KMSEncryptionConfig encrypts delivered objects with a KMS key.
	KMSEncryptionConfig *DeliveryStream_KMSEncryptionConfig `json:"KMSEncryptionConfig,omitempty"`

	// NoEncryptionConfig is the literal "NoEncryption" when disabled.
	NoEncryptionConfig any `json:"NoEncryptionConfig,omitempty"`
}

// DeliveryStream_KMSEncryptionConfig names the KMS key for S3 object encryption.
type DeliveryStream_KMSEncryptionConfig struct {
	// AWSKMSKeyARN is the ARN of the encryption key.
	AWSKMSKeyARN any `json:"AWSKMSKeyARN,omitempty"`
}

// DeliveryStream_ExtendedS3DestinationConfiguration delivers the stream to an
// S3 bucket with prefix templating and error isolation.
type DeliveryStream_ExtendedS3DestinationConfiguration struct {
	// BucketARN is the destination bucket.
	BucketARN any `json:"BucketARN,omitempty"`

	// BufferingHints controls batch size and flush interval.
	BufferingHints *DeliveryStream_BufferingHints `json:"BufferingHints,omitempty"`

	// CloudWatchLoggingOptions routes delivery diagnostics.
	CloudWatchLoggingOptions *DeliveryStream_CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`

	// CompressionFormat is UNCOMPRESSED, GZIP, ZIP, Snappy, or HADOOP_SNAPPY.
	CompressionFormat any `json:"CompressionFormat,omitempty"`

	// DynamicPartitioningConfiguration partitions objects by record keys.
	DynamicPartitioningConfiguration *DeliveryStream_DynamicPartitioningConfiguration `json:"DynamicPartitioningConfiguration,omitempty"`

	// EncryptionConfiguration encrypts delivered objects.
	EncryptionConfiguration *DeliveryStream_EncryptionConfiguration `json:"EncryptionConfiguration,omitempty"`

	// ErrorOutputPrefix is the key prefix for records that failed delivery.
	// Supports !{firehose:error-output-type} and !{timestamp:...} directives.
	ErrorOutputPrefix any `json:"ErrorOutputPrefix,omitempty"`

	// Prefix is the key prefix for delivered objects. Supports
	// !{timestamp:...} directives.
	Prefix any `json:"Prefix,omitempty"`

	// RoleARN is the IAM role Firehose assumes to write to the bucket.
	RoleARN any `json:"RoleARN,omitempty"`

	// S3BackupConfiguration backs up source records to a second bucket.
	S3BackupConfiguration *DeliveryStream_S3DestinationConfiguration `json:"S3BackupConfiguration,omitempty"`

	// S3BackupMode is Disabled or Enabled.
	S3BackupMode any `json:"S3BackupMode,omitempty"`
}

// DeliveryStream_HttpEndpointConfiguration identifies the HTTP endpoint.
type DeliveryStream_HttpEndpointConfiguration struct {
	// AccessKey authenticates Firehose to the endpoint. Prefer
	// SecretsManagerConfiguration over embedding the key here.
	AccessKey any `json:"AccessKey,omitempty"`

	// Name is a display name for the endpoint.
	Name any `json:"Name,omitempty"`

	// Url is the endpoint URL. Must be HTTPS.
	Url any `json:"Url,omitempty"`
}

// DeliveryStream_HttpEndpointDestinationConfiguration delivers the stream to
// an HTTP endpoint with S3 backup for failed batches.
type DeliveryStream_HttpEndpointDestinationConfiguration struct {
	// BufferingHints controls batch size and flush interval.
	BufferingHints *DeliveryStream_BufferingHints `json:"BufferingHints,omitempty"`

	// CloudWatchLoggingOptions routes delivery diagnostics.
	CloudWatchLoggingOptions *DeliveryStream_CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`

	// EndpointConfiguration identifies the endpoint.
	EndpointConfiguration *DeliveryStream_HttpEndpointConfiguration `json:"EndpointConfiguration,omitempty"`

	// RequestConfiguration shapes the delivery request.
	RequestConfiguration *DeliveryStream_HttpEndpointRequestConfiguration `json:"RequestConfiguration,omitempty"`

	// RetryOptions controls how long failed deliveries are retried.
	RetryOptions *DeliveryStream_RetryOptions `json:"RetryOptions,omitempty"`

	// RoleARN is the IAM role Firehose assumes for S3 backup and KMS access.
	RoleARN any `json:"RoleARN,omitempty"`

	// S3BackupMode is FailedDataOnly or AllData.
	S3BackupMode any `json:"S3BackupMode,omitempty"`

	// S3Configuration is the backup bucket for undeliverable batches.
	S3Configuration *DeliveryStream_S3DestinationConfiguration `json:"S3Configuration,omitempty"`

	// SecretsManagerConfiguration reads endpoint credentials from Secrets Manager.
	SecretsManagerConfiguration *DeliveryStream_SecretsManagerConfiguration `json:"SecretsManagerConfiguration,omitempty"`
}

// DeliveryStream_HttpEndpointRequestConfiguration shapes the HTTP delivery request.
type DeliveryStream_HttpEndpointRequestConfiguration struct {
	// CommonAttributes are key-value pairs sent with every request.
	CommonAttributes []any `json:"CommonAttributes,omitempty"`

	// ContentEncoding is NONE or GZIP.
	ContentEncoding any `json:"ContentEncoding,omitempty"`
}

// DeliveryStream_HttpEndpointCommonAttribute is one key-value pair sent with
// every HTTP delivery request.
type DeliveryStream_HttpEndpointCommonAttribute struct {
	AttributeName  any `json:"AttributeName,omitempty"`
	AttributeValue any `json:"AttributeValue,omitempty"`
}

// DeliveryStream_RetryOptions bounds the retry window for failed deliveries.
type DeliveryStream_RetryOptions struct {
	// DurationInSeconds is the total retry window, between 0 and 7200.
	DurationInSeconds any `json:"DurationInSeconds,omitempty"`
}

// DeliveryStream_S3DestinationConfiguration is the plain S3 destination used
// for backups within other destination configurations.
type DeliveryStream_S3DestinationConfiguration struct {
	// BucketARN is the backup bucket.
	BucketARN any `json:"BucketARN,omitempty"`

	// BufferingHints controls batch size and flush interval.
	BufferingHints *DeliveryStream_BufferingHints `json:"BufferingHints,omitempty"`

	// CloudWatchLoggingOptions routes backup diagnostics.
	CloudWatchLoggingOptions *DeliveryStream_CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`

	// CompressionFormat is UNCOMPRESSED, GZIP, ZIP, Snappy, or HADOOP_SNAPPY.
	CompressionFormat any `json:"CompressionFormat,omitempty"`

	// EncryptionConfiguration encrypts backed-up objects.
	EncryptionConfiguration *DeliveryStream_EncryptionConfiguration `json:"EncryptionConfiguration,omitempty"`

	// ErrorOutputPrefix is the key prefix for failed records.
	ErrorOutputPrefix any `json:"ErrorOutputPrefix,omitempty"`

	// Prefix is the key prefix for backed-up objects.
	Prefix any `json:"Prefix,omitempty"`

	// RoleARN is the IAM role Firehose assumes to write to the bucket.
	RoleARN any `json:"RoleARN,omitempty"`
}

// DeliveryStream_SecretsManagerConfiguration reads delivery credentials from
// Secrets Manager instead of embedding them in the template.
type DeliveryStream_SecretsManagerConfiguration struct {
	// Enabled turns secret-based authentication on.
	Enabled any `json:"Enabled,omitempty"`

	// RoleARN is the role Firehose assumes to read the secret.
	RoleARN any `json:"RoleARN,omitempty"`

	// SecretARN is the secret holding the endpoint credentials.
	SecretARN any `json:"SecretARN,omitempty"`
}
