package delivery

import (
	"fmt"
	"sort"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/template"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/intrinsics"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/firehose"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/logs"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/s3"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/secretsmanager"
)

// Logical IDs are fixed across deployments; uniqueness lives in the
// physical names, which carry the random suffix.
const (
	keyID                = "LogDeliveryKey"
	keyAliasID           = "LogDeliveryKeyAlias"
	firehoseRoleID       = "FirehoseDeliveryRole"
	firehosePolicyID     = "FirehoseDeliveryPolicy"
	subscriptionRoleID   = "SubscriptionRole"
	subscriptionPolicyID = "SubscriptionPolicy"
	streamID             = "LogDeliveryStream"
	errorBucketID        = "ErrorBucket"
	errorBucketPolicyID  = "ErrorBucketPolicy"
	secretID             = "EndpointSecret"
	diagnosticsGroupID   = "DiagnosticsLogGroup"
	deliveryLogStreamID  = "DeliveryLogStream"
	backupLogStreamID    = "BackupLogStream"
	subscriptionIDPrefix = "Subscription"
)

// Names of the streams inside the diagnostics log group.
const (
	deliveryLogStreamName = "DestinationDelivery"
	backupLogStreamName   = "BackupDelivery"
)

// Buffering, retry and retention constants for the two destination
// branches. S3 batches large and slow for cheap storage; the HTTP branch
// batches small for latency and backs failures up aggressively.
const (
	s3BufferMiB         = 64
	s3BufferSeconds     = 60
	httpBufferMiB       = 5
	httpBufferSeconds   = 60
	httpRetrySeconds    = 300
	backupBufferMiB     = 10
	backupBufferSeconds = 400

	errorObjectExpiryDays    = 14
	abortMultipartAfterDays  = 7
	diagnosticsRetentionDays = 14
)

// Pipeline is one fully expanded log-delivery deployment: every record
// needed to subscribe the configured log groups to a Firehose delivery
// stream pointed at the configured destination.
type Pipeline struct {
	cfg     Config
	dest    Destination
	names   Names
	records []datastream.Record
	outputs map[string]datastream.Output
}

// New validates cfg, resolves the destination, fixes the name suffix and
// expands the full resource graph. All configuration errors surface here;
// a returned Pipeline always renders.
func New(cfg Config) (*Pipeline, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	dest, err := resolveDestination(cfg)
	if err != nil {
		return nil, err
	}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix, err = NewSuffix()
		if err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		cfg:   cfg,
		dest:  dest,
		names: Names{Base: cfg.Name, Suffix: suffix},
	}
	p.expand()
	return p, nil
}

// expand builds the record set in declaration order: identity first, then
// encryption, storage, diagnostics, credentials, the stream itself, and
// finally the per-group subscription filters.
func (p *Pipeline) expand() {
	tags := p.tagList()

	p.records = append(p.records, p.identityRecords(tags)...)
	p.records = append(p.records, p.encryptionRecords(tags)...)
	p.records = append(p.records, p.storageRecords(tags)...)
	p.records = append(p.records, p.diagnosticsRecords(tags)...)
	p.records = append(p.records, p.secretRecord(tags))
	p.records = append(p.records, p.streamRecord(tags))
	p.records = append(p.records, p.subscriptionRecords()...)

	p.outputs = p.buildOutputs()
}

// Suffix returns the name suffix in effect, generated or pinned.
func (p *Pipeline) Suffix() string {
	return p.names.Suffix
}

// Names returns the physical-name derivations for this pipeline.
func (p *Pipeline) Names() Names {
	return p.names
}

// Destination returns the resolved delivery target.
func (p *Pipeline) Destination() Destination {
	return p.dest
}

// Records returns the expanded records in declaration order.
func (p *Pipeline) Records() []datastream.Record {
	return append([]datastream.Record(nil), p.records...)
}

// Outputs returns the template outputs keyed by output name.
func (p *Pipeline) Outputs() map[string]datastream.Output {
	out := make(map[string]datastream.Output, len(p.outputs))
	for name, o := range p.outputs {
		out[name] = o
	}
	return out
}

// Template serializes the pipeline into a CloudFormation template, with
// references validated and resources ordered by dependency.
func (p *Pipeline) Template() (*datastream.Template, error) {
	builder := template.NewBuilder()
	builder.SetDescription(fmt.Sprintf(
		"Log delivery pipeline %s: CloudWatch Logs to Amazon Data Firehose", p.names.Stream()))

	for _, rec := range p.records {
		if err := builder.Add(rec); err != nil {
			return nil, err
		}
	}
	for name, out := range p.outputs {
		builder.AddOutput(name, out)
	}
	return builder.Build()
}

// tagList converts the configured tag map into the Tags list shape shared
// by every taggable resource, sorted by key so templates stay stable.
func (p *Pipeline) tagList() []any {
	if len(p.cfg.Tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p.cfg.Tags))
	for k := range p.cfg.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make([]any, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, intrinsics.Tag{Key: k, Value: p.cfg.Tags[k]})
	}
	return tags
}

// storageRecords declares the error-capture bucket. The HTTP branch backs
// failed batches up into it; it exists in the S3 branch too, so switching
// destinations never tears down a bucket that may still hold events.
func (p *Pipeline) storageRecords(tags []any) []datastream.Record {
	bucket := s3.Bucket{
		BucketName: p.names.ErrorBucket(),
		BucketEncryption: &s3.Bucket_BucketEncryption{
			ServerSideEncryptionConfiguration: []any{
				s3.Bucket_ServerSideEncryptionRule{
					ServerSideEncryptionByDefault: &s3.Bucket_ServerSideEncryptionByDefault{
						SSEAlgorithm: "AES256",
					},
				},
			},
		},
		LifecycleConfiguration: &s3.Bucket_LifecycleConfiguration{
			Rules: []any{
				s3.Bucket_Rule{
					Id:               "expire-failed-events",
					Status:           "Enabled",
					ExpirationInDays: errorObjectExpiryDays,
					AbortIncompleteMultipartUpload: &s3.Bucket_AbortIncompleteMultipartUpload{
						DaysAfterInitiation: abortMultipartAfterDays,
					},
				},
			},
		},
		PublicAccessBlockConfiguration: &s3.Bucket_PublicAccessBlockConfiguration{
			BlockPublicAcls:       true,
			BlockPublicPolicy:     true,
			IgnorePublicAcls:      true,
			RestrictPublicBuckets: true,
		},
		Tags: tags,
	}

	policy := s3.BucketPolicy{
		Bucket: datastream.Ref{Resource: errorBucketID},
		PolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				intrinsics.PolicyStatement{
					Sid:       "DenyInsecureTransport",
					Effect:    "Deny",
					Principal: intrinsics.AllPrincipal,
					Action:    "s3:*",
					Resource: intrinsics.Any(
						datastream.AttrRef{Resource: errorBucketID, Attribute: "Arn"},
						intrinsics.Join{Delimiter: "", Values: []any{
							datastream.AttrRef{Resource: errorBucketID, Attribute: "Arn"},
							"/*",
						}},
					),
					Condition: intrinsics.Json{
						intrinsics.Bool: intrinsics.Json{"aws:SecureTransport": "false"},
					},
				},
			},
		},
	}

	return []datastream.Record{
		{Name: errorBucketID, Resource: bucket, DeletionPolicy: "Delete"},
		{Name: errorBucketPolicyID, Resource: policy},
	}
}

// diagnosticsRecords declares the log group Firehose reports its own
// delivery results into, with one stream per delivery direction.
func (p *Pipeline) diagnosticsRecords(tags []any) []datastream.Record {
	group := logs.LogGroup{
		LogGroupName:    p.names.DiagnosticsGroup(),
		RetentionInDays: diagnosticsRetentionDays,
		Tags:            tags,
	}
	delivery := logs.LogStream{
		LogGroupName:  datastream.Ref{Resource: diagnosticsGroupID},
		LogStreamName: deliveryLogStreamName,
	}
	backup := logs.LogStream{
		LogGroupName:  datastream.Ref{Resource: diagnosticsGroupID},
		LogStreamName: backupLogStreamName,
	}

	return []datastream.Record{
		{Name: diagnosticsGroupID, Resource: group},
		{Name: deliveryLogStreamID, Resource: delivery},
		{Name: backupLogStreamID, Resource: backup},
	}
}

// secretRecord declares the endpoint credentials secret. Like the error
// bucket it exists in both branches; only the HTTP branch reads it. No
// value is set here: operators store the access key out of band and the
// template never sees it.
func (p *Pipeline) secretRecord(tags []any) datastream.Record {
	secret := secretsmanager.Secret{
		Name:        p.names.Secret(),
		Description: "Access credentials for the log delivery HTTP endpoint; value managed outside the stack",
		KmsKeyId:    datastream.Ref{Resource: keyID},
		Tags:        tags,
	}
	return datastream.Record{Name: secretID, Resource: secret, DeletionPolicy: "Delete"}
}

// streamRecord declares the delivery stream with exactly one destination
// configuration. Stream-level encryption always uses the pipeline's
// customer-managed key.
func (p *Pipeline) streamRecord(tags []any) datastream.Record {
	stream := firehose.DeliveryStream{
		DeliveryStreamName: p.names.Stream(),
		DeliveryStreamType: "DirectPut",
		DeliveryStreamEncryptionConfigurationInput: &firehose.DeliveryStream_DeliveryStreamEncryptionConfigurationInput{
			KeyARN:  datastream.AttrRef{Resource: keyID, Attribute: "Arn"},
			KeyType: "CUSTOMER_MANAGED_CMK",
		},
		Tags: tags,
	}

	// The permissions policy only binds to the role at deploy time, so a
	// property reference cannot order the stream after it; the stream must
	// not start delivering before its role can act.
	dependsOn := []string{firehosePolicyID, deliveryLogStreamID}

	switch dest := p.dest.(type) {
	case S3Destination:
		stream.ExtendedS3DestinationConfiguration = p.s3DestinationConfig(dest)
	case HTTPDestination:
		stream.HttpEndpointDestinationConfiguration = p.httpDestinationConfig(dest)
		dependsOn = append(dependsOn, backupLogStreamID)
	}

	return datastream.Record{Name: streamID, Resource: stream, DependsOn: dependsOn}
}

// s3DestinationConfig shapes the S3 branch: large slow batches, delivered
// objects dated under logs/, failures isolated under errors/ by type.
func (p *Pipeline) s3DestinationConfig(dest S3Destination) *firehose.DeliveryStream_ExtendedS3DestinationConfiguration {
	return &firehose.DeliveryStream_ExtendedS3DestinationConfiguration{
		BucketARN: dest.BucketARN,
		RoleARN:   datastream.AttrRef{Resource: firehoseRoleID, Attribute: "Arn"},
		BufferingHints: &firehose.DeliveryStream_BufferingHints{
			IntervalInSeconds: s3BufferSeconds,
			SizeInMBs:         s3BufferMiB,
		},
		CompressionFormat: dest.CompressionFormat,
		Prefix:            "logs/!{timestamp:yyyy/MM/dd}/",
		ErrorOutputPrefix: "errors/!{firehose:error-output-type}/!{timestamp:yyyy/MM/dd}/",
		DynamicPartitioningConfiguration: &firehose.DeliveryStream_DynamicPartitioningConfiguration{
			Enabled: false,
		},
		CloudWatchLoggingOptions: p.diagnosticsOptions(deliveryLogStreamName),
	}
}

// httpDestinationConfig shapes the HTTP branch: small latency-oriented
// batches, GZIP request bodies, credentials read from Secrets Manager, and
// failed batches backed up to the error bucket.
func (p *Pipeline) httpDestinationConfig(dest HTTPDestination) *firehose.DeliveryStream_HttpEndpointDestinationConfiguration {
	return &firehose.DeliveryStream_HttpEndpointDestinationConfiguration{
		EndpointConfiguration: &firehose.DeliveryStream_HttpEndpointConfiguration{
			Name: p.cfg.Name,
			Url:  dest.EndpointURL,
		},
		BufferingHints: &firehose.DeliveryStream_BufferingHints{
			IntervalInSeconds: httpBufferSeconds,
			SizeInMBs:         httpBufferMiB,
		},
		RequestConfiguration: &firehose.DeliveryStream_HttpEndpointRequestConfiguration{
			ContentEncoding: "GZIP",
		},
		RetryOptions: &firehose.DeliveryStream_RetryOptions{
			DurationInSeconds: httpRetrySeconds,
		},
		RoleARN:      datastream.AttrRef{Resource: firehoseRoleID, Attribute: "Arn"},
		S3BackupMode: "FailedDataOnly",
		S3Configuration: &firehose.DeliveryStream_S3DestinationConfiguration{
			BucketARN: datastream.AttrRef{Resource: errorBucketID, Attribute: "Arn"},
			RoleARN:   datastream.AttrRef{Resource: firehoseRoleID, Attribute: "Arn"},
			BufferingHints: &firehose.DeliveryStream_BufferingHints{
				IntervalInSeconds: backupBufferSeconds,
				SizeInMBs:         backupBufferMiB,
			},
			CompressionFormat:        "GZIP",
			CloudWatchLoggingOptions: p.diagnosticsOptions(backupLogStreamName),
		},
		SecretsManagerConfiguration: &firehose.DeliveryStream_SecretsManagerConfiguration{
			Enabled:   true,
			RoleARN:   datastream.AttrRef{Resource: firehoseRoleID, Attribute: "Arn"},
			SecretARN: datastream.Ref{Resource: secretID},
		},
		CloudWatchLoggingOptions: p.diagnosticsOptions(deliveryLogStreamName),
	}
}

func (p *Pipeline) diagnosticsOptions(streamName string) *firehose.DeliveryStream_CloudWatchLoggingOptions {
	return &firehose.DeliveryStream_CloudWatchLoggingOptions{
		Enabled:       true,
		LogGroupName:  p.names.DiagnosticsGroup(),
		LogStreamName: streamName,
	}
}
