// Package s3 provides CloudFormation resource types for Amazon S3.
package s3

// Bucket represents an AWS::S3::Bucket resource.
type Bucket struct {
	// AccessControl is a canned ACL for the bucket.
	AccessControl any `json:"AccessControl,omitempty"`

	// BucketEncryption configures default server-side encryption.
	BucketEncryption *Bucket_BucketEncryption `json:"BucketEncryption,omitempty"`

	// BucketName is the physical bucket name. Must be globally unique.
	BucketName any `json:"BucketName,omitempty"`

	// LifecycleConfiguration controls object expiration and transitions.
	LifecycleConfiguration *Bucket_LifecycleConfiguration `json:"LifecycleConfiguration,omitempty"`

	// ObjectLockEnabled places the bucket in object-lock mode at creation.
	ObjectLockEnabled any `json:"ObjectLockEnabled,omitempty"`

	// PublicAccessBlockConfiguration blocks public ACLs and policies.
	PublicAccessBlockConfiguration *Bucket_PublicAccessBlockConfiguration `json:"PublicAccessBlockConfiguration,omitempty"`

	// Tags are key-value pairs attached to the bucket.
	Tags []any `json:"Tags,omitempty"`

	// VersioningConfiguration enables object versioning.
	VersioningConfiguration *Bucket_VersioningConfiguration `json:"VersioningConfiguration,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (Bucket) ResourceType() string {
	return "AWS::S3::Bucket"
}

// Bucket_BucketEncryption represents the BucketEncryption property type.
type Bucket_BucketEncryption struct {
	// ServerSideEncryptionConfiguration lists the encryption rules.
	ServerSideEncryptionConfiguration []any `json:"ServerSideEncryptionConfiguration,omitempty"`
}

// Bucket_ServerSideEncryptionRule represents one server-side encryption rule.
type Bucket_ServerSideEncryptionRule struct {
	// BucketKeyEnabled uses an S3 Bucket Key to reduce KMS request costs.
	BucketKeyEnabled any `json:"BucketKeyEnabled,omitempty"`

	// ServerSideEncryptionByDefault is the default encryption applied to new objects.
	ServerSideEncryptionByDefault *Bucket_ServerSideEncryptionByDefault `json:"ServerSideEncryptionByDefault,omitempty"`
}

// Bucket_ServerSideEncryptionByDefault selects the default encryption algorithm.
type Bucket_ServerSideEncryptionByDefault struct {
	// KMSMasterKeyID is the KMS key to use when SSEAlgorithm is aws:kms.
	KMSMasterKeyID any `json:"KMSMasterKeyID,omitempty"`

	// SSEAlgorithm is AES256 or aws:kms.
	SSEAlgorithm any `json:"SSEAlgorithm,omitempty"`
}

// Bucket_LifecycleConfiguration represents the LifecycleConfiguration property type.
type Bucket_LifecycleConfiguration struct {
	// Rules lists the lifecycle rules.
	Rules []any `json:"Rules,omitempty"`
}

// Bucket_Rule represents one lifecycle rule.
type Bucket_Rule struct {
	// AbortIncompleteMultipartUpload stops incomplete multipart uploads after a deadline.
	AbortIncompleteMultipartUpload *Bucket_AbortIncompleteMultipartUpload `json:"AbortIncompleteMultipartUpload,omitempty"`

	// ExpirationInDays deletes objects this many days after creation.
	ExpirationInDays any `json:"ExpirationInDays,omitempty"`

	// Id names the rule.
	Id any `json:"Id,omitempty"`

	// Prefix limits the rule to keys beginning with this prefix.
	Prefix any `json:"Prefix,omitempty"`

	// Status is Enabled or Disabled.
	Status any `json:"Status,omitempty"`
}

// Bucket_AbortIncompleteMultipartUpload sets the multipart-upload cleanup deadline.
type Bucket_AbortIncompleteMultipartUpload struct {
	// DaysAfterInitiation is the number of days before an incomplete upload is aborted.
	DaysAfterInitiation any `json:"DaysAfterInitiation,omitempty"`
}

// Bucket_PublicAccessBlockConfiguration represents the PublicAccessBlockConfiguration property type.
type Bucket_PublicAccessBlockConfiguration struct {
	BlockPublicAcls       any `json:"BlockPublicAcls,omitempty"`
	BlockPublicPolicy     any `json:"BlockPublicPolicy,omitempty"`
	IgnorePublicAcls      any `json:"IgnorePublicAcls,omitempty"`
	RestrictPublicBuckets any `json:"RestrictPublicBuckets,omitempty"`
}

// Bucket_VersioningConfiguration represents the VersioningConfiguration property type.
type Bucket_VersioningConfiguration struct {
	// Status is Enabled or Suspended.
	Status any `json:"Status,omitempty"`
}
