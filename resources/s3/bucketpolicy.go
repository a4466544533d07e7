package s3

// BucketPolicy represents an AWS::S3::BucketPolicy resource.
type BucketPolicy struct {
	// Bucket is the name of the bucket the policy applies to.
	Bucket any `json:"Bucket,omitempty"`

	// PolicyDocument is the resource policy in IAM policy document form.
	PolicyDocument any `json:"PolicyDocument,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (BucketPolicy) ResourceType() string {
	return "AWS::S3::BucketPolicy"
}
