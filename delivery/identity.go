package delivery

import (
	"fmt"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/intrinsics"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/iam"
)

// identityRecords declares the two execution identities and their managed
// policies:
//
//   - the delivery role, assumed by the Firehose service to write to the
//     destination, the error bucket and the diagnostics log group, to read
//     the endpoint secret, and to invoke its own stream
//   - the subscription role, assumed by CloudWatch Logs to put subscribed
//     events onto the stream
//
// Both trust policies are scoped to this account so a stream in another
// account cannot assume them.
func (p *Pipeline) identityRecords(tags []any) []datastream.Record {
	return []datastream.Record{
		p.firehoseRoleRecord(tags),
		p.firehosePolicyRecord(),
		p.subscriptionRoleRecord(tags),
		p.subscriptionPolicyRecord(),
	}
}

func (p *Pipeline) firehoseRoleRecord(tags []any) datastream.Record {
	role := iam.Role{
		RoleName: p.names.FirehoseRole(),
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				intrinsics.PolicyStatement{
					Effect:    "Allow",
					Principal: intrinsics.ServicePrincipal{"firehose.amazonaws.com"},
					Action:    "sts:AssumeRole",
					Condition: intrinsics.Json{
						intrinsics.StringEquals: intrinsics.Json{
							"sts:ExternalId": intrinsics.AWS_ACCOUNT_ID,
						},
					},
				},
			},
		},
		Tags: tags,
	}
	return datastream.Record{Name: firehoseRoleID, Resource: role}
}

// firehosePolicyRecord grants the delivery role what delivery needs in
// either branch; only the destination bucket statements vary. The stream
// grant uses the synthesized name rather than a reference because the
// stream itself waits on this policy.
func (p *Pipeline) firehosePolicyRecord() datastream.Record {
	errorBucketARN := datastream.AttrRef{Resource: errorBucketID, Attribute: "Arn"}
	s3Resources := intrinsics.Any(
		errorBucketARN,
		intrinsics.Join{Delimiter: "", Values: []any{errorBucketARN, "/*"}},
	)
	if dest, ok := p.dest.(S3Destination); ok {
		s3Resources = append(s3Resources, dest.BucketARN, dest.BucketARN+"/*")
	}

	statements := []any{
		intrinsics.PolicyStatement{
			Sid:    "WriteDeliveredObjects",
			Effect: "Allow",
			Action: intrinsics.Any(
				"s3:AbortMultipartUpload",
				"s3:GetBucketLocation",
				"s3:GetObject",
				"s3:ListBucket",
				"s3:ListBucketMultipartUploads",
				"s3:PutObject",
			),
			Resource: s3Resources,
		},
		intrinsics.PolicyStatement{
			Sid:    "UseStreamKey",
			Effect: "Allow",
			Action: intrinsics.Any(
				"kms:Decrypt",
				"kms:GenerateDataKey*",
			),
			Resource: datastream.AttrRef{Resource: keyID, Attribute: "Arn"},
		},
		intrinsics.PolicyStatement{
			Sid:    "WriteDeliveryDiagnostics",
			Effect: "Allow",
			Action: "logs:PutLogEvents",
			Resource: intrinsics.Sub{String: fmt.Sprintf(
				"arn:aws:logs:${AWS::Region}:${AWS::AccountId}:log-group:%s:log-stream:*",
				p.names.DiagnosticsGroup())},
		},
		intrinsics.PolicyStatement{
			Sid:      "ReadEndpointCredentials",
			Effect:   "Allow",
			Action:   "secretsmanager:GetSecretValue",
			Resource: datastream.Ref{Resource: secretID},
		},
		intrinsics.PolicyStatement{
			Sid:    "InvokeDeliveryStream",
			Effect: "Allow",
			Action: intrinsics.Any(
				"firehose:DescribeDeliveryStream",
				"firehose:PutRecord",
				"firehose:PutRecordBatch",
			),
			Resource: intrinsics.Sub{String: fmt.Sprintf(
				"arn:aws:firehose:${AWS::Region}:${AWS::AccountId}:deliverystream/%s",
				p.names.Stream())},
		},
	}

	policy := iam.ManagedPolicy{
		ManagedPolicyName: p.names.FirehoseRole(),
		Description:       "Delivery permissions for the log delivery stream",
		PolicyDocument: intrinsics.PolicyDocument{
			Version:   "2012-10-17",
			Statement: statements,
		},
		Roles: intrinsics.Any(datastream.Ref{Resource: firehoseRoleID}),
	}
	return datastream.Record{Name: firehosePolicyID, Resource: policy}
}

func (p *Pipeline) subscriptionRoleRecord(tags []any) datastream.Record {
	role := iam.Role{
		RoleName: p.names.SubscriptionRole(),
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				intrinsics.PolicyStatement{
					Effect: "Allow",
					Principal: intrinsics.ServicePrincipal{
						intrinsics.Sub{String: "logs.${AWS::Region}.amazonaws.com"},
					},
					Action: "sts:AssumeRole",
					Condition: intrinsics.Json{
						intrinsics.StringLike: intrinsics.Json{
							"aws:SourceArn": intrinsics.Sub{String: "arn:aws:logs:${AWS::Region}:${AWS::AccountId}:*"},
						},
					},
				},
			},
		},
		Tags: tags,
	}
	return datastream.Record{Name: subscriptionRoleID, Resource: role}
}

// subscriptionPolicyRecord lets CloudWatch Logs put subscribed events onto
// this stream and nothing else.
func (p *Pipeline) subscriptionPolicyRecord() datastream.Record {
	policy := iam.ManagedPolicy{
		ManagedPolicyName: p.names.SubscriptionRole(),
		Description:       "Lets CloudWatch Logs forward subscribed events to the log delivery stream",
		PolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				intrinsics.PolicyStatement{
					Sid:    "PutSubscribedEvents",
					Effect: "Allow",
					Action: intrinsics.Any(
						"firehose:PutRecord",
						"firehose:PutRecordBatch",
					),
					Resource: datastream.AttrRef{Resource: streamID, Attribute: "Arn"},
				},
			},
		},
		Roles: intrinsics.Any(datastream.Ref{Resource: subscriptionRoleID}),
	}
	return datastream.Record{Name: subscriptionPolicyID, Resource: policy}
}
