package delivery

import (
	"fmt"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/intrinsics"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/kms"
)

// encryptionRecords declares the customer-managed key that encrypts the
// delivery stream at rest and the endpoint secret, plus its readable alias.
//
// The key policy grants the account root full control, so the key never
// becomes unmanageable, and grants the delivery role the operations
// Firehose needs for stream-level encryption.
func (p *Pipeline) encryptionRecords(tags []any) []datastream.Record {
	key := kms.Key{
		Description:         fmt.Sprintf("Encrypts the %s delivery stream and its endpoint credentials", p.names.Stream()),
		PendingWindowInDays: 7,
		KeyPolicy: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				intrinsics.PolicyStatement{
					Sid:    "EnableRootAccess",
					Effect: "Allow",
					Principal: intrinsics.AWSPrincipal{
						intrinsics.Sub{String: "arn:aws:iam::${AWS::AccountId}:root"},
					},
					Action:   "kms:*",
					Resource: "*",
				},
				intrinsics.PolicyStatement{
					Sid:    "AllowFirehoseUse",
					Effect: "Allow",
					Principal: intrinsics.AWSPrincipal{
						datastream.AttrRef{Resource: firehoseRoleID, Attribute: "Arn"},
					},
					Action: intrinsics.Any(
						"kms:Encrypt",
						"kms:Decrypt",
						"kms:ReEncrypt*",
						"kms:GenerateDataKey*",
						"kms:DescribeKey",
					),
					Resource: "*",
				},
			},
		},
		Tags: tags,
	}

	alias := kms.Alias{
		AliasName:   p.names.KeyAlias(),
		TargetKeyId: datastream.Ref{Resource: keyID},
	}

	return []datastream.Record{
		{Name: keyID, Resource: key},
		{Name: keyAliasID, Resource: alias},
	}
}
