// Package intrinsics provides the CloudFormation intrinsic functions the
// log-delivery pipeline uses.
//
// This package re-exports the core intrinsic types from
// cloudformation-schema-go and adds IAM policy-specific types.
//
// Core intrinsic functions:
//
//	Ref{LogicalName: "ErrorBucket"} → {"Ref": "ErrorBucket"}
//	Sub{String: "arn:aws:logs:${AWS::Region}:${AWS::AccountId}:*"} → {"Fn::Sub": ...}
//	Join{Delimiter: "", Values: []any{bucketARN, "/*"}} → {"Fn::Join": ["", [...]]}
//
// Pseudo-parameters:
//
//	AWS_REGION, AWS_ACCOUNT_ID, AWS_PARTITION, etc.
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

// Re-export core intrinsic types from the shared package.
type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// SubWithMap is Fn::Sub with a variable map.
	SubWithMap = intrinsics.SubWithMap

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// ImportValue represents a CloudFormation Fn::ImportValue intrinsic function.
	ImportValue = intrinsics.ImportValue

	// Tag represents a CloudFormation resource tag.
	Tag = intrinsics.Tag
)
