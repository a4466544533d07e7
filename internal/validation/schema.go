package validation

import (
	"fmt"
	"sort"
	"strings"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

// Options configures schema validation.
type Options struct {
	// Strict warns about properties the schema does not know
	Strict bool
}

// Result contains schema validation results.
type Result struct {
	Valid    bool
	Errors   []datastream.SchemaError
	Warnings []datastream.SchemaError
}

// ValidateTemplate validates a CloudFormation template against the schemas
// of the resource types the pipeline emits. Findings are sorted by resource
// then property so output is stable.
func ValidateTemplate(template *datastream.Template, opts Options) (*Result, error) {
	result := &Result{Valid: true}

	for name, resource := range template.Resources {
		errors, warnings := validateResource(name, resource, opts)
		result.Errors = append(result.Errors, errors...)
		result.Warnings = append(result.Warnings, warnings...)
	}

	sortFindings(result.Errors)
	sortFindings(result.Warnings)

	if len(result.Errors) > 0 {
		result.Valid = false
	}

	return result, nil
}

func sortFindings(findings []datastream.SchemaError) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Resource != findings[j].Resource {
			return findings[i].Resource < findings[j].Resource
		}
		return findings[i].Property < findings[j].Property
	})
}

// validateResource validates a single resource.
func validateResource(name string, resource datastream.ResourceDef, opts Options) ([]datastream.SchemaError, []datastream.SchemaError) {
	var errors, warnings []datastream.SchemaError

	if !isValidResourceType(resource.Type) {
		errors = append(errors, datastream.SchemaError{
			Resource: name,
			Property: "Type",
			Message:  fmt.Sprintf("invalid resource type format: %s", resource.Type),
		})
	}

	schema, ok := resourceSchemas[resource.Type]
	if !ok {
		// Unknown types are a warning, not an error: the template may
		// carry resources this validator has no schema for.
		warnings = append(warnings, datastream.SchemaError{
			Resource: name,
			Property: "Type",
			Message:  fmt.Sprintf("unknown resource type: %s (schema not available for validation)", resource.Type),
		})
		return errors, warnings
	}

	for _, required := range schema.Required {
		if _, exists := resource.Properties[required]; !exists {
			errors = append(errors, datastream.SchemaError{
				Resource: name,
				Property: required,
				Message:  fmt.Sprintf("missing required property: %s", required),
			})
		}
	}

	for propName, propValue := range resource.Properties {
		propSchema, ok := schema.Properties[propName]
		if !ok {
			if opts.Strict {
				warnings = append(warnings, datastream.SchemaError{
					Resource: name,
					Property: propName,
					Message:  fmt.Sprintf("unknown property: %s", propName),
				})
			}
			continue
		}

		errors = append(errors, validateProperty(name, propName, propValue, propSchema)...)
	}

	return errors, warnings
}

// isValidResourceType checks if a resource type has valid format.
func isValidResourceType(resourceType string) bool {
	if strings.HasPrefix(resourceType, "Custom::") {
		return true
	}
	parts := strings.Split(resourceType, "::")
	if len(parts) != 3 {
		return false
	}
	return parts[0] == "AWS" || parts[0] == "Alexa"
}

// validateProperty validates a property value against its schema.
func validateProperty(resource, property string, value any, schema PropertySchema) []datastream.SchemaError {
	var errors []datastream.SchemaError

	if !isValidType(value, schema.Type) {
		errors = append(errors, datastream.SchemaError{
			Resource: resource,
			Property: property,
			Message:  fmt.Sprintf("expected type %s", schema.Type),
		})
	}

	if len(schema.AllowedValues) > 0 {
		strVal, ok := value.(string)
		if ok {
			found := false
			for _, allowed := range schema.AllowedValues {
				if strVal == allowed {
					found = true
					break
				}
			}
			if !found {
				errors = append(errors, datastream.SchemaError{
					Resource: resource,
					Property: property,
					Message:  fmt.Sprintf("value %q not in allowed values: %v", strVal, schema.AllowedValues),
				})
			}
		}
	}

	return errors
}

// isValidType checks if a value matches the expected type.
func isValidType(value any, expectedType string) bool {
	// Intrinsic functions resolve at deploy time; accept them for any type
	if m, ok := value.(map[string]any); ok {
		for key := range m {
			if strings.HasPrefix(key, "Fn::") || key == "Ref" {
				return true
			}
		}
	}

	switch expectedType {
	case "String":
		_, ok := value.(string)
		return ok
	case "Integer":
		switch value.(type) {
		case int, int32, int64, float64:
			return true
		}
		return false
	case "Boolean":
		_, ok := value.(bool)
		return ok
	case "List":
		_, ok := value.([]any)
		return ok
	case "Map":
		_, ok := value.(map[string]any)
		return ok
	case "Json":
		return true
	default:
		return true
	}
}

// ResourceSchema defines the schema for a resource type.
type ResourceSchema struct {
	Type       string
	Required   []string
	Properties map[string]PropertySchema
}

// PropertySchema defines the schema for a property.
type PropertySchema struct {
	Type          string
	Required      bool
	AllowedValues []string
}

// resourceSchemas covers every resource type the pipeline emits. Required
// lists and allowed values mirror the CloudFormation resource
// specification for those types.
var resourceSchemas = map[string]ResourceSchema{
	"AWS::KinesisFirehose::DeliveryStream": {
		Type: "AWS::KinesisFirehose::DeliveryStream",
		Properties: map[string]PropertySchema{
			"DeliveryStreamName": {Type: "String"},
			"DeliveryStreamType": {Type: "String", AllowedValues: []string{"DirectPut", "KinesisStreamAsSource", "MSKAsSource", "DatabaseAsSource"}},
			"DeliveryStreamEncryptionConfigurationInput": {Type: "Map"},
			"ExtendedS3DestinationConfiguration":         {Type: "Map"},
			"HttpEndpointDestinationConfiguration":       {Type: "Map"},
			"Tags":                                       {Type: "List"},
		},
	},
	"AWS::KMS::Key": {
		Type: "AWS::KMS::Key",
		Properties: map[string]PropertySchema{
			"Description":         {Type: "String"},
			"Enabled":             {Type: "Boolean"},
			"EnableKeyRotation":   {Type: "Boolean"},
			"KeyPolicy":           {Type: "Json"},
			"KeySpec":             {Type: "String"},
			"KeyUsage":            {Type: "String", AllowedValues: []string{"ENCRYPT_DECRYPT", "SIGN_VERIFY", "GENERATE_VERIFY_MAC", "KEY_AGREEMENT"}},
			"MultiRegion":         {Type: "Boolean"},
			"PendingWindowInDays": {Type: "Integer"},
			"Tags":                {Type: "List"},
		},
	},
	"AWS::KMS::Alias": {
		Type:     "AWS::KMS::Alias",
		Required: []string{"AliasName", "TargetKeyId"},
		Properties: map[string]PropertySchema{
			"AliasName":   {Type: "String", Required: true},
			"TargetKeyId": {Type: "String", Required: true},
		},
	},
	"AWS::IAM::Role": {
		Type:     "AWS::IAM::Role",
		Required: []string{"AssumeRolePolicyDocument"},
		Properties: map[string]PropertySchema{
			"AssumeRolePolicyDocument": {Type: "Json", Required: true},
			"Description":              {Type: "String"},
			"ManagedPolicyArns":        {Type: "List"},
			"MaxSessionDuration":       {Type: "Integer"},
			"Path":                     {Type: "String"},
			"PermissionsBoundary":      {Type: "String"},
			"Policies":                 {Type: "List"},
			"RoleName":                 {Type: "String"},
			"Tags":                     {Type: "List"},
		},
	},
	"AWS::IAM::ManagedPolicy": {
		Type:     "AWS::IAM::ManagedPolicy",
		Required: []string{"PolicyDocument"},
		Properties: map[string]PropertySchema{
			"Description":       {Type: "String"},
			"Groups":            {Type: "List"},
			"ManagedPolicyName": {Type: "String"},
			"Path":              {Type: "String"},
			"PolicyDocument":    {Type: "Json", Required: true},
			"Roles":             {Type: "List"},
			"Users":             {Type: "List"},
		},
	},
	"AWS::Logs::LogGroup": {
		Type: "AWS::Logs::LogGroup",
		Properties: map[string]PropertySchema{
			"KmsKeyId":        {Type: "String"},
			"LogGroupClass":   {Type: "String", AllowedValues: []string{"STANDARD", "INFREQUENT_ACCESS"}},
			"LogGroupName":    {Type: "String"},
			"RetentionInDays": {Type: "Integer"},
			"Tags":            {Type: "List"},
		},
	},
	"AWS::Logs::LogStream": {
		Type:     "AWS::Logs::LogStream",
		Required: []string{"LogGroupName"},
		Properties: map[string]PropertySchema{
			"LogGroupName":  {Type: "String", Required: true},
			"LogStreamName": {Type: "String"},
		},
	},
	"AWS::Logs::SubscriptionFilter": {
		Type:     "AWS::Logs::SubscriptionFilter",
		Required: []string{"DestinationArn", "FilterPattern", "LogGroupName"},
		Properties: map[string]PropertySchema{
			"DestinationArn": {Type: "String", Required: true},
			"Distribution":   {Type: "String", AllowedValues: []string{"Random", "ByLogStream"}},
			"FilterName":     {Type: "String"},
			"FilterPattern":  {Type: "String", Required: true},
			"LogGroupName":   {Type: "String", Required: true},
			"RoleArn":        {Type: "String"},
		},
	},
	"AWS::S3::Bucket": {
		Type: "AWS::S3::Bucket",
		Properties: map[string]PropertySchema{
			"AccessControl":                  {Type: "String"},
			"BucketEncryption":               {Type: "Map"},
			"BucketName":                     {Type: "String"},
			"LifecycleConfiguration":         {Type: "Map"},
			"ObjectLockEnabled":              {Type: "Boolean"},
			"PublicAccessBlockConfiguration": {Type: "Map"},
			"Tags":                           {Type: "List"},
			"VersioningConfiguration":        {Type: "Map"},
		},
	},
	"AWS::S3::BucketPolicy": {
		Type:     "AWS::S3::BucketPolicy",
		Required: []string{"Bucket", "PolicyDocument"},
		Properties: map[string]PropertySchema{
			"Bucket":         {Type: "String", Required: true},
			"PolicyDocument": {Type: "Json", Required: true},
		},
	},
	"AWS::SecretsManager::Secret": {
		Type: "AWS::SecretsManager::Secret",
		Properties: map[string]PropertySchema{
			"Description":          {Type: "String"},
			"GenerateSecretString": {Type: "Map"},
			"KmsKeyId":             {Type: "String"},
			"Name":                 {Type: "String"},
			"SecretString":         {Type: "String"},
			"Tags":                 {Type: "List"},
		},
	},
}
