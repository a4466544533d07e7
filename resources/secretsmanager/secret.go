// Package secretsmanager provides CloudFormation resource types for AWS Secrets Manager.
package secretsmanager

// Secret represents an AWS::SecretsManager::Secret resource.
type Secret struct {
	// Description describes the secret.
	Description any `json:"Description,omitempty"`

	// GenerateSecretString asks Secrets Manager to generate the value.
	GenerateSecretString *Secret_GenerateSecretString `json:"GenerateSecretString,omitempty"`

	// KmsKeyId is the KMS key that encrypts the secret value.
	KmsKeyId any `json:"KmsKeyId,omitempty"`

	// Name is the physical secret name.
	Name any `json:"Name,omitempty"`

	// SecretString is the literal secret value. Leave unset when the value
	// is populated out of band.
	SecretString any `json:"SecretString,omitempty"`

	// Tags are key-value pairs attached to the secret.
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation resource type.
func (Secret) ResourceType() string {
	return "AWS::SecretsManager::Secret"
}

// Secret_GenerateSecretString represents the GenerateSecretString property type.
type Secret_GenerateSecretString struct {
	// ExcludeCharacters lists characters to exclude from the generated value.
	ExcludeCharacters any `json:"ExcludeCharacters,omitempty"`

	// GenerateStringKey is the JSON key the generated value is stored under.
	GenerateStringKey any `json:"GenerateStringKey,omitempty"`

	// PasswordLength is the length of the generated value.
	PasswordLength any `json:"PasswordLength,omitempty"`

	// SecretStringTemplate is a JSON template the generated value is merged into.
	SecretStringTemplate any `json:"SecretStringTemplate,omitempty"`
}
