// Package naming derives CloudFormation logical IDs and AWS physical names
// for pipeline resources.
package naming

import (
	"strings"
	"unicode"
)

// AWS length limits for the physical names the pipeline generates.
const (
	MaxBucketNameLength = 63
	MaxRoleNameLength   = 64
	MaxStreamNameLength = 64
	MaxAliasNameLength  = 256
	MaxFilterNameLength = 512
	MaxSecretNameLength = 512
)

// LogicalID converts an arbitrary name into a CloudFormation logical ID.
// Letters and digits survive; every other rune is dropped and starts a new
// capitalized segment.
//
// e.g., "/aws/eks/cluster-logs" -> "AwsEksClusterLogs"
func LogicalID(s string) string {
	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if !isAlphanumeric(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Suffixed joins base and suffix with a hyphen, keeping the result within
// max bytes. The base is truncated before the suffix is ever touched, so a
// capped name still carries the full random suffix that makes it unique.
func Suffixed(base, suffix string, max int) string {
	name := base + "-" + suffix
	if len(name) <= max {
		return name
	}

	keep := max - len(suffix) - 1
	if keep < 1 {
		return suffix
	}

	base = strings.TrimRight(base[:keep], "-")
	return base + "-" + suffix
}

// ForBucket shapes a name for S3: lowercase, within the bucket length limit.
func ForBucket(base, suffix string) string {
	return strings.ToLower(Suffixed(base, suffix, MaxBucketNameLength))
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
