package delivery

import (
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/naming"
)

// Names derives every physical resource name in a pipeline from the base
// name and the random suffix. All derivations go through the same length
// caps, so a long base name degrades by truncation while the suffix that
// guarantees uniqueness always survives intact.
type Names struct {
	Base   string
	Suffix string
}

// Stream is the delivery stream name: <base>-<suffix>.
func (n Names) Stream() string {
	return naming.Suffixed(n.Base, n.Suffix, naming.MaxStreamNameLength)
}

// FirehoseRole is the delivery role name: <base>-firehose-<suffix>.
func (n Names) FirehoseRole() string {
	return naming.Suffixed(n.Base+"-firehose", n.Suffix, naming.MaxRoleNameLength)
}

// SubscriptionRole is the CloudWatch Logs role name: <base>-cwl-<suffix>.
func (n Names) SubscriptionRole() string {
	return naming.Suffixed(n.Base+"-cwl", n.Suffix, naming.MaxRoleNameLength)
}

// KeyAlias is the KMS alias, under the required alias/ prefix.
func (n Names) KeyAlias() string {
	return "alias/" + naming.Suffixed(n.Base, n.Suffix, naming.MaxAliasNameLength-len("alias/"))
}

// ErrorBucket is the error-capture bucket name, shaped for S3.
func (n Names) ErrorBucket() string {
	return naming.ForBucket(n.Base+"-errors", n.Suffix)
}

// Secret is the endpoint credentials secret name.
func (n Names) Secret() string {
	return naming.Suffixed(n.Base+"-credentials", n.Suffix, naming.MaxSecretNameLength)
}

// DiagnosticsGroup is the log group Firehose writes its own delivery
// diagnostics to.
func (n Names) DiagnosticsGroup() string {
	return "/aws/kinesisfirehose/" + n.Stream()
}

// Filter is the subscription filter name for one source log group. The raw
// group name is embedded so operators can tell filters apart in the
// console: <base>-<group>-<suffix>.
func (n Names) Filter(group string) string {
	return naming.Suffixed(n.Base+"-"+group, n.Suffix, naming.MaxFilterNameLength)
}
