// Package preflight checks the live AWS account for the collaborators the
// pipeline consumes but does not own: the caller's log groups, the
// destination bucket and a resolvable caller identity. Every call is
// read-only; findings are reported, never repaired.
package preflight

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// LoadAWSConfig loads an AWS config with optional profile and region
// overrides.
func LoadAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return cfg, nil
}

// LogsAPI defines the subset of the CloudWatch Logs API we use.
type LogsAPI interface {
	DescribeLogGroups(ctx context.Context, params *cloudwatchlogs.DescribeLogGroupsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
}

// S3API defines the subset of the S3 API we use.
type S3API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// STSAPI defines the subset of the STS API we use.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Checker runs the account checks.
type Checker struct {
	logs LogsAPI
	s3   S3API
	sts  STSAPI
}

// New creates a checker from the three service APIs.
func New(logs LogsAPI, s3api S3API, stsapi STSAPI) *Checker {
	return &Checker{logs: logs, s3: s3api, sts: stsapi}
}

// FromConfig creates a checker backed by real AWS clients.
func FromConfig(cfg aws.Config) *Checker {
	return New(
		cloudwatchlogs.NewFromConfig(cfg),
		s3.NewFromConfig(cfg),
		sts.NewFromConfig(cfg),
	)
}

// Input names what to check: the log groups the caller wants subscribed
// and, for S3 delivery, the destination bucket. BucketARN is empty on the
// HTTP endpoint branch.
type Input struct {
	LogGroupNames []string
	BucketARN     string
}

// Check is one verified expectation about the account.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report collects the checks in execution order.
type Report struct {
	AccountID string  `json:"account_id,omitempty"`
	Checks    []Check `json:"checks"`
}

// Passed reports whether every check succeeded.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Run executes all checks. Failures are findings in the report, not
// errors; the only way to fail fast is an unresolvable caller identity,
// which makes every other check meaningless.
func (c *Checker) Run(ctx context.Context, in Input) *Report {
	report := &Report{}

	identity := c.checkIdentity(ctx, report)
	report.Checks = append(report.Checks, identity)
	if !identity.OK {
		return report
	}

	for _, group := range in.LogGroupNames {
		report.Checks = append(report.Checks, c.checkLogGroup(ctx, group))
	}

	if in.BucketARN != "" {
		report.Checks = append(report.Checks, c.checkBucket(ctx, in.BucketARN))
	}

	return report
}

func (c *Checker) checkIdentity(ctx context.Context, report *Report) Check {
	out, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Check{Name: "caller identity", Detail: err.Error()}
	}
	report.AccountID = aws.ToString(out.Account)
	return Check{
		Name:   "caller identity",
		OK:     true,
		Detail: fmt.Sprintf("account %s as %s", aws.ToString(out.Account), aws.ToString(out.Arn)),
	}
}

// checkLogGroup verifies the named log group exists. DescribeLogGroups
// matches by prefix, so pages are scanned for the exact name.
func (c *Checker) checkLogGroup(ctx context.Context, name string) Check {
	check := Check{Name: fmt.Sprintf("log group %s", name)}

	var nextToken *string
	for {
		out, err := c.logs.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
			LogGroupNamePrefix: aws.String(name),
			NextToken:          nextToken,
		})
		if err != nil {
			check.Detail = err.Error()
			return check
		}

		for _, group := range out.LogGroups {
			if aws.ToString(group.LogGroupName) == name {
				check.OK = true
				check.Detail = "exists"
				return check
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	check.Detail = "not found"
	return check
}

func (c *Checker) checkBucket(ctx context.Context, bucketARN string) Check {
	name, err := bucketNameFromARN(bucketARN)
	if err != nil {
		return Check{Name: "destination bucket", Detail: err.Error()}
	}

	check := Check{Name: fmt.Sprintf("destination bucket %s", name)}
	if _, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)}); err != nil {
		check.Detail = err.Error()
		return check
	}
	check.OK = true
	check.Detail = "exists"
	return check
}

// bucketNameFromARN extracts the bucket name from an S3 ARN of the form
// arn:<partition>:s3:::<bucket>.
func bucketNameFromARN(arn string) (string, error) {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) != 6 || parts[0] != "arn" || parts[2] != "s3" {
		return "", fmt.Errorf("%q is not an S3 bucket ARN", arn)
	}
	name := parts[5]
	if name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%q is not an S3 bucket ARN", arn)
	}
	return name, nil
}
