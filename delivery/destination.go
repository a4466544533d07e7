package delivery

import "errors"

// Destination is the delivery target for a pipeline. Exactly one concrete
// type is active at a time: S3Destination or HTTPDestination.
type Destination interface {
	destination()
}

// S3Destination delivers log events to a caller-owned S3 bucket.
type S3Destination struct {
	BucketARN         string
	CompressionFormat string
}

func (S3Destination) destination() {}

// HTTPDestination delivers log events to an HTTPS endpoint, with failed
// batches backed up to the pipeline's error bucket.
type HTTPDestination struct {
	EndpointURL string
}

func (HTTPDestination) destination() {}

// resolveDestination maps the two optional destination fields of a Config
// onto the Destination sum. Setting neither or both is a configuration
// error, reported before any resource is built.
func resolveDestination(cfg Config) (Destination, error) {
	switch {
	case cfg.BucketARN != "" && cfg.HTTPEndpoint != "":
		return nil, errors.New("destination_bucket_arn and destination_http_endpoint are mutually exclusive; set exactly one")
	case cfg.BucketARN != "":
		return S3Destination{
			BucketARN:         cfg.BucketARN,
			CompressionFormat: cfg.CompressionFormat,
		}, nil
	case cfg.HTTPEndpoint != "":
		return HTTPDestination{EndpointURL: cfg.HTTPEndpoint}, nil
	default:
		return nil, errors.New("no destination configured: set destination_bucket_arn or destination_http_endpoint")
	}
}
