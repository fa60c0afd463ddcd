package cryptography

import (
	"encoding/base64"
	"time"

	"github.com/MGTheTrain/crypto-services/internal/infrastructure/telemetry"
)

// textEncoding is the text form of every ciphertext, signature and digest.
var textEncoding = base64.RawURLEncoding.Strict()

// Option configures an encryptor, signer or hasher.
type Option func(*options)

type options struct {
	metrics *telemetry.Recorder
}

// WithMetrics records every operation on r.
func WithMetrics(r *telemetry.Recorder) Option {
	return func(o *options) {
		o.metrics = r
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// record is deferred by public operations with a pointer to their named error result.
func (o options) record(operation, algorithm string, start time.Time, errp *error) {
	o.metrics.Record(operation, algorithm, start, *errp)
}
