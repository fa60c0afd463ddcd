package encoder

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"

	"github.com/rbaliyan/config/codec"
)

// Encoder adapts a codec.Codec to crypto.Encoder and reports every failure as crypto.ErrSerialization.
type Encoder struct {
	inner codec.Codec
}

// Compile-time interface checks.
var (
	_ crypto.Encoder = (*Encoder)(nil)
	_ codec.Codec    = (*Encoder)(nil)
)

// New returns the encoder for format.
func New(format cryptoalg.EncoderFormat) (*Encoder, error) {
	switch format {
	case cryptoalg.EncoderRaw:
		return Wrap(rawCodec{})
	case cryptoalg.EncoderJSON:
		return Wrap(codec.JSON())
	case cryptoalg.EncoderMsgpack:
		return Wrap(msgpackCodec{})
	case cryptoalg.EncoderYAML:
		return Wrap(yamlCodec{})
	default:
		return nil, fmt.Errorf("%w: encoder %q", crypto.ErrUnknownDriver, format)
	}
}

// Wrap adapts an arbitrary codec.
func Wrap(inner codec.Codec) (*Encoder, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: codec is nil", crypto.ErrConfiguration)
	}
	return &Encoder{inner: inner}, nil
}

// Name returns the codec name, e.g. "json".
func (e *Encoder) Name() string {
	return e.inner.Name()
}

// Encode serializes v.
func (e *Encoder) Encode(v any) ([]byte, error) {
	data, err := e.inner.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s encode failed: %w", crypto.ErrSerialization, e.inner.Name(), err)
	}
	return data, nil
}

// Decode deserializes data into v, which must be a non-nil pointer.
func (e *Encoder) Decode(data []byte, v any) error {
	if err := e.inner.Decode(data, v); err != nil {
		return fmt.Errorf("%w: %s decode failed: %w", crypto.ErrSerialization, e.inner.Name(), err)
	}
	return nil
}
