package cryptoalg

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
)

// EncoderFormat selects the payload encoder.
type EncoderFormat string

const (
	// EncoderRaw passes []byte and string values through unchanged.
	EncoderRaw EncoderFormat = "raw"
	// EncoderJSON encodes values as JSON.
	EncoderJSON EncoderFormat = "json"
	// EncoderMsgpack encodes values as MessagePack.
	EncoderMsgpack EncoderFormat = "msgpack"
	// EncoderYAML encodes values as YAML.
	EncoderYAML EncoderFormat = "yaml"
)

// ParseEncoderFormat maps a configured encoder driver name to an EncoderFormat.
func ParseEncoderFormat(name string) (EncoderFormat, error) {
	switch e := EncoderFormat(name); e {
	case EncoderRaw, EncoderJSON, EncoderMsgpack, EncoderYAML:
		return e, nil
	default:
		return "", fmt.Errorf("%w: encoder %q", crypto.ErrUnknownDriver, name)
	}
}
