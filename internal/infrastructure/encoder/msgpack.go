package encoder

import "github.com/vmihailenco/msgpack/v5"

// msgpackCodec encodes values as MessagePack.
type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
