// Package encoder provides the payload serializers used by the authenticated encryptor.
//
// Every encoder satisfies both crypto.Encoder and the codec.Codec interface of
// github.com/rbaliyan/config, so third-party codecs can be plugged in through Wrap.
package encoder
