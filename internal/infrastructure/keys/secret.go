package keys

import "github.com/awnumar/memguard"

// wipe overwrites every buffer with zeroes.
func wipe(bufs ...[]byte) {
	for _, b := range bufs {
		memguard.WipeBytes(b)
	}
}

// sealBuffer moves b into a locked, read-only buffer and wipes b.
func sealBuffer(b []byte) *memguard.LockedBuffer {
	buf := memguard.NewBufferFromBytes(b)
	buf.Freeze()
	return buf
}
