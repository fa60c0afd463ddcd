// Package keys loads, caches and generates key material.
//
// Loaders are explicit shared handles: the configured source is resolved at most once per
// handle and the result is kept in a frozen memguard buffer for the lifetime of the process.
// Key files are read under a shared advisory lock and written under an exclusive one.
package keys
