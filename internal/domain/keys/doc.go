// Package keys defines how key material is loaded and generated.
package keys
