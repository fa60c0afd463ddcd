// Package cryptoalg enumerates the closed set of algorithms and encoders a deployment can select.
// Names are parsed once at startup; unknown names are rejected with crypto.ErrUnknownDriver.
package cryptoalg
