// Package config provides functionality for loading and managing application configuration.
//
// Settings are loaded with viper from an optional YAML file and the environment, validated with
// go-playground/validator, and key material is resolved lazily through the Provider interface
// using dotted paths such as "crypto.keys.app".
package config
