package config

// Provider resolves configuration values by dotted path.
// A nil result means the value is absent. *viper.Viper satisfies Provider.
type Provider interface {
	Get(key string) interface{}
}

// MapProvider is a Provider backed by a flat map keyed by dotted path.
type MapProvider map[string]interface{}

// Get returns the value stored under key, or nil.
func (m MapProvider) Get(key string) interface{} {
	return m[key]
}
