package linebits

// Config stores the configuration for a decoder
type Config struct {
	Predicate string `yaml:"predicate"` // Name of the bit predicate
	Policy    string `yaml:"policy"`    // strict, truncate or pad
	TrimNull  bool   `yaml:"trim_null"` // Remove trailing NUL bytes from the message
}
