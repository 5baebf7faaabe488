package packer

// Policy decides what to do with a trailing group of less than 8 bits
type Policy string

// Available policies
const (
	Strict   Policy = "strict"   // Fail with a MalformedInputError
	Truncate Policy = "truncate" // Discard the partial group
	Pad      Policy = "pad"      // Fill the partial group with zeros
)

// Config stores the config for a Packer
type Config struct {
	Policy Policy
}
