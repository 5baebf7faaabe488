package predicate

// Config stores the config for an Extractor
type Config struct {
	Predicate string
}
