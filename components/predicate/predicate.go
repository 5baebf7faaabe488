package predicate

import (
	"errors"
	"sort"
	"sync"
)

// Predicate maps a record to a single bit (0 or 1)
type Predicate func(record string) byte

// Names of the built-in predicates
const (
	TrailingSpaceName      = "trailing-space"
	TrailingTabName        = "trailing-tab"
	TrailingWhitespaceName = "trailing-whitespace"
	LastSpaceName          = "last-space"
)

// Default is the predicate used when none is configured
const Default = TrailingSpaceName

var (
	mu       sync.RWMutex
	registry = map[string]Predicate{
		TrailingSpaceName:      TrailingSpace,
		TrailingTabName:        TrailingTab,
		TrailingWhitespaceName: TrailingWhitespace,
		LastSpaceName:          LastSpace,
	}
)

// beforeTerminator returns the second-to-last character of the record. The
// record is expected to keep its line terminator.
func beforeTerminator(record string) (rune, bool) {
	runes := []rune(record)
	if len(runes) < 2 {
		return 0, false
	}

	return runes[len(runes)-2], true
}

// TrailingSpace returns 1 when the character right before the line terminator
// is a space. A record with a single character (an empty line) is a 0.
func TrailingSpace(record string) byte {
	if c, ok := beforeTerminator(record); ok && c == ' ' {
		return 1
	}

	return 0
}

// TrailingTab is like TrailingSpace but looks for a tab
func TrailingTab(record string) byte {
	if c, ok := beforeTerminator(record); ok && c == '\t' {
		return 1
	}

	return 0
}

// TrailingWhitespace accepts both a space and a tab before the terminator
func TrailingWhitespace(record string) byte {
	if c, ok := beforeTerminator(record); ok && (c == ' ' || c == '\t') {
		return 1
	}

	return 0
}

// LastSpace is meant for records whose terminator has already been stripped:
// the bit is 1 when the last character is a space.
func LastSpace(record string) byte {
	runes := []rune(record)
	if len(runes) > 0 && runes[len(runes)-1] == ' ' {
		return 1
	}

	return 0
}

// Register adds a predicate to the registry, replacing any predicate with the
// same name
func Register(name string, p Predicate) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = p
}

// Lookup returns the predicate registered with the given name. An empty name
// returns the default predicate.
func Lookup(name string) (Predicate, error) {
	if name == "" {
		name = Default
	}

	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[name]
	if !ok || p == nil {
		return nil, errors.New("Unknown predicate: " + name)
	}

	return p, nil
}

// Names returns the registered predicate names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
