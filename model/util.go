package model

// KeyValuePair is a select option.
type KeyValuePair struct {
	Key   string
	Value string
}

// LabelFor returns the value paired with key or key itself.
func LabelFor(pairs []KeyValuePair, key string) string {
	for _, pair := range pairs {
		if pair.Key == key {
			return pair.Value
		}
	}
	return key
}

// HasKey reports whether key is one of the pairs.
func HasKey(pairs []KeyValuePair, key string) bool {
	for _, pair := range pairs {
		if pair.Key == key {
			return true
		}
	}
	return false
}
