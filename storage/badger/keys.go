package badger

// Key prefixes for different data types
const (
	stringRecordPrefix = "strrec"
)

// makeStringRecordKey generates a key for a string record by its
// content address.
func makeStringRecordKey(id string) []byte {
	return []byte(stringRecordPrefix + ":" + id)
}
