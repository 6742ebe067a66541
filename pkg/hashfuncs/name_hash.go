package hashfuncs

import "github.com/spaolacci/murmur3"

// NameHash hashes a store or topic name for sharding across backends.
func NameHash(name string) uint64 {
	return murmur3.Sum64([]byte(name))
}
