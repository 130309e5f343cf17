package limiter

import (
	"hash/fnv"
)

// Identity state is spread over fixed shards so concurrent requests from
// distinct identities do not contend on one lock.
const shardCount = 16

func shardIndex(identity string) int {
	h := fnv.New32a()
	h.Write([]byte(identity))
	return int(h.Sum32() % shardCount)
}
