package redis

import "fmt"

// Key prefix for all ledger data
const keyPrefix = "blackjack"

// saveKey returns the Redis key for the snapshot in a slot
func saveKey(slot string) string {
	return fmt.Sprintf("%s:save:%s", keyPrefix, slot)
}
