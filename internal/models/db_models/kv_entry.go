package db_models

// KVEntry is the single sqlite table backing the key-value store. Collections
// are stored as JSON strings under well-known keys.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
