package sqlite

// CorruptForTest writes a raw value under the cache key.
func CorruptForTest(c *Cache, raw string) error {
	_, err := c.db.Exec(`UPDATE kv SET value = ? WHERE key = ?`, raw, c.key)
	return err
}
