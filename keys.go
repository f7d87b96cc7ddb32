package trie

// Runes splits a textual key into its sequence of character tokens, for use
// with a Tree[rune, V].
func Runes(s string) []rune {
	return []rune(s)
}

// Bytes splits a key into its sequence of byte tokens, for use with a
// Tree[byte, V].
func Bytes(s string) []byte {
	return []byte(s)
}
