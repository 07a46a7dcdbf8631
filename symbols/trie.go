package symbols

import "unicode/utf8"

// Trie is a rune trie over the keywords of a symbol table. It is built once
// and is read-only afterwards, so it may be shared between goroutines.
//
// The trie supports longest-prefix matching: for an input string, it finds
// the longest keyword which is a prefix of the input. Keywords which are
// prefixes of other keywords (like "sub" and "sube") never shadow the longer
// ones.
type Trie struct {
	root  *trieNode
	size  int
	depth int // length of longest keyword in runes
}

type trieNode struct {
	children map[rune]*trieNode
	symbol   *Symbol // non-nil if a keyword ends here
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

// Insert enters a keyword. An existing entry for the same keyword is
// replaced. Empty keywords are ignored.
func (trie *Trie) Insert(keyword string, sym *Symbol) {
	if keyword == "" || sym == nil {
		return
	}
	node := trie.root
	n := 0
	for _, r := range keyword {
		n++
		if node.children == nil {
			node.children = make(map[rune]*trieNode)
		}
		child, ok := node.children[r]
		if !ok {
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}
	if node.symbol == nil {
		trie.size++
	}
	node.symbol = sym
	if n > trie.depth {
		trie.depth = n
	}
}

// Size returns the number of keywords in the trie.
func (trie *Trie) Size() int {
	return trie.size
}

// Lookup finds an exact keyword.
func (trie *Trie) Lookup(keyword string) (*Symbol, bool) {
	it := trie.Iterator()
	for _, r := range keyword {
		if !it.Next(r) {
			return nil, false
		}
	}
	if it.node.symbol == nil || keyword == "" {
		return nil, false
	}
	return it.node.symbol, true
}

// LongestPrefix returns the symbol for the longest keyword which is a prefix
// of s, together with the keyword's length in bytes. If no keyword is a prefix
// of s, it returns (nil, 0).
func (trie *Trie) LongestPrefix(s string) (*Symbol, int) {
	var found *Symbol
	length := 0
	it := trie.Iterator()
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !it.Next(r) {
			break
		}
		i += w
		if it.node.symbol != nil {
			found = it.node.symbol
			length = i
		}
	}
	return found, length
}

// --- Iterator --------------------------------------------------------------

// Iterator is a one-off iterator to walk down the trie, rune by rune.
type Iterator struct {
	node *trieNode
}

// Iterator will return an iterator to advance over prefixes of keywords.
func (trie *Trie) Iterator() *Iterator {
	return &Iterator{node: trie.root}
}

// Next will advance the iterator by one rune. If it returns false, the prefix
// read so far is not contained in the trie and the iterator is exhausted.
func (it *Iterator) Next(r rune) bool {
	if it.node == nil {
		return false
	}
	it.node = it.node.children[r]
	return it.node != nil
}

// Symbol returns the symbol for the keyword read so far, or nil if the prefix
// is not a complete keyword.
func (it *Iterator) Symbol() *Symbol {
	if it.node == nil {
		return nil
	}
	return it.node.symbol
}
