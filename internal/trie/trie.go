// Package trie implements the affix index: a trie keyed by the affix
// surface string, used to enumerate every affix compatible with a prefix
// (or, for suffixes, a reversed suffix) of a candidate word in one walk
// instead of scanning the whole affix table.
//
// Grounded on original_source's algo/trie.py (a minimal Leaf/children
// structure); node layout here uses a plain rune-keyed map rather than a
// cache-friendly array-indexed layout.
package trie

// Trie maps rune-sequence keys to a set of payloads. Prefix/Suffix affix
// records are generic here (stored as `any`) so the same structure serves
// both the prefix trie (keyed forward by `add`) and the suffix trie (keyed
// by the reversed `add`).
type Trie struct {
	root *node
}

type node struct {
	payloads []any
	children map[rune]*node
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New builds an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Put inserts payload under key.
func (t *Trie) Put(key []rune, payload any) {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	n.payloads = append(n.payloads, payload)
}

// Lookup returns every payload stored at any prefix of key (i.e. walking
// key rune by rune, collecting payloads at each node visited along the
// way). This is the "every affix whose append is a prefix of the traversed
// key" operation affix stripping depends on.
func (t *Trie) Lookup(key []rune) []any {
	var out []any
	n := t.root
	out = append(out, n.payloads...)
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			break
		}
		out = append(out, child.payloads...)
		n = child
	}
	return out
}
