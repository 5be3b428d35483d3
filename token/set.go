/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "sort"

// Set is an ordered mapping of key to token.
// Putting an existing key replaces its token but keeps its original position.
type Set struct {
	keys   []string
	tokens map[string]*Token
}

// NewSet creates an empty token set.
func NewSet() *Set {
	return &Set{tokens: make(map[string]*Token)}
}

// Put stores a token under its key. Later writes win.
func (s *Set) Put(tok *Token) {
	if _, exists := s.tokens[tok.Key]; !exists {
		s.keys = append(s.keys, tok.Key)
	}
	s.tokens[tok.Key] = tok
}

// Get returns the token stored under key.
func (s *Set) Get(key string) (*Token, bool) {
	tok, ok := s.tokens[key]
	return tok, ok
}

// Len returns the number of tokens in the set.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the keys in order.
func (s *Set) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Tokens returns the tokens in key order.
func (s *Set) Tokens() []*Token {
	result := make([]*Token, 0, len(s.keys))
	for _, k := range s.keys {
		result = append(result, s.tokens[k])
	}
	return result
}

// Merge puts every token of other into s, in other's order.
func (s *Set) Merge(other *Set) {
	for _, tok := range other.Tokens() {
		s.Put(tok)
	}
}

// Sorted returns a copy of the set ordered alphabetically by key.
func (s *Set) Sorted() *Set {
	keys := s.Keys()
	sort.Strings(keys)
	sorted := NewSet()
	for _, k := range keys {
		sorted.Put(s.tokens[k])
	}
	return sorted
}
