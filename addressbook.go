package main

import (
	"iter"
	"slices"
)

type Entry struct {
	Name     string
	Lastname string
}

// Predicate reports whether an entry should be kept by Filter.
type Predicate func(Entry) bool

// AddressBook maps a name to a lastname. Names are unique; the first
// Add for a name wins and later ones are ignored.
type AddressBook struct {
	lastnames map[string]string
	names     []string // insertion order
}

func NewAddressBook() *AddressBook {
	return &AddressBook{lastnames: make(map[string]string)}
}

// Add stores lastname under name unless name is already present.
// It reports whether the entry was stored.
func (abook *AddressBook) Add(name, lastname string) bool {
	if _, ok := abook.lastnames[name]; ok {
		return false
	}
	abook.lastnames[name] = lastname
	abook.names = append(abook.names, name)
	return true
}

func (abook *AddressBook) Lookup(name string) (lastname string, ok bool) {
	lastname, ok = abook.lastnames[name]
	return lastname, ok
}

func (abook *AddressBook) Len() int {
	return len(abook.names)
}

// List yields every entry in insertion order.
func (abook *AddressBook) List() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range abook.names {
			if !yield(name, abook.lastnames[name]) {
				return
			}
		}
	}
}

// Sort yields every entry ordered by name. The order is computed when
// iteration starts; the book itself is left as it is.
func (abook *AddressBook) Sort() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(slices.Values(abook.names)) {
			if !yield(name, abook.lastnames[name]) {
				return
			}
		}
	}
}

// Filter yields the entries matching p, in List order.
func (abook *AddressBook) Filter(p Predicate) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, lastname := range abook.List() {
			if !p(Entry{Name: name, Lastname: lastname}) {
				continue
			}
			if !yield(name, lastname) {
				return
			}
		}
	}
}

// Matching returns a predicate that is true when v equals either the
// name or the lastname of an entry.
func Matching(v string) Predicate {
	return func(e Entry) bool {
		return e.Name == v || e.Lastname == v
	}
}

func Entries(seq iter.Seq2[string, string]) []Entry {
	var entries []Entry
	for name, lastname := range seq {
		entries = append(entries, Entry{Name: name, Lastname: lastname})
	}
	return entries
}
