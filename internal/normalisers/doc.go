// Package normalisers provides text normalisers for reference datasets.
// Each normaliser turns one kind of marked-up field into plain text.
package normalisers
