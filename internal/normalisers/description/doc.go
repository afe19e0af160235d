// Package description provides the Cleaner that turns HTML-bearing symbol
// descriptions into single-line plain text. It recognises only literal
// paragraph and inline-code markers; every other tag passes through.
package description
