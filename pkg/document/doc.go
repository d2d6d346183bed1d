// Package document provides the format-agnostic document tree that sits
// between lockfile text and the resolver's intermediate structures.
//
// A document is a Table of string keys mapped to Values. Values are tables,
// arrays, strings or other TOML primitives. Tables keep insertion order, but
// nothing here promises that an encoder inserts keys in a meaningful order;
// consumers that need a stable layout impose it themselves.
//
// The Codec interface is the injected text capability: parsing text into a
// Table, decoding a Table into a Go struct, encoding a Go struct into a Table
// and rendering a Table back to text. TOMLCodec implements it with go-toml/v2
// and mapstructure.
package document
