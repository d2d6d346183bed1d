package document

// Codec is the generic text capability the lockfile pipeline is built on.
//
// Parse turns text into a document, annotating failures with path.
// Decode fills out (a pointer to a struct) from a document.
// Encode turns a Go value into a document; key order is unspecified.
// Render prints a document with the codec's own generic formatting.
type Codec interface {
	Parse(data []byte, path string) (*Table, error)
	Decode(doc *Table, out interface{}) error
	Encode(in interface{}) (*Table, error)
	Render(doc *Table) (string, error)
}
