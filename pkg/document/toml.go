package document

import (
	stderrors "errors"

	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// TOMLCodec implements Codec with go-toml/v2 for text and mapstructure for
// struct decoding.
type TOMLCodec struct{}

// NewTOMLCodec returns the default codec.
func NewTOMLCodec() *TOMLCodec {
	return &TOMLCodec{}
}

// Parse parses TOML text. Syntax errors carry the path and, when go-toml
// reports one, the line and column.
func (c *TOMLCodec) Parse(data []byte, path string) (*Table, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		parseErr := errors.Wrapf(err, errors.ErrLockfileParse, "failed to parse %s", path).
			WithDetail("path", path)

		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			parseErr.WithDetail("line", row).WithDetail("column", col)
		}
		return nil, parseErr
	}

	doc, err := FromMap(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLockfileParse, "failed to parse %s", path).
			WithDetail("path", path)
	}
	return doc, nil
}

// Decode fills out from doc using the "toml" struct tags. Type mismatches
// are reported as a corrupt lockfile rather than coerced.
func (c *TOMLCodec) Decode(doc *Table, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "toml",
		Result:  out,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create decoder")
	}

	if err := decoder.Decode(doc.ToMap()); err != nil {
		return errors.Wrap(err, errors.ErrLockfileCorrupt, "document does not match the lockfile schema")
	}
	return nil
}

// Encode converts in to a document by marshalling it with go-toml and
// reading the result back generically.
func (c *TOMLCodec) Encode(in interface{}) (*Table, error) {
	data, err := toml.Marshal(in)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGraphEncode, "failed to encode %T", in)
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrGraphEncode, "failed to encode %T", in)
	}

	doc, err := FromMap(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGraphEncode, "failed to encode %T", in)
	}
	return doc, nil
}

// Render prints doc with go-toml's formatting.
func (c *TOMLCodec) Render(doc *Table) (string, error) {
	out, err := toml.Marshal(doc.ToMap())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGraphEncode, "failed to render document")
	}
	return string(out), nil
}
