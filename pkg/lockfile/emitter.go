package lockfile

import (
	"strings"

	"github.com/arthur-debert/cargolock/pkg/document"
	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/logging"
)

// EmitPackage renders one package table in canonical form: name, version,
// the optional source, then dependencies one per line. A table that carries
// a dependencies key, even an empty one, is followed by a blank line.
//
// The table must hold name and version; anything else is a programming
// error and panics.
func EmitPackage(t *document.Table) string {
	var b strings.Builder
	emitPackage(&b, t)
	return b.String()
}

func emitPackage(b *strings.Builder, t *document.Table) {
	b.WriteString("name = " + lookup(t, "name").String() + "\n")
	b.WriteString("version = " + lookup(t, "version").String() + "\n")

	if source, ok := t.Get("source"); ok {
		b.WriteString("source = " + source.String() + "\n")
	}

	deps, ok := t.Get("dependencies")
	if !ok {
		return
	}
	list, isArray := deps.(document.Array)
	if !isArray {
		panic(errors.Newf(errors.ErrInternal, "dependencies is a %s, not an array", deps.Kind()))
	}
	if len(list) > 0 {
		b.WriteString("dependencies = [\n")
		for _, child := range list {
			b.WriteString(" " + child.String() + ",\n")
		}
		b.WriteString("]\n")
	}
	b.WriteString("\n")
}

func lookup(t *document.Table, key string) document.Value {
	v, ok := t.Get(key)
	if !ok {
		panic(errors.Newf(errors.ErrInternal, "package table has no %q", key))
	}
	return v
}

// Render composes the whole lockfile text from an encoded resolve document.
// The metadata section, when present, is printed by codec.
//
// doc must contain a root table and a package array of tables, which is
// what resolver.Encode always produces.
func Render(doc *document.Table, codec document.Codec) (string, error) {
	logger := logging.GetLogger("lockfile.emitter")
	var b strings.Builder

	b.WriteString("[root]\n")
	emitPackage(&b, table(lookupSection(doc, "root"), "root"))

	packages, ok := lookupSection(doc, "package").(document.Array)
	if !ok {
		panic(errors.New(errors.ErrInternal, "package section is not an array"))
	}
	for _, entry := range packages {
		pkg := table(entry, "package")
		b.WriteString("[[package]]\n")
		emitPackage(&b, pkg)
		logger.Trace().Str("package", plainText(lookup(pkg, "name"))).Msg("emitted package")
	}

	if metadata, ok := doc.Get("metadata"); ok {
		rendered, err := codec.Render(table(metadata, "metadata"))
		if err != nil {
			return "", err
		}
		b.WriteString("[metadata]\n")
		b.WriteString(rendered)
	}

	return b.String(), nil
}

// plainText returns a string value unquoted and anything else in TOML syntax.
func plainText(v document.Value) string {
	if s, ok := v.(document.String); ok {
		return string(s)
	}
	return v.String()
}

func lookupSection(doc *document.Table, key string) document.Value {
	v, ok := doc.Get(key)
	if !ok {
		panic(errors.Newf(errors.ErrInternal, "lockfile document has no %q section", key))
	}
	return v
}

func table(v document.Value, section string) *document.Table {
	t, ok := v.(*document.Table)
	if !ok {
		panic(errors.Newf(errors.ErrInternal, "%s entry is a %s, not a table", section, v.Kind()))
	}
	return t
}
