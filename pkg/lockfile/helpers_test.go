package lockfile_test

import (
	"github.com/arthur-debert/cargolock/pkg/document"
	"github.com/arthur-debert/cargolock/pkg/resolver"
	"github.com/stretchr/testify/mock"
)

var (
	local    = resolver.NewPathSource("/work/foo")
	registry = resolver.NewRegistrySource("https://example.com")
)

// scenarioResolve is foo at the local source plus bar from the registry.
func scenarioResolve() *resolver.Resolve {
	r := resolver.NewResolve(resolver.MustPackageID("foo", "0.1.0", local))
	r.AddPackage(resolver.MustPackageID("bar", "0.2.0", registry))
	return r
}

func graphResolve() *resolver.Resolve {
	foo := resolver.MustPackageID("foo", "0.1.0", local)
	bar := resolver.MustPackageID("bar", "0.2.0", registry)
	baz := resolver.MustPackageID("baz", "0.3.0", local)

	r := resolver.NewResolve(foo)
	r.AddDependency(foo, bar)
	r.AddDependency(foo, baz)
	r.AddDependency(bar, baz)
	return r
}

type mockCodec struct {
	mock.Mock
}

func (m *mockCodec) Parse(data []byte, path string) (*document.Table, error) {
	args := m.Called(data, path)
	doc, _ := args.Get(0).(*document.Table)
	return doc, args.Error(1)
}

func (m *mockCodec) Decode(doc *document.Table, out interface{}) error {
	args := m.Called(doc, out)
	return args.Error(0)
}

func (m *mockCodec) Encode(in interface{}) (*document.Table, error) {
	args := m.Called(in)
	doc, _ := args.Get(0).(*document.Table)
	return doc, args.Error(1)
}

func (m *mockCodec) Render(doc *document.Table) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}
