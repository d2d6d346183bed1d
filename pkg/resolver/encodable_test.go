package resolver_test

import (
	"testing"

	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResolve() *resolver.Resolve {
	foo := resolver.MustPackageID("foo", "0.1.0", local)
	bar := resolver.MustPackageID("bar", "0.2.0", registry)
	baz := resolver.MustPackageID("baz", "0.3.0", local)

	r := resolver.NewResolve(foo)
	r.AddDependency(foo, bar)
	r.AddDependency(foo, baz)
	r.AddDependency(bar, baz)
	return r
}

func TestEncode(t *testing.T) {
	enc := resolver.Encode(sampleResolve())

	assert.Equal(t, resolver.EncodableDependency{
		Name:         "foo",
		Version:      "0.1.0",
		Dependencies: []string{"bar 0.2.0 (registry+https://example.com)", "baz 0.3.0"},
	}, enc.Root)

	require.Len(t, enc.Package, 2)
	assert.Equal(t, resolver.EncodableDependency{
		Name:         "bar",
		Version:      "0.2.0",
		Source:       "registry+https://example.com",
		Dependencies: []string{"baz 0.3.0"},
	}, enc.Package[0])
	assert.Equal(t, "baz", enc.Package[1].Name)
	assert.Empty(t, enc.Package[1].Source, "same source as root is omitted")
	assert.NotNil(t, enc.Package[1].Dependencies)
	assert.Nil(t, enc.Metadata)
}

func TestEncode_RootOnly(t *testing.T) {
	r := resolver.NewResolve(resolver.MustPackageID("foo", "0.1.0", local))
	enc := resolver.Encode(r)

	assert.NotNil(t, enc.Package)
	assert.Empty(t, enc.Package)
	assert.NotNil(t, enc.Root.Dependencies)
}

func TestToResolve_RoundTrip(t *testing.T) {
	r := sampleResolve()
	r.SetMetadata(map[string]string{"checksum": "abc"})

	back, err := resolver.Encode(r).ToResolve(local)
	require.NoError(t, err)
	assert.True(t, r.Equal(back))
}

func TestToResolve_DefaultsToCallerSource(t *testing.T) {
	enc := &resolver.EncodableResolve{
		Root: resolver.EncodableDependency{Name: "foo", Version: "0.1.0", Dependencies: []string{"bar 0.2.0"}},
		Package: []resolver.EncodableDependency{
			{Name: "bar", Version: "0.2.0"},
		},
	}

	other := resolver.NewPathSource("/elsewhere")
	r, err := enc.ToResolve(other)
	require.NoError(t, err)

	assert.Equal(t, other, r.Root().Source)
	bar := resolver.MustPackageID("bar", "0.2.0", other)
	assert.Equal(t, []resolver.PackageID{bar}, r.Dependencies(r.Root()))
}

func TestToResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		enc  resolver.EncodableResolve
		code errors.ErrorCode
	}{
		{
			name: "root missing name",
			enc:  resolver.EncodableResolve{Root: resolver.EncodableDependency{Version: "0.1.0"}},
			code: errors.ErrLockfileCorrupt,
		},
		{
			name: "package missing version",
			enc: resolver.EncodableResolve{
				Root:    resolver.EncodableDependency{Name: "foo", Version: "0.1.0"},
				Package: []resolver.EncodableDependency{{Name: "bar"}},
			},
			code: errors.ErrLockfileCorrupt,
		},
		{
			name: "duplicate package",
			enc: resolver.EncodableResolve{
				Root: resolver.EncodableDependency{Name: "foo", Version: "0.1.0"},
				Package: []resolver.EncodableDependency{
					{Name: "bar", Version: "0.2.0"},
					{Name: "bar", Version: "0.2.0"},
				},
			},
			code: errors.ErrLockfileCorrupt,
		},
		{
			name: "unknown reference",
			enc: resolver.EncodableResolve{
				Root: resolver.EncodableDependency{Name: "foo", Version: "0.1.0", Dependencies: []string{"ghost 1.0.0"}},
			},
			code: errors.ErrSourceResolve,
		},
		{
			name: "malformed reference",
			enc: resolver.EncodableResolve{
				Root: resolver.EncodableDependency{Name: "foo", Version: "0.1.0", Dependencies: []string{"ghost"}},
			},
			code: errors.ErrSourceResolve,
		},
		{
			name: "unbalanced reference source",
			enc: resolver.EncodableResolve{
				Root: resolver.EncodableDependency{Name: "foo", Version: "0.1.0", Dependencies: []string{"bar 0.2.0 registry+https://x"}},
			},
			code: errors.ErrSourceResolve,
		},
		{
			name: "invalid version",
			enc: resolver.EncodableResolve{
				Root:    resolver.EncodableDependency{Name: "foo", Version: "0.1.0"},
				Package: []resolver.EncodableDependency{{Name: "bar", Version: "two"}},
			},
			code: errors.ErrSourceResolve,
		},
		{
			name: "invalid source",
			enc: resolver.EncodableResolve{
				Root:    resolver.EncodableDependency{Name: "foo", Version: "0.1.0"},
				Package: []resolver.EncodableDependency{{Name: "bar", Version: "0.2.0", Source: "nowhere"}},
			},
			code: errors.ErrSourceResolve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.enc.ToResolve(local)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestToResolve_UnknownReferenceDetails(t *testing.T) {
	enc := resolver.EncodableResolve{
		Root: resolver.EncodableDependency{Name: "foo", Version: "0.1.0", Dependencies: []string{"ghost 1.0.0"}},
	}
	_, err := enc.ToResolve(local)
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "foo", details["package"])
	assert.Equal(t, "ghost 1.0.0", details["reference"])
}
