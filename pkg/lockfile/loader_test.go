package lockfile_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cargolock/pkg/document"
	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/filesystem"
	"github.com/arthur-debert/cargolock/pkg/lockfile"
	"github.com/arthur-debert/cargolock/pkg/resolver"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func memLoader(t *testing.T, files map[string]string) *lockfile.Loader {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return lockfile.NewLoader(lockfile.WithFS(filesystem.NewAferoFS(mem)))
}

func TestLoad_MissingFile(t *testing.T) {
	r, err := lockfile.Load(filepath.Join(t.TempDir(), "Cargo.lock"), local)
	assert.NoError(t, err)
	assert.Nil(t, r)

	r, err = memLoader(t, nil).Load("/work/foo/Cargo.lock", local)
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestLoad_Scenario(t *testing.T) {
	loader := memLoader(t, map[string]string{
		"/work/foo/Cargo.lock": "[root]\nname = \"foo\"\nversion = \"0.1.0\"\n\n" +
			"[[package]]\nname = \"bar\"\nversion = \"0.2.0\"\nsource = \"registry+https://example.com\"\n\n",
	})

	r, err := loader.Load("/work/foo/Cargo.lock", local)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.True(t, scenarioResolve().Equal(r))
}

func TestLoad_AcceptsNonCanonicalInput(t *testing.T) {
	loader := memLoader(t, map[string]string{
		"/work/foo/Cargo.lock": `# hand edited
[[package]]
dependencies = []
source = 'registry+https://example.com'
version = '0.2.0'
name = 'bar'

[root]
dependencies = ["bar 0.2.0 (registry+https://example.com)"]
version = "0.1.0"
name = "foo"

[metadata]
checksum = "abc"
`,
	})

	r, err := loader.Load("/work/foo/Cargo.lock", local)
	require.NoError(t, err)

	foo := resolver.MustPackageID("foo", "0.1.0", local)
	bar := resolver.MustPackageID("bar", "0.2.0", registry)
	assert.Equal(t, []resolver.PackageID{bar}, r.Dependencies(foo))
	assert.Equal(t, map[string]string{"checksum": "abc"}, r.Metadata())
}

func TestLoad_Errors(t *testing.T) {
	const path = "/work/foo/Cargo.lock"

	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{name: "syntax error", content: "[root\nname = \"foo\"\n", code: errors.ErrLockfileParse},
		{name: "root is not a table", content: "root = \"foo\"\n", code: errors.ErrLockfileCorrupt},
		{
			name:    "dependencies is not a list",
			content: "[root]\nname = \"foo\"\nversion = \"0.1.0\"\ndependencies = 3\n",
			code:    errors.ErrLockfileCorrupt,
		},
		{name: "root missing name", content: "[root]\nversion = \"0.1.0\"\n", code: errors.ErrLockfileCorrupt},
		{name: "empty file", content: "", code: errors.ErrLockfileCorrupt},
		{
			name:    "metadata value is not a string",
			content: "[root]\nname = \"foo\"\nversion = \"0.1.0\"\n\n[metadata]\nsize = 1\n",
			code:    errors.ErrLockfileCorrupt,
		},
		{
			name:    "metadata value is a table",
			content: "[root]\nname = \"foo\"\nversion = \"0.1.0\"\n\n[metadata.nested]\nkey = \"v\"\n",
			code:    errors.ErrLockfileCorrupt,
		},
		{
			name:    "unknown dependency",
			content: "[root]\nname = \"foo\"\nversion = \"0.1.0\"\ndependencies = [\n \"ghost 1.0.0\",\n]\n",
			code:    errors.ErrSourceResolve,
		},
		{
			name:    "bad source",
			content: "[root]\nname = \"foo\"\nversion = \"0.1.0\"\n\n[[package]]\nname = \"bar\"\nversion = \"0.2.0\"\nsource = \"ftp://x\"\n",
			code:    errors.ErrSourceResolve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := memLoader(t, map[string]string{path: tt.content}).Load(path, local)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestLoad_ParseErrorPosition(t *testing.T) {
	const path = "/work/foo/Cargo.lock"
	_, err := memLoader(t, map[string]string{path: "[root]\nname = \n"}).Load(path, local)
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, path, details["path"])
	assert.Equal(t, 2, details["line"])
}

func TestLoad_ReadFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work/foo/Cargo.lock", 0755))
	loader := lockfile.NewLoader(lockfile.WithFS(filesystem.NewAferoFS(mem)))

	_, err := loader.Load("/work/foo/Cargo.lock", local)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	assert.Equal(t, "/work/foo/Cargo.lock", errors.GetErrorDetails(err)["path"])
}

func TestLoad_DecodeFailureFromCodec(t *testing.T) {
	const path = "/work/foo/Cargo.lock"
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, path, []byte("anything"), 0644))

	codec := &mockCodec{}
	codec.On("Parse", []byte("anything"), path).Return(document.NewTable(), nil)
	codec.On("Decode", mock.Anything, mock.AnythingOfType("*resolver.EncodableResolve")).Return(stderrors.New("shape"))

	loader := lockfile.NewLoader(
		lockfile.WithFS(filesystem.NewAferoFS(mem)),
		lockfile.WithCodec(codec),
	)
	_, err := loader.Load(path, local)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLockfileCorrupt))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	codec.AssertExpectations(t)
}

func TestLoadForPackage(t *testing.T) {
	loader := memLoader(t, map[string]string{
		"/work/foo/Cargo.lock": "[root]\nname = \"foo\"\nversion = \"0.1.0\"\n",
	})
	pkg := resolver.Package{
		ManifestPath: "/work/foo/Cargo.toml",
		ID:           resolver.MustPackageID("foo", "0.1.0", local),
	}

	r, err := loader.LoadForPackage(pkg)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, pkg.ID, r.Root())

	missing := resolver.Package{
		ManifestPath: "/elsewhere/Cargo.toml",
		ID:           resolver.MustPackageID("foo", "0.1.0", local),
	}
	r, err = loader.LoadForPackage(missing)
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestLoad_RequiresSource(t *testing.T) {
	loader := memLoader(t, map[string]string{
		"/work/foo/Cargo.lock": "[root]\nname = \"foo\"\nversion = \"0.1.0\"\n",
	})

	r, err := loader.Load("/work/foo/Cargo.lock", resolver.SourceID{})
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "/work/foo/Cargo.lock", errors.GetErrorDetails(err)["path"])
}
