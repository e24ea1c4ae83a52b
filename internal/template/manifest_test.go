package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptors(t *testing.T) {
	t.Run("single mapping contributes one", func(t *testing.T) {
		descs, err := ParseDescriptors([]byte("name: api\ndescription: REST service\n"))
		require.NoError(t, err)
		require.Len(t, descs, 1)
		assert.Equal(t, "api", descs[0].Name)
		assert.Equal(t, "REST service", descs[0].Description)
	})

	t.Run("sequence contributes N in order", func(t *testing.T) {
		doc := `
- name: api
- name: worker
  description: background jobs
- name: cli
`
		descs, err := ParseDescriptors([]byte(doc))
		require.NoError(t, err)
		require.Len(t, descs, 3)
		assert.Equal(t, []string{"api", "worker", "cli"},
			[]string{descs[0].Name, descs[1].Name, descs[2].Name})
	})

	t.Run("JSON is accepted", func(t *testing.T) {
		descs, err := ParseDescriptors([]byte(`{"name":"api","minCliVersion":">=1.0.0"}`))
		require.NoError(t, err)
		require.Len(t, descs, 1)
		assert.Equal(t, ">=1.0.0", descs[0].MinCLIVersion)
	})

	t.Run("empty output contributes zero", func(t *testing.T) {
		for _, doc := range []string{"", "null\n", "~\n"} {
			descs, err := ParseDescriptors([]byte(doc))
			require.NoError(t, err)
			assert.Empty(t, descs)
		}
	})

	t.Run("nameless descriptor is rejected", func(t *testing.T) {
		_, err := ParseDescriptors([]byte("description: no name here\n"))
		assert.Error(t, err)
	})

	t.Run("nameless element in a sequence is rejected", func(t *testing.T) {
		_, err := ParseDescriptors([]byte("- name: ok\n- description: bad\n"))
		assert.Error(t, err)
	})

	t.Run("scalar document is rejected", func(t *testing.T) {
		_, err := ParseDescriptors([]byte("just a string\n"))
		assert.Error(t, err)
	})

	t.Run("unparsable document is an error", func(t *testing.T) {
		_, err := ParseDescriptors([]byte("{unclosed\n"))
		assert.Error(t, err)
	})

	t.Run("extra fields are tolerated", func(t *testing.T) {
		descs, err := ParseDescriptors([]byte("name: api\ntags: [go, http]\n"))
		require.NoError(t, err)
		assert.Len(t, descs, 1)
	})
}

func TestDescriptorCompatible(t *testing.T) {
	t.Run("no constraint always passes", func(t *testing.T) {
		ok, err := Descriptor{Name: "a"}.Compatible("v1.0.0")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("satisfied constraint passes", func(t *testing.T) {
		d := Descriptor{Name: "a", MinCLIVersion: ">=1.2.0"}
		ok, err := d.Compatible("v1.3.0")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unsatisfied constraint fails", func(t *testing.T) {
		d := Descriptor{Name: "a", MinCLIVersion: ">=2.0.0"}
		ok, err := d.Compatible("v1.3.0")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("dev build is never gated", func(t *testing.T) {
		d := Descriptor{Name: "a", MinCLIVersion: ">=2.0.0"}
		ok, err := d.Compatible("v0.0.0-dev")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unparsable CLI version is never gated", func(t *testing.T) {
		d := Descriptor{Name: "a", MinCLIVersion: ">=2.0.0"}
		ok, err := d.Compatible("not-a-version")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("bad constraint is an error", func(t *testing.T) {
		d := Descriptor{Name: "a", MinCLIVersion: "»1.0"}
		_, err := d.Compatible("v1.0.0")
		assert.Error(t, err)
	})
}
