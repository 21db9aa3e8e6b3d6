package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinSchema(t *testing.T) {
	host, gen := newTestSetup()

	node, err := gen.Build(host.Resolve(testUser{}))
	require.NoError(t, err)

	converted, err := KinSchema(node)
	require.NoError(t, err)

	assert.Equal(t, "object", converted.Type)
	require.Contains(t, converted.Properties, "name")
	assert.Equal(t, "string", converted.Properties["name"].Value.Type)
	require.Contains(t, converted.Properties, "home")
	assert.Equal(t, "#/components/schemas/testAddress", converted.Properties["home"].Ref)
}

func TestKinComponents(t *testing.T) {
	host, gen := newTestSetup()

	schemas, err := Components(gen, host.Resolve(testUser{}))
	require.NoError(t, err)

	converted, err := KinComponents(schemas)
	require.NoError(t, err)

	require.Len(t, converted, 2)
	require.Contains(t, converted, "testUser")
	require.Contains(t, converted, "testAddress")
	assert.Equal(t, "object", converted["testAddress"].Value.Type)
}
