package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisly/beauty-store/internal/storetest"
	"github.com/krisly/beauty-store/modules/database"
)

func TestModuleLifecycle(t *testing.T) {
	ctx := context.Background()

	m := NewModule(storetest.Logger())
	assert.Equal(t, "cart", m.Name())
	assert.Nil(t, m.Port())
	require.Error(t, m.Start(ctx))

	plugin := database.NewPluginModule(database.Config{URL: "file:cart_module?mode=memory&cache=shared"}, storetest.Logger())
	require.NoError(t, plugin.Start(ctx))
	t.Cleanup(func() { _ = plugin.Stop(ctx) })

	m.SetPlugin(database.PluginAlias, plugin)
	require.NoError(t, m.Start(ctx))
	require.NotNil(t, m.Port())

	c, err := m.Port().Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	require.NoError(t, m.Stop(ctx))
}
