package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-monolith/mono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisly/beauty-store/config"
	catalogmod "github.com/krisly/beauty-store/modules/catalog"
	notificationmod "github.com/krisly/beauty-store/modules/notification"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func call(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func hasNotice(notices []notificationmod.Notice, kind string) bool {
	for _, n := range notices {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

// mono resolves start order from a map, so every boot may start the
// modules in a different order.
func TestStoreAppBootsInAnyOrder(t *testing.T) {
	for i := range 5 {
		t.Run(fmt.Sprintf("boot %d", i), func(t *testing.T) {
			cfg := config.Config{
				DatabaseURL:      filepath.Join(t.TempDir(), "store.db"),
				DBMaxOpenConns:   1,
				HTTPPort:         freePort(t),
				CORSAllowOrigins: "*",
				SeedDemoData:     true,
				ShutdownTimeout:  5 * time.Second,
			}

			app, err := newStoreApp(cfg,
				mono.WithLogLevel(mono.LogLevelError),
				mono.WithNATSDontListen(),
				mono.WithNATSInProcessConn(),
			)
			require.NoError(t, err)

			ctx := context.Background()
			require.NoError(t, app.mono.Start(ctx))
			t.Cleanup(func() {
				assert.NoError(t, app.mono.Stop(context.Background()))
			})

			base := fmt.Sprintf("http://127.0.0.1:%d", cfg.HTTPPort)

			status, body := call(t, http.MethodGet, base+"/health", "")
			require.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, `{"status":"ok"}`, string(body))

			status, body = call(t, http.MethodGet, base+"/api/products", "")
			require.Equal(t, http.StatusOK, status)
			var products []catalogmod.ProductResponse
			require.NoError(t, json.Unmarshal(body, &products))
			require.Len(t, products, 3)
			assert.Equal(t, "Sombra Negra Colorida", products[0].Name)

			status, _ = call(t, http.MethodGet, base+"/health/modules", "")
			assert.Equal(t, http.StatusOK, status)

			status, _ = call(t, http.MethodPost, base+"/api/contact",
				`{"name":"Ana","email":"ana@example.com","subject":"Pedido","message":"¿Tienen envío gratis?"}`)
			require.Equal(t, http.StatusCreated, status)

			assert.Eventually(t, func() bool {
				return hasNotice(app.notifier.Notices(), notificationmod.KindContactMessage)
			}, 5*time.Second, 20*time.Millisecond)
		})
	}
}
