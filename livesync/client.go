package livesync

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/internal/ctxlog"
)

// Config holds the connection parameters for a dev-server session.
type Config struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// Client is one connected dev-server session.
type Client struct {
	io      *socket.Socket
	session string
}

// Connect dials the dev server and waits for the connection handshake.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	logger := ctxlog.FromContext(ctx).With("component", "livesync", "url", cfg.URL)
	logger.Info("Connecting to dev server...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dev server URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to dev server", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errs[0].(error)
		connectChan <- err
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("dev server connection failed: %w", err)
		}
		return &Client{io: io, session: uuid.NewString()}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while connecting to dev server")
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for dev server connection", timeout)
	}
}

// Session returns the session ID events are attributed to.
func (c *Client) Session() string {
	return c.session
}

// PublishCommit emits one kind's committed entry IDs.
func (c *Client) PublishCommit(ctx context.Context, kind engine.Kind, ids []engine.ID) error {
	logger := ctxlog.FromContext(ctx).With("component", "livesync", "kind", kind)

	rendered := make([]string, 0, len(ids))
	for _, id := range ids {
		rendered = append(rendered, id.String())
	}
	payload := map[string]any{
		"session": c.session,
		"kind":    string(kind),
		"entries": rendered,
	}
	logger.Debug("Publishing commit snapshot.", "entries", len(rendered))
	c.io.Emit("registry/commit", payload)
	return nil
}

// PublishGenerated emits the file list of a finished generation pass.
func (c *Client) PublishGenerated(ctx context.Context, files []string) error {
	logger := ctxlog.FromContext(ctx).With("component", "livesync")

	payload := map[string]any{
		"session": c.session,
		"files":   files,
	}
	logger.Debug("Publishing generated asset list.", "files", len(files))
	c.io.Emit("datagen/complete", payload)
	return nil
}

// Close disconnects from the dev server.
func (c *Client) Close() error {
	c.io.Disconnect()
	return nil
}
