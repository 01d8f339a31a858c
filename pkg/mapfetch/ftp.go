// Package mapfetch retrieves a mapping table's flat file from a remote
// FTP host before mapload reads it.
package mapfetch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

// Client downloads mapping table files over FTP.
type Client struct {
	timeout time.Duration
	conn    *ftp.ServerConn
	host    string
}

// NewClient builds a Client with the given timeout (60s if zero).
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{timeout: timeout}
}

// Connect establishes a connection to host, logging in anonymously.
func (c *Client) Connect(ctx context.Context, host string) error {
	if !strings.Contains(host, ":") {
		host = host + ":21"
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(c.timeout))
	if err != nil {
		return fmt.Errorf("connecting to FTP server: %w", err)
	}

	if err := conn.Login("anonymous", "anonymous@"); err != nil {
		conn.Quit()
		return fmt.Errorf("FTP login: %w", err)
	}

	c.conn = conn
	c.host = host
	return nil
}

// Close closes the FTP connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Quit()
	}
	return nil
}

// Fetch downloads the file at remotePath and returns its contents.
func (c *Client) Fetch(ctx context.Context, remotePath string) ([]byte, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("mapfetch: not connected")
	}

	resp, err := c.conn.Retr(remotePath)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s: %w", remotePath, err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", remotePath, err)
	}
	return data, nil
}
