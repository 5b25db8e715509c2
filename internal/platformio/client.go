// Package platformio wraps the PlatformIO CLI: project initialization and
// board catalog queries.
package platformio

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/stm32pio/stm32pio/internal/settings"
)

var execCommand = exec.CommandContext

// Board is one PlatformIO board definition, decoded from
// `platformio boards --json-output`.
type Board struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	MCU      string `json:"mcu"`
}

// Client shells out to the PlatformIO CLI. A fetched boards list is served
// from memory for settings.PIOBoardsCacheLifetime before the tool is
// queried again; everything else is uncached.
type Client struct {
	cmd string

	mu        sync.Mutex
	boards    []Board
	fetchedAt time.Time
	now       func() time.Time
}

// NewClient creates a Client around the given PlatformIO command (bare
// name or full path).
func NewClient(cmd string) *Client {
	return &Client{cmd: cmd, now: time.Now}
}

// Cmd returns the wrapped PlatformIO command.
func (c *Client) Cmd() string { return c.cmd }

// Boards returns the PlatformIO board catalog, optionally filtered by a
// case-insensitive substring of the board ID or name.
func (c *Client) Boards(ctx context.Context, query string) ([]Board, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.boards == nil || c.now().Sub(c.fetchedAt) > settings.PIOBoardsCacheLifetime {
		out, err := execCommand(ctx, c.cmd, "boards", "--json-output").Output()
		if err != nil {
			return nil, fmt.Errorf("platformio boards: %w", err)
		}
		var boards []Board
		if err := json.Unmarshal(out, &boards); err != nil {
			return nil, fmt.Errorf("parse boards listing: %w", err)
		}
		c.boards = boards
		c.fetchedAt = c.now()
	}

	if query == "" {
		return slices.Clone(c.boards), nil
	}
	query = strings.ToLower(query)
	var filtered []Board
	for _, b := range c.boards {
		if strings.Contains(strings.ToLower(b.ID), query) || strings.Contains(strings.ToLower(b.Name), query) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// ProjectInit runs `platformio project init` in dir, for the given board
// when one is set. The combined output is returned for logging.
func (c *Client) ProjectInit(ctx context.Context, dir, board string) (string, error) {
	args := []string{"project", "init", "--project-dir", dir}
	if board != "" {
		args = append(args, "--board", board)
	}
	out, err := execCommand(ctx, c.cmd, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("platformio project init: %w", err)
	}
	return string(out), nil
}
