// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: nvim/client.go
// Summary: Embedded Neovim child process and the RPC session around it.
// Usage: Spawn, then Attach with the surface size and a batch channel; Serve
//        blocks until the editor exits. The client is the screen's input
//        sink.
// Notes: The redraw handler runs on the RPC goroutine. It only decodes and
//        hands off; grid state belongs to the UI loop.

package nvim

import (
	"context"
	"fmt"
	"log"

	govim "github.com/neovim/go-client/nvim"

	"neoview/redraw"
)

// Client wraps one embedded editor process.
type Client struct {
	v       *govim.Nvim
	batches chan<- []redraw.Command
}

// Spawn starts the editor as a child process speaking msgpack-rpc on its
// stdio. extraArgs come after --embed, so the user can pass files to open.
func Spawn(ctx context.Context, path string, extraArgs []string) (*Client, error) {
	args := append([]string{"--embed"}, extraArgs...)
	v, err := govim.NewChildProcess(
		govim.ChildProcessContext(ctx),
		govim.ChildProcessCommand(path),
		govim.ChildProcessArgs(args...),
		govim.ChildProcessServe(false),
	)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", path, err)
	}
	return &Client{v: v}, nil
}

// Attach subscribes to the redraw stream and attaches the UI at the given
// size. Decoded batches go to the channel in notification order.
func (c *Client) Attach(columns, rows int, batches chan<- []redraw.Command) error {
	c.batches = batches
	if err := c.v.RegisterHandler("redraw", c.onRedraw); err != nil {
		return fmt.Errorf("register redraw handler: %w", err)
	}
	opts := map[string]interface{}{
		"rgb":          true,
		"ext_linegrid": true,
	}
	if err := c.v.AttachUI(columns, rows, opts); err != nil {
		return fmt.Errorf("attach ui %dx%d: %w", columns, rows, err)
	}
	return nil
}

func (c *Client) onRedraw(updates ...[]interface{}) {
	batch := Decode(updates)
	if len(batch) == 0 {
		return
	}
	c.batches <- batch
}

// Serve pumps the RPC session. It returns when the editor process closes its
// side, which is the normal shutdown signal.
func (c *Client) Serve() error {
	return c.v.Serve()
}

// SendInput forwards keys in the editor's input notation.
func (c *Client) SendInput(keys string) error {
	written, err := c.v.Input(keys)
	if err != nil {
		return err
	}
	if written < len(keys) {
		log.Printf("Nvim: input truncated, %d of %d bytes written", written, len(keys))
	}
	return nil
}

// ResizeUI asks the editor to adopt the new surface size. The editor answers
// with grid_resize when it does.
func (c *Client) ResizeUI(columns, rows int) error {
	return c.v.TryResizeUI(columns, rows)
}

// Quit asks the editor to exit, discarding unsaved changes. Errors are
// expected when the process is already gone.
func (c *Client) Quit() {
	if err := c.v.Command("qa!"); err != nil {
		log.Printf("Nvim: quit command failed: %v", err)
	}
}

// Close tears the session down without asking the editor first.
func (c *Client) Close() error {
	return c.v.Close()
}
