package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// maxLineBytes caps a single newline-delimited message on stdio.
const maxLineBytes = 1024 * 1024

// ServeStdio runs the newline-delimited JSON-RPC loop over the given reader
// and writer until the reader is exhausted or the context is cancelled.
// Messages are handled serially so responses leave in request order.
func ServeStdio(ctx context.Context, server *Server, r io.Reader, w io.Writer) error {
	lines := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			// Copy before handing off: the scanner reuses its buffer.
			line := make([]byte, len(scanner.Bytes()))
			copy(line, scanner.Bytes())
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	slog.Info("stdio transport ready")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
				default:
				}
				slog.Info("stdio transport closed")
				return nil
			}
			if len(line) == 0 {
				continue
			}
			resp := server.HandleMessage(ctx, line)
			if resp == nil {
				continue
			}
			data, err := json.Marshal(resp)
			if err != nil {
				return fmt.Errorf("marshal response: %w", err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return fmt.Errorf("write stdout: %w", err)
			}
		}
	}
}
