package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
	"github.com/pmuller/led-matrix-enclosure/pkg/pipeline"
)

// newServeCmd creates the serve command: a small HTTP API that resolves
// layouts into module structures. It powers layout previews in a browser
// or script without a local toolchain install.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout previews as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			srv := &http.Server{
				Addr:              addr,
				Handler:           newServeHandler(pipeline.NewRunner(logger)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	return cmd
}

// moduleInfo is the JSON shape of one derived module.
type moduleInfo struct {
	Label       string   `json:"label"`
	InnerSize   string   `json:"inner_size"`
	Position    string   `json:"position"`
	InnerHeight float64  `json:"inner_height"`
	Borders     []string `json:"borders"`
	Connectors  int      `json:"connectors"`
	WireSlots   int      `json:"wire_slots"`
}

// layoutResponse is the JSON answer of the layout endpoint.
type layoutResponse struct {
	Size    string       `json:"size"`
	Pixels  string       `json:"pixels"`
	Panels  int          `json:"panels"`
	Split   string       `json:"split"`
	Modules []moduleInfo `json:"modules"`
}

// newServeHandler builds the HTTP routes.
func newServeHandler(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	r.Get("/api/v1/layout", func(w http.ResponseWriter, req *http.Request) {
		query := req.URL.Query()
		opts := pipeline.Options{
			Layout: query["row"],
			Split:  query.Get("split"),
		}
		resolveLayout(w, runner, opts)
	})

	r.Post("/api/v1/layout", func(w http.ResponseWriter, req *http.Request) {
		var opts pipeline.Options
		if err := json.NewDecoder(req.Body).Decode(&opts); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
			return
		}
		resolveLayout(w, runner, opts)
	})

	return r
}

func resolveLayout(w http.ResponseWriter, runner *pipeline.Runner, opts pipeline.Options) {
	if opts.Split == "" {
		opts.Split = pipeline.DefaultSplit
	}
	composite, modules, err := runner.Resolve(opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, panel.ErrInvalidLayout) || errors.Is(err, enclosure.ErrInvalidSplit) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}

	resp := layoutResponse{
		Size:   composite.Size().String(),
		Pixels: composite.Shape().String(),
		Panels: composite.PanelCount(),
		Split:  opts.Split,
	}
	for _, m := range modules {
		var borders []string
		for _, side := range m.Borders.Present() {
			borders = append(borders, side.String())
		}
		resp.Modules = append(resp.Modules, moduleInfo{
			Label:       m.Label(),
			InnerSize:   m.Inner.Size.String(),
			Position:    m.Inner.Position.String(),
			InnerHeight: m.InnerHeight,
			Borders:     borders,
			Connectors:  len(m.Connectors),
			WireSlots:   len(m.WireSlots),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
