package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeviz/pkg/render"
)

// newServeCmd creates the serve command for previewing a dump in the
// browser.
func newServeCmd() *cobra.Command {
	var (
		addr     string
		noConfig bool
	)

	cmd := &cobra.Command{
		Use:   "serve [ast-file]",
		Short: "Serve a live preview of the rendered tree over HTTP",
		Long: `Serve a live preview of the rendered tree over HTTP.

The input file is re-parsed and re-rendered on every request, so editing
the dump and refreshing the browser shows the new tree immediately.

Endpoints:
  GET /      HTML page embedding the diagram
  GET /svg   rendered SVG
  GET /png   rendered PNG`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], addr, noConfig)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:7878", "listen address")
	cmd.Flags().BoolVar(&noConfig, "no-config", false, "ignore the user config file")

	return cmd
}

// previewServer renders a single dump file on demand.
type previewServer struct {
	input    string
	noConfig bool
	logger   *charmlog.Logger
}

// runServe starts the preview server and blocks until ctx is cancelled.
func runServe(ctx context.Context, input, addr string, noConfig bool) error {
	logger := loggerFromContext(ctx)

	// Fail fast on unreadable input before binding the socket.
	if _, err := loadTree(input); err != nil {
		return err
	}

	ps := &previewServer{input: input, noConfig: noConfig, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(ps.requestLogger)
	r.Get("/", ps.handleIndex)
	r.Get("/svg", ps.handleImage(render.FormatSVG, "image/svg+xml"))
	r.Get("/png", ps.handleImage(render.FormatPNG, "image/png"))

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving %s on http://%s", input, addr)
	printInfo("Preview at http://%s (Ctrl+C to stop)", addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestLogger logs one line per request with a generated request id.
func (s *previewServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s (%s) [%s]", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond), id)
	})
}

// renderCurrent re-parses the input file and renders it to format.
func (s *previewServer) renderCurrent(ctx context.Context, format render.Format) ([]byte, error) {
	cfg, err := loadConfig(s.noConfig)
	if err != nil {
		return nil, err
	}

	root, err := loadTree(s.input)
	if err != nil {
		return nil, err
	}

	dot := render.ToDOT(root, render.Options{
		Direction: cfg.Direction,
		Palette:   cfg.Palette(),
	})
	return render.Render(ctx, dot, format)
}

// handleImage renders the tree to format on every request.
func (s *previewServer) handleImage(format render.Format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.renderCurrent(r.Context(), format)
		if err != nil {
			s.logger.Errorf("render %s: %v", format, err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}

// handleIndex serves a minimal HTML page embedding the SVG.
func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexHTML, s.input)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>treeviz: %s</title></head>
<body style="margin:0;background:#fafafa">
  <img src="/svg" style="display:block;margin:2rem auto;max-width:95%%">
</body>
</html>
`
