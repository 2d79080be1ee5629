package cli

import (
	"context"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/session"
	"github.com/matzehuels/stepview/pkg/solver"
)

//go:embed static/index.html
var indexHTML []byte

// serveCommand runs the single-session web viewer.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web viewer",
		Long: `Serve a single-user page for choosing a problem file, sending it to the
solver and watching the playback in the browser.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = c.cfg.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8090)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	client, err := c.newClient()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(ctx, c.newSession(), client, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printSuccess("Viewer on %s", StyleLink.Render("http://localhost"+addr))
	printDetail("solver: %s", client.URL())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		// Also reached when the listener fails, which cancels gctx.
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// server exposes one [session.Session] over HTTP.
type server struct {
	ctx    context.Context
	sess   *session.Session
	runner session.Runner
	logger *log.Logger
}

// newServer returns a viewer whose playbacks live as long as ctx.
func newServer(ctx context.Context, sess *session.Session, runner session.Runner, logger *log.Logger) *server {
	return &server{ctx: ctx, sess: sess, runner: runner, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Post("/select", s.handleSelect)
		r.Post("/run", s.handleRun)
		r.Post("/cancel", s.handleCancel)
		r.Get("/status", s.handleStatus)
		r.Get("/frame.{format}", s.handleFrame)
	})
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http", "method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"took", time.Since(start).Round(time.Millisecond), "id", middleware.GetReqID(r.Context()))
	})
}

func (s *server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// handleSelect takes a multipart form with "algorithm" and "file" fields,
// the same shape the solver accepts.
func (s *server) handleSelect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, errors.MaxInputSize+64<<10)

	algo, err := solver.ParseAlgorithm(r.FormValue("algorithm"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "missing file"))
		return
	}
	defer file.Close()

	if err := errors.ValidateUploadFilename(hdr.Filename); err != nil {
		s.writeError(w, err)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, errors.MaxInputSize+1))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read upload"))
		return
	}
	if err := s.sess.Select(r.Context(), algo, hdr.Filename, string(data)); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatus(w, http.StatusOK)
}

// handleRun submits the selected input. Solver failures show up in the
// session output and in the response.
func (s *server) handleRun(w http.ResponseWriter, _ *http.Request) {
	if _, err := s.sess.Run(s.ctx, s.runner); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatus(w, http.StatusAccepted)
}

func (s *server) handleCancel(w http.ResponseWriter, _ *http.Request) {
	s.sess.Cancel()
	s.writeStatus(w, http.StatusOK)
}

func (s *server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeStatus(w, http.StatusOK)
}

func (s *server) handleFrame(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	scale := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("scale")); err == nil && v > 0 && v <= 4 {
		scale = v
	}
	data, err := s.sess.Export(r.Context(), format, scale)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

var contentTypes = map[string]string{
	session.FormatSVG: "image/svg+xml",
	session.FormatPNG: "image/png",
	session.FormatPDF: "application/pdf",
}

func (s *server) writeStatus(w http.ResponseWriter, code int) {
	writeJSON(w, code, s.sess.Snapshot())
}

type errorBody struct {
	Error  string           `json:"error"`
	Code   errors.Code      `json:"code,omitempty"`
	Status session.Snapshot `json:"status"`
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	s.logger.Warn("request failed", "err", err)
	writeJSON(w, errors.HTTPStatus(err), errorBody{
		Error:  errors.UserMessage(err),
		Code:   errors.GetCode(err),
		Status: s.sess.Snapshot(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
