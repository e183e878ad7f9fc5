package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/chart"
	"github.com/etnz/retrofit/renderer"
	"github.com/etnz/retrofit/view"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `rfx serve [-addr <host:port>]

  Serves the dashboard of the input portfolio:

    GET /api/dashboard          chart bundle, JSON
    GET /api/cards              KPI cards, JSON
    GET /charts/<id>.svg        one chart, SVG
    GET /dashboard?section=epc  dashboard page, HTML, drawer=<section>
                                adds the section details
    GET /healthz                liveness probe
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address. Defaults to $RFX_ADDR, then :8080.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	// Fail before listening if the portfolio cannot be aggregated.
	if _, err := newDashboard(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	addr := envOr(c.addr, "RFX_ADDR", ":8080")
	srv := &fasthttp.Server{
		Handler:      newServer(p).handle,
		Name:         "rfx",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", addr).Msg("serving dashboard")
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error serving on %q: %v\n", addr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// server answers dashboard requests for a fixed portfolio. Every request
// aggregates its own dashboard.
type server struct {
	portfolio retrofit.Portfolio
}

func newServer(p retrofit.Portfolio) *server { return &server{portfolio: p} }

// errorResponse is the JSON body of a failed API request.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *server) handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	defer func() {
		log.Info().
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}()

	if !ctx.IsGet() && !ctx.IsHead() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := string(ctx.Path())
	if id, ok := strings.CutPrefix(path, "/charts/"); ok && strings.HasSuffix(id, ".svg") {
		s.svg(ctx, strings.TrimSuffix(id, ".svg"))
		return
	}

	switch path {
	case "/healthz":
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("ok\n")
	case "/api/dashboard":
		s.bundle(ctx)
	case "/api/cards":
		s.cards(ctx)
	case "/", "/dashboard":
		s.page(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *server) dashboard(ctx *fasthttp.RequestCtx) (*retrofit.Dashboard, bool) {
	d, err := newDashboard(s.portfolio)
	if err != nil {
		log.Error().Err(err).Msg("computing dashboard")
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return nil, false
	}
	return d, true
}

func (s *server) bundle(ctx *fasthttp.RequestCtx) {
	d, ok := s.dashboard(ctx)
	if !ok {
		return
	}
	b, err := chart.BuildBundle(d)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, b)
}

func (s *server) cards(ctx *fasthttp.RequestCtx) {
	d, ok := s.dashboard(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, d.Cards())
}

func (s *server) svg(ctx *fasthttp.RequestCtx, id string) {
	d, ok := s.dashboard(ctx)
	if !ok {
		return
	}
	svg := renderer.NewSVGCharts()
	if err := chart.Adapt(d, svg); err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	img, ok := svg.Charts[id]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("no chart %q", id))
		return
	}
	ctx.SetContentType("image/svg+xml")
	ctx.SetBody(img)
}

func (s *server) page(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	sec, err := view.ParseSection(string(args.Peek("section")))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	st := view.State{}.Activate(sec)
	if args.Has("drawer") {
		drawer, err := view.ParseSection(string(args.Peek("drawer")))
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		st = st.OpenDrawer(drawer)
	}
	d, ok := s.dashboard(ctx)
	if !ok {
		return
	}
	md, err := renderer.RenderDashboard(d, st)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	page, err := renderer.HTMLPage("Retrofit dashboard", md)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetBodyString(page)
}

func writeJSON(ctx *fasthttp.RequestCtx, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(errorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
