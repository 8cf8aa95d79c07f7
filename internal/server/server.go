package server

import (
	"context"

	"github.com/buaazp/fasthttprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/lueurxax/linked-list/internal/log"
)

const addrKey = "addr"

type Server interface {
	// Serve blocks until ctx is done or the listener fails.
	Serve(ctx context.Context) error
	Handler() fasthttp.RequestHandler
}

type server struct {
	addr    string
	handler fasthttp.RequestHandler

	log log.Logger
}

func (s *server) Serve(ctx context.Context) error {
	srv := &fasthttp.Server{Handler: s.handler, Name: "linked-list"}

	go func() {
		<-ctx.Done()

		if err := srv.Shutdown(); err != nil {
			s.log.WithError(err).Error("shutdown")
		}
	}()

	s.log.WithField(addrKey, s.addr).Info("metrics server started")

	return srv.ListenAndServe(s.addr)
}

func (s *server) Handler() fasthttp.RequestHandler {
	return s.handler
}

func health(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("ok")
}

// NewServer exposes gatherer on GET /metrics and a liveness probe on GET /health.
func NewServer(addr string, gatherer prometheus.Gatherer, logger log.Logger) Server {
	router := fasthttprouter.New()
	router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/health", health)

	return &server{addr: addr, handler: router.Handler, log: logger}
}
