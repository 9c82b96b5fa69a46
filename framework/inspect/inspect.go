// Package inspect serves a read-only JSON view of a Ready container.
//
//	GET /beans          every managed instance and what its fields are wired to
//	GET /beans/{type}   one instance by concrete type, e.g. /beans/*demo.ServiceA
//	GET /healthz        container state
package inspect

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-beans/framework/container"
	gohttp "github.com/km-arc/go-beans/framework/http"
	"github.com/km-arc/go-beans/framework/routing"
)

// Health is the body of GET /healthz.
type Health struct {
	State string `json:"state"`
	Beans int    `json:"beans"`
}

// NewHandler returns the inspection routes for c.
func NewHandler(c *container.Container, log zerolog.Logger) http.Handler {
	r := routing.New(log)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).NotFound()
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		res := gohttp.NewResponse(w)
		if c.State() != container.StateReady {
			res.ServiceUnavailable(fmt.Sprintf("Container is %s.", c.State()))
			return
		}
		res.Success(Health{State: c.State().String(), Beans: c.Len()})
	})

	r.Prefix("/beans", func(beans *routing.Router) {
		beans.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			gohttp.NewResponse(w).Success(c.Beans())
		})

		beans.Get("/{type}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)

			name, err := url.PathUnescape(routing.Param(req, "type"))
			if err != nil {
				res.NotFound()
				return
			}
			info, ok := c.Bean(name)
			if !ok {
				res.NotFound(fmt.Sprintf("No bean of type %s.", name))
				return
			}
			res.Success(info)
		})
	})

	return r
}
