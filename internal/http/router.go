package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterGraphQLRoutes mounts the query endpoint. GET with an HTML Accept
// header serves the GraphiQL explorer on the same path.
func (r *Router) RegisterGraphQLRoutes(schema graphql.Schema) {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
	r.mux.Handle("/graphql", h)
}

// RegisterOpsRoutes mounts /metrics (Prometheus) and /healthz.
func (r *Router) RegisterOpsRoutes(db *sql.DB) {
	r.mux.Handle("/metrics", promhttp.Handler())
	r.mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			r.logger.Warn("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
