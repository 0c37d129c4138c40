package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/algoarena/backend/auth"
	logpkg "github.com/algoarena/backend/logger"
	"github.com/algoarena/backend/sandbox"
	"github.com/algoarena/backend/subm"
	"github.com/algoarena/backend/task"
)

type ctxKey string

const claimsCtxKey ctxKey = "claims"

type HttpServer struct {
	submSrvc *subm.SubmSrvc
	taskSrvc *task.TaskSrvc
	sandbox  *sandbox.Client
	router   *chi.Mux
}

func NewHttpServer(
	submSrvc *subm.SubmSrvc,
	taskSrvc *task.TaskSrvc,
	sandboxCl *sandbox.Client,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("algoarena", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	// make the request-scoped logger available to services
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logpkg.WithLogger(r.Context(), httplog.LogEntry(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(getJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		submSrvc: submSrvc,
		taskSrvc: taskSrvc,
		sandbox:  sandboxCl,
		router:   router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/submissions", httpserver.createSubmission)
	r.Get("/submissions", httpserver.listSubmissions)
	r.Get("/submissions/{submUuid}", httpserver.getSubmission)
	r.Post("/run", httpserver.runCode)
	r.Get("/languages", httpserver.listLanguages)
	r.Get("/tasks", httpserver.listTasks)
	r.Get("/tasks/{taskShortId}", httpserver.getTask)
}

// getJwtAuthMiddleware extracts and validates an optional bearer
// token. Requests without a token proceed anonymously.
func getJwtAuthMiddleware(jwtKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				if errors.Is(err, request.ErrNoTokenInRequest) {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateJWT(token, jwtKey)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsCtxKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(claimsCtxKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
