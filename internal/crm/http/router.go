package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/pkg/httpx"
	"github.com/sellside/prospectd/pkg/slogx"

	_ "github.com/sellside/prospectd/api/crm" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	CRMService       *service.CRMService
	DashboardService *service.DashboardService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProspects()
	r.registerDeals()
	r.registerPayments()
	r.registerInteractions()
	r.registerBusinesses()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Prospectd CRM API
//	@version		0.1.0
//	@description	A small sales CRM: signup with email verification, JWT logins,
//	@description	API keys for automation, and a prospect/deal/payment/interaction
//	@description	pipeline with transactional cascade deletes.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token ("Bearer {token}") or issued API key ("ApiKey {key}").
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signup := &SignupHandler{AuthService: r.AuthService}
	verify := &VerifyCodeHandler{AuthService: r.AuthService}
	resend := &ResendCodeHandler{AuthService: r.AuthService}
	login := &LoginHandler{AuthService: r.AuthService}
	logout := &LogoutHandler{}
	me := &MeHandler{AuthService: r.AuthService}
	apiKey := &APIKeyHandler{AuthService: r.AuthService}
	reset := &ResetHandler{AuthService: r.AuthService}

	// Public credential endpoints get the strict per-IP limit: they are the
	// brute-force surface.
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(signup, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/verify-code",
		httpx.Chain(verify, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/resend-code",
		httpx.Chain(resend, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(login, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/request-reset",
		httpx.Chain(http.HandlerFunc(reset.HandleRequest), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/reset",
		httpx.Chain(http.HandlerFunc(reset.HandleReset), httpx.RateLimitByIP(httpx.StrictLimit)))

	authn := httpx.AuthnMiddleware(r.AuthService)

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(me, authn, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(logout, authn, httpx.RateLimitByUser(httpx.ModerateLimit)))

	// Key management is Bearer-only: an API key must not be able to mint or
	// revoke its replacement.
	r.Mux.Handle("POST /auth/generate-api-key",
		httpx.Chain(http.HandlerFunc(apiKey.HandleGenerate),
			authn, httpx.RequireBearer(), httpx.RateLimitByUser(httpx.ModerateLimit)))
	r.Mux.Handle("POST /auth/revoke-api-key",
		httpx.Chain(http.HandlerFunc(apiKey.HandleRevoke),
			authn, httpx.RequireBearer(), httpx.RateLimitByUser(httpx.ModerateLimit)))
}

func (r *Router) registerProspects() {
	h := &ProspectsHandler{CRMService: r.CRMService}
	authn := httpx.AuthnMiddleware(r.AuthService)
	limit := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /crm/prospects-data", httpx.Chain(http.HandlerFunc(h.HandleList), authn, limit))
	r.Mux.Handle("POST /crm/prospects", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn, limit))
	r.Mux.Handle("GET /crm/prospects/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn, limit))
	r.Mux.Handle("PUT /crm/prospects/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn, limit))
	r.Mux.Handle("DELETE /crm/prospects/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn, limit))
}

func (r *Router) registerDeals() {
	h := &DealsHandler{CRMService: r.CRMService}
	authn := httpx.AuthnMiddleware(r.AuthService)
	limit := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /crm/deals-data", httpx.Chain(http.HandlerFunc(h.HandleList), authn, limit))
	r.Mux.Handle("POST /crm/deals", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn, limit))
	r.Mux.Handle("GET /crm/deals/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn, limit))
	r.Mux.Handle("PUT /crm/deals/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn, limit))
	r.Mux.Handle("DELETE /crm/deals/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn, limit))
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{CRMService: r.CRMService}
	authn := httpx.AuthnMiddleware(r.AuthService)
	limit := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /crm/payments-data", httpx.Chain(http.HandlerFunc(h.HandleList), authn, limit))
	r.Mux.Handle("POST /crm/payments", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn, limit))
	r.Mux.Handle("GET /crm/payments/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn, limit))
	r.Mux.Handle("PUT /crm/payments/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn, limit))
	r.Mux.Handle("DELETE /crm/payments/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn, limit))
}

func (r *Router) registerInteractions() {
	h := &InteractionsHandler{CRMService: r.CRMService}
	authn := httpx.AuthnMiddleware(r.AuthService)
	limit := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /crm/interactions-data", httpx.Chain(http.HandlerFunc(h.HandleList), authn, limit))
	r.Mux.Handle("POST /crm/interactions", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn, limit))
	r.Mux.Handle("GET /crm/interactions/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn, limit))
	r.Mux.Handle("PUT /crm/interactions/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn, limit))
	r.Mux.Handle("DELETE /crm/interactions/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn, limit))
}

func (r *Router) registerBusinesses() {
	h := &BusinessesHandler{CRMService: r.CRMService}
	authn := httpx.AuthnMiddleware(r.AuthService)
	limit := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("POST /crm/add-business", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn, limit))
	r.Mux.Handle("GET /crm/businesses-data", httpx.Chain(http.HandlerFunc(h.HandleList), authn, limit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{
		AuthService:      r.AuthService,
		DashboardService: r.DashboardService,
	}

	r.Mux.Handle("GET /crm/dashboard-data",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.AuthService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health", &HealthHandler{
		Store:        r.store,
		BuildVersion: r.buildVersion,
		StartTime:    r.startTime,
	})
	r.Mux.Handle("GET /livez", &LivezHandler{BuildVersion: r.buildVersion, StartTime: r.startTime})
	r.Mux.Handle("GET /readyz", &ReadyzHandler{Store: r.store})
}
