package router

import (
	"net/http"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/logger"
)

type router struct {
	controller     *dashboard.Controller
	logger         *logger.Logger
	trustedOrigins []string
}

// New wires the dashboard HTTP adapter around controller. Commands posted
// from origins other than the request host are rejected unless listed in
// trustedOrigins.
func New(controller *dashboard.Controller, logger *logger.Logger, trustedOrigins []string) http.Handler {
	router := &router{
		controller:     controller,
		logger:         logger.Component("router"),
		trustedOrigins: trustedOrigins,
	}

	mux := http.NewServeMux()

	// Routes
	mux.HandleFunc("GET /{$}", router.homeHandler)
	mux.HandleFunc("GET /api/dashboard", router.dashboardHandler)
	mux.HandleFunc("POST /api/commands", router.commandHandler)
	mux.HandleFunc("GET /api/orders", router.ordersHandler)
	mux.HandleFunc("GET /api/orders.csv", router.ordersCSVHandler)

	var handler http.Handler = mux
	handler = csrfProtectionMiddleware(router.logger, router.trustedOrigins, handler)
	handler = xFrameDenyHeaderMiddleware(handler)
	handler = loggingMiddleware(router.logger, handler)

	return handler
}
