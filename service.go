package cmmcassess

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cmmc-tools/cmmc-assess/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
)

// DefaultRateWindow is the window the default rate limit applies to.
const DefaultRateWindow = 15 * time.Minute

type AssessmentService struct {
	// embedded web server to handle assessment requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// the browser origin allowed by cors
	corsOrigin string
	// maximum request body size
	bodyLimit string
	// requests allowed per client ip within rateWindow, 0 disables
	rateLimit  int
	rateWindow time.Duration
	// take the client ip from X-Forwarded-For set by a trusted proxy
	trustProxy bool
	// logging level for the embedded server
	logLevel log.Lvl
}

//
// create a new service instance
//
func New(options ...Option) (*AssessmentService, error) {

	srvc := AssessmentService{
		serviceHost: "localhost",
		corsOrigin:  "http://localhost:8080",
		bodyLimit:   "100K",
		rateLimit:   100,
		rateWindow:  DefaultRateWindow,
		logLevel:    log.INFO,
	}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}
	if srvc.serviceName == "" {
		srvc.serviceName = util.GenerateName()
	}
	if srvc.serviceID == "" {
		srvc.serviceID = util.GenerateID()
	}

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(srvc.logLevel)
	srvc.e.HTTPErrorHandler = srvc.errorHandler
	// the rate limiter keys on the client ip, forwarding headers are
	// client controlled unless a proxy in front of us rewrites them
	srvc.e.IPExtractor = echo.ExtractIPDirect()
	if srvc.trustProxy {
		srvc.e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	srvc.e.Use(middleware.Recover())
	srvc.e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: util.GenerateID,
	}))
	// method, path, status and timing only, request bodies carry
	// assessment data and are never logged
	srvc.e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(echo.Context) bool { return srvc.logLevel == log.OFF },
		Format:  "${time_rfc3339} ${id} ${method} ${path} ${status} ${latency_human}\n",
	}))
	srvc.e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ContentSecurityPolicy: "default-src 'self'",
	}))
	srvc.e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{srvc.corsOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	srvc.e.Use(middleware.BodyLimit(srvc.bodyLimit))
	if srvc.rateLimit > 0 {
		srvc.e.Use(srvc.rateLimiter())
	}

	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	srvc.e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := srvc.e.Group("/api")
	api.GET("/controls", srvc.controlsHandler)
	api.POST("/score", srvc.scoreHandler)
	api.POST("/ssp", srvc.sspHandler)

	return &srvc, nil
}

//
// per client ip token bucket; the full allowance is available
// at once and refills evenly across the window
//
func (s *AssessmentService) rateLimiter() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(s.rateLimit) / s.rateWindow.Seconds()),
		Burst:     s.rateLimit,
		ExpiresIn: s.rateWindow,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	})
}

//
// start the service running
//
func (s *AssessmentService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			s.e.Logger.Error("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// shut the server down gracefully
//
func (s *AssessmentService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}

}

//
// the http handler serving the api, useful when embedding
// the service in another server
//
func (s *AssessmentService) Handler() http.Handler {
	return s.e
}

func (s *AssessmentService) PrintConfig() {

	fmt.Println("\n\tCMMC Assessment Service Configuration")
	fmt.Println("\t-------------------------------------")

	s.printID()
	s.printBoundaryConfig()
	fmt.Println()

}

func (s *AssessmentService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *AssessmentService) printBoundaryConfig() {
	fmt.Println("\tcors origin:\t\t", s.corsOrigin)
	fmt.Println("\tbody limit:\t\t", s.bodyLimit)
	if s.rateLimit == 0 {
		fmt.Println("\trate limit:\t\t off")
		return
	}
	fmt.Printf("\trate limit:\t\t %d per %s\n", s.rateLimit, s.rateWindow)
	fmt.Println("\ttrust proxy:\t\t", s.trustProxy)
}
