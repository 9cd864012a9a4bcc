package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cmmcassess "github.com/cmmc-tools/cmmc-assess"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	fs := flag.NewFlagSet("cmmc-assess", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this assessment service instance, leave blank to auto-generate a name")
		serviceID   = fs.String("id", "", "id for this assessment service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 3000, "port to run service on, 0 will assign an available port automatically")
		corsOrigin  = fs.String("cors-origin", "http://localhost:8080", "browser origin allowed to call the api")
		bodyLimit   = fs.String("body-limit", "100K", "maximum request body size")
		rateLimit   = fs.Int("rate-limit", 100, "requests allowed per client ip within the rate window, 0 disables rate limiting")
		rateWindow  = fs.Duration("rate-window", cmmcassess.DefaultRateWindow, "rate limiting window")
		trustProxy  = fs.Bool("trust-proxy", false, "identify clients by X-Forwarded-For, enable only behind a reverse proxy")
		logLevel    = fs.String("log-level", "info", "log level: debug|info|warn|error|off")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("CMMC_ASSESS"),
	); err != nil {
		fmt.Printf("\nCannot read cmmc-assess configuration:\n%s\n\n", err)
		os.Exit(1)
	}

	opts := []cmmcassess.Option{
		cmmcassess.Name(*serviceName),
		cmmcassess.ID(*serviceID),
		cmmcassess.Host(*serviceHost),
		cmmcassess.Port(*servicePort),
		cmmcassess.CORSOrigin(*corsOrigin),
		cmmcassess.BodyLimit(*bodyLimit),
		cmmcassess.RateLimit(*rateLimit, *rateWindow),
		cmmcassess.TrustProxy(*trustProxy),
		cmmcassess.LogLevel(*logLevel),
	}

	srvc, err := cmmcassess.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create cmmc-assess service:\n%s\n\n", err)
		os.Exit(1)
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\ncmmc-assess shutting down")
		srvc.Shutdown()
		fmt.Println("cmmc-assess closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
