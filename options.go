package cmmcassess

import (
	"strings"
	"time"

	"github.com/cmmc-tools/cmmc-assess/internal/util"
	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
)

type Option func(*AssessmentService) error

//
// apply all supplied options to the service
// returns any error encountered while applying the options
//
func (srvc *AssessmentService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(srvc); err != nil {
			return err
		}
	}
	return nil
}

//
// name of this service instance,
// if blank a short hashid name is generated
//
func Name(name string) Option {
	return func(s *AssessmentService) error {
		if name == "" {
			name = util.GenerateName()
		}
		s.serviceName = name
		return nil
	}
}

//
// id of this service instance,
// if blank a nuid is generated
//
func ID(id string) Option {
	return func(s *AssessmentService) error {
		if id == "" {
			id = util.GenerateID()
		}
		s.serviceID = id
		return nil
	}
}

//
// host address this service binds to
//
func Host(hostName string) Option {
	return func(s *AssessmentService) error {
		if hostName == "" {
			return errors.New("service host cannot be blank")
		}
		s.serviceHost = hostName
		return nil
	}
}

//
// port for this service,
// if 0 an available port is assigned
//
func Port(port int) Option {
	return func(s *AssessmentService) error {
		if port < 0 || port > 65535 {
			return errors.Errorf("invalid service port: %d", port)
		}
		if port == 0 {
			var err error
			port, err = util.AvailablePort()
			if err != nil {
				return errors.Wrap(err, "no service port supplied")
			}
		}
		s.servicePort = port
		return nil
	}
}

//
// the single browser origin allowed to call the api
//
func CORSOrigin(origin string) Option {
	return func(s *AssessmentService) error {
		if origin == "" {
			return errors.New("cors origin cannot be blank")
		}
		s.corsOrigin = origin
		return nil
	}
}

//
// maximum accepted request body, e.g. 100K, 1M
//
func BodyLimit(limit string) Option {
	return func(s *AssessmentService) error {
		if _, err := bytes.Parse(limit); err != nil {
			return errors.Wrapf(err, "invalid body limit %q", limit)
		}
		s.bodyLimit = limit
		return nil
	}
}

//
// maximum requests per client ip within window,
// a limit of 0 switches rate limiting off
//
func RateLimit(limit int, window time.Duration) Option {
	return func(s *AssessmentService) error {
		if limit < 0 {
			return errors.Errorf("invalid rate limit: %d", limit)
		}
		if limit > 0 && window <= 0 {
			return errors.Errorf("invalid rate window: %s", window)
		}
		s.rateLimit = limit
		s.rateWindow = window
		return nil
	}
}

//
// identify clients by the X-Forwarded-For header, only safe
// behind a proxy that overwrites it
//
func TrustProxy(trust bool) Option {
	return func(s *AssessmentService) error {
		s.trustProxy = trust
		return nil
	}
}

//
// logging level, one of debug|info|warn|error|off
//
func LogLevel(level string) Option {
	return func(s *AssessmentService) error {
		lvl, err := parseLogLevel(level)
		if err != nil {
			return err
		}
		s.logLevel = lvl
		return nil
	}
}

func parseLogLevel(level string) (log.Lvl, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, errors.Errorf("unknown log level: %s", level)
}
