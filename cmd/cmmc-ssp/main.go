//
// cmmc-ssp turns an exported assessment file into a System Security
// Plan and prints its SPRS score summary. Scoring is done locally unless
// -server names a running cmmc-assess api.
//
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmmc-tools/cmmc-assess/internal/assessment"
	"github.com/cmmc-tools/cmmc-assess/internal/scoring"
	"github.com/cmmc-tools/cmmc-assess/internal/ssp"
	"github.com/cmmc-tools/cmmc-assess/internal/util"
	"github.com/labstack/gommon/log"
	"github.com/peterbourgon/ff/v3"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cmmc-ssp: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cmmc-ssp", flag.ContinueOnError)
	fs.SetOutput(stdout)
	var (
		in       = fs.String("in", "", "assessment file to read (.json, .yaml or .yml)")
		outDir   = fs.String("out", ".", "directory the SSP file is written to")
		server   = fs.String("server", "", "base url of a cmmc-assess api, e.g. http://localhost:3000; blank scores locally")
		logLevel = fs.String("log-level", "warn", "log level: debug|info|warn|error|off")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("CMMC_SSP")); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *in == "" {
		return errors.New("an assessment file must be supplied with -in")
	}
	if lvl, ok := logLevels[strings.ToLower(*logLevel)]; ok {
		log.SetLevel(lvl)
	}

	defer util.TimeTrack(time.Now(), "cmmc-ssp")

	a, body, err := assessment.LoadFile(*in)
	if err != nil {
		return err
	}

	var (
		doc   string
		score scoring.Result
	)
	if *server == "" {
		score = scoring.Calculate(a.Responses)
		doc = ssp.Generate(a)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if score, err = remoteScore(ctx, *server, body); err != nil {
			return err
		}
		if doc, err = remoteSSP(ctx, *server, body); err != nil {
			return err
		}
	}

	path := filepath.Join(*outDir, ssp.FileName(a.OrgInfo.OrgName, time.Now()))
	if err := ioutil.WriteFile(path, []byte(doc), 0644); err != nil {
		return errors.Wrap(err, "cannot write SSP")
	}

	printSummary(stdout, score, a.OrgInfo.Level())
	fmt.Fprintf(stdout, "SSP written:  %s\n", path)
	return nil
}

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// printSummary writes the console summary; only SPRS and the level
// tallies of res are read, so a remote score needs no domain breakdown.
func printSummary(w io.Writer, res scoring.Result, target int) {
	fmt.Fprintf(w, "SPRS score:   %d / %d\n", res.SPRS, scoring.MaxSPRS)
	for _, n := range []int{1, 2} {
		l := res.Level(n)
		fmt.Fprintf(w, "Level %d:      %d / %d met (%d%%) %s\n", n, l.Met, l.Total, l.Percent(), achieved(l))
	}
	fmt.Fprintf(w, "Target:       CMMC Level %d %s\n", target, achieved(res.Level(target)))
}

func achieved(l scoring.LevelScore) string {
	if l.Achieved {
		return "Achieved"
	}
	return "Not Achieved"
}

func post(ctx context.Context, server, path string, body []byte) ([]byte, error) {
	url := strings.TrimRight(server, "/") + path
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	log.Debugf("POST %s", url)

	reply, err := util.Fetch(ctx, http.MethodPost, url, headers, bytes.NewReader(body))
	if err != nil {
		var se *util.StatusError
		if errors.As(err, &se) {
			if msg := gjson.GetBytes(se.Body, "error"); msg.Exists() {
				return nil, errors.Errorf("%s rejected the assessment (%d): %s", url, se.StatusCode, msg.String())
			}
		}
		return nil, errors.Wrapf(err, "calling %s", url)
	}
	return reply, nil
}

func remoteScore(ctx context.Context, server string, body []byte) (scoring.Result, error) {
	// the score endpoint insists on a responses object
	responses := gjson.GetBytes(body, "responses").Raw
	if responses == "" || responses == "null" {
		responses = "{}"
	}
	reply, err := post(ctx, server, "/api/score", []byte(`{"responses":`+responses+`}`))
	if err != nil {
		return scoring.Result{}, err
	}
	sprs := gjson.GetBytes(reply, "sprs")
	if !sprs.Exists() {
		return scoring.Result{}, errors.New("score reply carries no sprs value")
	}
	level := func(r gjson.Result) scoring.LevelScore {
		return scoring.LevelScore{
			Met:      int(r.Get("met").Int()),
			Total:    int(r.Get("total").Int()),
			Achieved: r.Get("achieved").Bool(),
		}
	}
	return scoring.Result{
		SPRS: int(sprs.Int()),
		L1:   level(gjson.GetBytes(reply, "l1")),
		L2:   level(gjson.GetBytes(reply, "l2")),
	}, nil
}

func remoteSSP(ctx context.Context, server string, body []byte) (string, error) {
	reply, err := post(ctx, server, "/api/ssp", body)
	if err != nil {
		return "", err
	}
	doc := gjson.GetBytes(reply, "ssp")
	if doc.Type != gjson.String {
		return "", errors.New("ssp reply carries no document")
	}
	return doc.Str, nil
}
