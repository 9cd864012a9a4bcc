package cmmcassess

import (
	"bytes"
	"io/ioutil"
	"net/http"

	"github.com/cmmc-tools/cmmc-assess/internal/assessment"
	"github.com/cmmc-tools/cmmc-assess/internal/catalog"
	"github.com/cmmc-tools/cmmc-assess/internal/scoring"
	"github.com/cmmc-tools/cmmc-assess/internal/ssp"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// reply to GET /api/controls, weights are never included
//
type ControlsResponse struct {
	Domains  []catalog.Domain        `json:"domains"`
	Controls []catalog.PublicControl `json:"controls"`
}

//
// reply to POST /api/ssp
//
type SSPResponse struct {
	SSP string `json:"ssp"`
}

func (s *AssessmentService) controlsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, ControlsResponse{
		Domains:  catalog.Domains(),
		Controls: catalog.PublicControls(),
	})
}

//
// POST /api/score
// body: {"responses": {"<control id>": "met|partial|not-met|na", ...}}
// unknown control ids and status tokens are rejected here, before the
// (deliberately permissive) scoring engine sees them
//
func (s *AssessmentService) scoreHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be valid JSON")
	}

	responses := gjson.GetBytes(body, "responses")
	if err := assessment.ValidateResponses(responses); err != nil {
		return badRequest(err)
	}

	result := scoring.Calculate(assessment.ResponsesFrom(responses))
	c.Logger().Debugf("scored %d responses, sprs %d", len(responses.Map()), result.SPRS)

	return c.JSON(http.StatusOK, result)
}

//
// POST /api/ssp
// body: {"responses": {...}, "orgInfo": {...}, "notes": {...}}
// every member is optional, missing members are treated as empty
//
func (s *AssessmentService) sspHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	if err := assessment.ValidateDocument(body, false); err != nil {
		return badRequest(err)
	}

	doc := ssp.Generate(assessment.Parse(body))

	return c.JSON(http.StatusOK, SSPResponse{SSP: doc})
}

// an empty body reads as {}, so a missing member gets its field
// error rather than a parse error
func readBody(c echo.Context) ([]byte, error) {
	body, err := ioutil.ReadAll(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			// body limit exceeded
			return nil, he
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "cannot read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return []byte("{}"), nil
	}
	return body, nil
}

func badRequest(err error) error {
	if assessment.IsValidationError(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
