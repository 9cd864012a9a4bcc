//
// web service that lets an organization self-assess against the
// CMMC 2.0 / NIST SP 800-171 control catalog.
// the service returns the catalog (without scoring weights), computes
// the SPRS score and level achievement for a set of responses, and
// renders a plain-text System Security Plan.
// the service is stateless, nothing about an assessment is kept
// once the response has been sent.
//
package cmmcassess
