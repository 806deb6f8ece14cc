package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// embeddedCatalog is the stock champion list used when no catalog is given.
//
//go:embed data/champs.json
var embeddedCatalog string

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeRequest struct {
	Target           int             `json:"target"`
	ExcludeChampions []string        `json:"excludeChampions"`
	ExcludeTraits    []string        `json:"excludeTraits"`
	Bound            BoundMode       `json:"bound"`
	Champions        json.RawMessage `json:"champions"`
}

// config overlays the request on the defaults. A nil exclusion list keeps the
// default; an empty one clears it.
func (r *optimizeRequest) config() Config {
	cfg := DefaultConfig()
	if r.Target != 0 {
		cfg.Target = r.Target
	}
	if r.ExcludeChampions != nil {
		cfg.ExcludeChampions = r.ExcludeChampions
	}
	if r.ExcludeTraits != nil {
		cfg.ExcludeTraits = r.ExcludeTraits
	}
	if r.Bound != "" {
		cfg.Search.Bound = r.Bound
	}
	return cfg
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
	}
	cfg := req.config()
	if err := cfg.Validate(); err != nil {
		return errResp(400, err.Error())
	}

	catalogJSON := embeddedCatalog
	if len(req.Champions) > 0 && string(req.Champions) != "null" {
		catalogJSON = string(req.Champions)
	}
	cat, err := parseCatalog(catalogJSON)
	if err != nil {
		return errResp(400, "champions: "+err.Error())
	}

	pool := BuildPool(cat, &cfg)
	res, err := NewSolver(pool, &cfg, Observer{}).Solve(ctx)
	if errors.Is(err, ErrSearchAborted) {
		return errResp(504, err.Error())
	}
	if err != nil {
		return errResp(500, err.Error())
	}

	respJSON, err := json.Marshal(NewResultView(res))
	if err != nil {
		return errResp(500, fmt.Sprintf("encode result: %v", err))
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
