package jobseq

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"eqlink/lib/restyutil"
	"eqlink/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const DefaultBaseURL = "https://jobseq.eqsuite.com"

var meter = otel.Meter("jobseq")

// Client talks to the JobsEQ analytics API. Every analytic family
// hangs off its own sub-service, mirroring how the vendor groups
// them in its own product.
type Client struct {
	http     *resty.Client
	session  *Session
	requests metric.Int64Counter

	Core         *CoreService
	Mix          *MixService
	Trends       *TrendService
	SupplyChain  *SupplyChainService
	Demographics *DemographicService
	SkillGaps    *SkillGapService
	Maps         *MapService
	Impact       *ImpactService
	AwardGaps    *AwardGapService
	RTI          *RTIService
	DataFetch    *DataFetchService
	Catalog      *CatalogService
}

type ClientOptions struct {
	// BaseURL defaults to the vendor's production host.
	BaseURL  string
	Username string
	Password string
	// Timeout bounds every request; zero means 30s.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	http := resty.New()
	http.SetBaseURL(baseURL)
	http.SetTimeout(timeout)
	if restyInstrumentOutput != nil {
		restyutil.InstrumentClient(http, tracer, restyInstrumentOutput)
	} else {
		telemetry.InstrumentResty(http, "jobseq/http")
	}

	requests, err := meter.Int64Counter("jobseq.client.requests")
	if err != nil {
		return nil, err
	}

	c := &Client{
		http: http,
		session: NewSession(http, Credentials{
			Username: opts.Username,
			Password: opts.Password,
		}),
		requests: requests,
	}
	c.Core = &CoreService{client: c}
	c.Mix = &MixService{client: c}
	c.Trends = &TrendService{client: c}
	c.SupplyChain = &SupplyChainService{client: c}
	c.Demographics = &DemographicService{client: c}
	c.SkillGaps = &SkillGapService{client: c}
	c.Maps = &MapService{client: c}
	c.Impact = &ImpactService{client: c}
	c.AwardGaps = &AwardGapService{client: c}
	c.RTI = &RTIService{client: c}
	c.DataFetch = &DataFetchService{client: c}
	c.Catalog = &CatalogService{client: c}
	return c, nil
}

// Login eagerly authenticates. Calling it is optional, the first
// dispatched request logs in on its own.
func (c *Client) Login(ctx context.Context) error {
	return c.session.Login(ctx)
}

// RunAnalytic dispatches a v1 analytic by its endpoint UUID and
// returns the undecoded response object. The typed sub-service
// methods are usually what you want, this exists for analytics the
// façade does not cover yet.
func (c *Client) RunAnalytic(ctx context.Context, id uuid.UUID, payload any) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:RunAnalytic")
	defer span.End()
	span.SetAttributes(attribute.String("analytic_id", id.String()))

	return c.post(ctx, "/api/External/runanalytic", url.Values{"id": {id.String()}}, payload)
}

// RunV2 dispatches one of the newer analytics addressed by URI
// segment (e.g. "JobPosts") rather than UUID.
func (c *Client) RunV2(ctx context.Context, endpoint string, payload any) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:RunV2")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", endpoint))

	return c.post(ctx, "/api/External/"+endpoint, nil, payload)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, payload any) (map[string]any, error) {
	raw, err := c.send(ctx, resty.MethodPost, path, query, payload)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	err = json.Unmarshal(raw, &out)
	if err != nil {
		return nil, &DecodeError{Detail: "response body is not a JSON object", Err: err}
	}
	return out, nil
}

func (c *Client) getList(ctx context.Context, path string, query url.Values) ([]any, error) {
	raw, err := c.send(ctx, resty.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	var out []any
	err = json.Unmarshal(raw, &out)
	if err != nil {
		return nil, &DecodeError{Detail: "response body is not a JSON array", Err: err}
	}
	return out, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:send")
	defer span.End()

	token, err := c.session.Token(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "could not obtain session token")
		return nil, err
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json")
	for key, values := range query {
		for _, v := range values {
			req.SetQueryParam(key, v)
		}
	}
	if payload != nil {
		req.SetBody(payload)
	}

	res, err := req.Execute(method, path)
	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, &ConnError{Err: err}
	}
	if res.StatusCode() == 401 {
		span.SetStatus(codes.Error, "token rejected")
		return nil, &AuthError{Reason: "token rejected", Err: &StatusError{
			Code:    res.StatusCode(),
			Message: string(res.Body()),
		}}
	}
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "vendor returned non-success status")
		return nil, &StatusError{Code: res.StatusCode(), Message: string(res.Body())}
	}
	return res.Body(), nil
}
