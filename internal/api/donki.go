package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"solar-defender/internal/config"

	"github.com/valyala/fasthttp"
)

const donkiBaseURL = "https://api.nasa.gov/DONKI/FLR"

// DONKIClient talks to NASA's DONKI solar flare endpoint.
type DONKIClient struct {
	apiKey  string
	client  *fasthttp.Client
	quotaMu sync.RWMutex
	quota   QuotaInfo
}

// QuotaInfo mirrors api.nasa.gov's X-RateLimit headers. DEMO_KEY gets 30
// requests per hour, a real key 1000.
type QuotaInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDONKIClient(cfg *config.Config) *DONKIClient {
	return &DONKIClient{
		apiKey: cfg.NASAAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		quota: QuotaInfo{
			Limit:     30,
			Remaining: 30,
			UpdatedAt: time.Now(),
		},
	}
}

func (c *DONKIClient) GetQuotaInfo() QuotaInfo {
	c.quotaMu.RLock()
	defer c.quotaMu.RUnlock()
	return c.quota
}

func (c *DONKIClient) updateQuota(resp *fasthttp.Response) {
	c.quotaMu.Lock()
	defer c.quotaMu.Unlock()

	if limit := string(resp.Header.Peek("X-RateLimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.quota.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-RateLimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.quota.Remaining = val
		}
	}
	c.quota.UpdatedAt = time.Now()
}

// GetFlares returns the solar flare events DONKI recorded between start and
// end (dates only, inclusive).
func (c *DONKIClient) GetFlares(ctx context.Context, start, end time.Time) ([]FlareEvent, error) {
	url := fmt.Sprintf("%s?startDate=%s&endDate=%s&api_key=%s",
		donkiBaseURL, start.Format("2006-01-02"), end.Format("2006-01-02"), c.apiKey)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	c.updateQuota(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("DONKI API error: %d", resp.StatusCode())
	}

	var events []FlareEvent
	if err := json.Unmarshal(resp.Body(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FlareEvent is one DONKI FLR record. Only the fields the game consumes are
// mapped.
type FlareEvent struct {
	FlrID     string     `json:"flrID"`
	ClassType string     `json:"classType"`
	BeginTime DONKITime  `json:"beginTime"`
	PeakTime  *DONKITime `json:"peakTime"`
	EndTime   *DONKITime `json:"endTime"`
}

// DONKITime handles DONKI's minute-precision timestamps ("2024-01-15T12:30Z")
// alongside full RFC3339.
type DONKITime struct {
	time.Time
}

func (t *DONKITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse("2006-01-02T15:04Z", s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("unrecognized DONKI timestamp %q: %w", s, err)
		}
	}
	t.Time = parsed
	return nil
}

// Intensity parses the numeric tail of a class type string: "M2.1" reads as
// 2.1. Missing or malformed tails default to 1.0, matching the feed's
// occasional bare class letters.
func Intensity(classType string) float64 {
	if len(classType) < 2 {
		return 1.0
	}
	v, err := strconv.ParseFloat(classType[1:], 64)
	if err != nil {
		return 1.0
	}
	return v
}

// FlareClass returns the leading class letter, defaulting to B when the
// string is empty.
func FlareClass(classType string) byte {
	if classType == "" {
		return 'B'
	}
	return classType[0]
}
