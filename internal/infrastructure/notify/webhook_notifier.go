package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/matchdayhq/sunday-league/internal/domain/achievement"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
)

type WebhookNotifierConfig struct {
	// Endpoints receive every award event; all of them are called on each
	// publish.
	Endpoints []string
	Token     string
	Timeout   time.Duration
}

// WebhookNotifier delivers award events to configured HTTP endpoints. One
// slow or broken endpoint does not stop delivery to the others.
type WebhookNotifier struct {
	client    *fasthttp.Client
	endpoints []string
	token     string
	timeout   time.Duration
	logger    *logging.Logger
}

func NewWebhookNotifier(cfg WebhookNotifierConfig, logger *logging.Logger) *WebhookNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	endpoints := make([]string, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		if strings.TrimSpace(endpoint) != "" {
			endpoints = append(endpoints, strings.TrimSpace(endpoint))
		}
	}

	return &WebhookNotifier{
		client:    &fasthttp.Client{},
		endpoints: endpoints,
		token:     strings.TrimSpace(cfg.Token),
		timeout:   timeout,
		logger:    logger,
	}
}

type awardEvent struct {
	UserID       string               `json:"user_id"`
	Achievements []awardedAchievement `json:"achievements"`
	OccurredAt   time.Time            `json:"occurred_at"`
}

type awardedAchievement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	XP          int    `json:"xp"`
}

func (n *WebhookNotifier) PublishAwards(ctx context.Context, userID string, awarded []achievement.Definition) error {
	if len(n.endpoints) == 0 || len(awarded) == 0 {
		return nil
	}

	event := awardEvent{
		UserID:       userID,
		Achievements: make([]awardedAchievement, 0, len(awarded)),
		OccurredAt:   time.Now().UTC(),
	}
	for _, def := range awarded {
		event.Achievements = append(event.Achievements, awardedAchievement{
			ID:          def.ID,
			Description: def.Description,
			XP:          def.XP,
		})
	}

	body, err := sonic.Marshal(event)
	if err != nil {
		return crerr.Wrap(err, "marshal award event")
	}
	curlPreview := buildWebhookCurlPreview(n.endpoints, string(body), n.token != "")

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.user_id", userID),
			attribute.Int("webhook.endpoint_count", len(n.endpoints)),
			attribute.String("webhook.request_curl_preview", curlPreview),
		)
	}
	n.logger.InfoContext(ctx, "award webhook publish", "user_id", userID, "endpoints", len(n.endpoints), "curl_preview", curlPreview)

	deliveries := pool.New().WithErrors()
	for _, endpoint := range n.endpoints {
		endpoint := endpoint
		deliveries.Go(func() error {
			return n.deliver(endpoint, body)
		})
	}
	if err := deliveries.Wait(); err != nil {
		return crerr.Wrap(err, "deliver award event")
	}

	return nil
}

func (n *WebhookNotifier) deliver(endpoint string, body []byte) error {
	validated, err := validateHTTPURL(endpoint)
	if err != nil {
		return crerr.Wrap(err, "invalid webhook endpoint")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(validated)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}
	req.SetBody(body)

	if err := n.client.DoTimeout(req, resp, n.timeout); err != nil {
		return crerr.Wrapf(err, "post award event endpoint=%s", validated)
	}
	if resp.StatusCode()/100 != 2 {
		raw := resp.Body()
		if len(raw) > 4096 {
			raw = raw[:4096]
		}
		return crerr.Newf("post award event status=%d endpoint=%s body=%s", resp.StatusCode(), validated, strings.TrimSpace(string(raw)))
	}

	return nil
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}

func buildWebhookCurlPreview(endpoints []string, body string, withToken bool) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart("POST")
	if len(endpoints) > 0 {
		appendPart(shellQuote(endpoints[0]))
	}
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	if withToken {
		appendPart("-H")
		appendPart(shellQuote("Authorization: Bearer ***"))
	}
	appendPart("-d")
	appendPart(shellQuote(truncateForLog(body, 4096)))
	if len(endpoints) > 1 {
		appendPart("#")
		appendPart(shellQuote(fmt.Sprintf("and %d more endpoints", len(endpoints)-1)))
	}

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
