package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/matchdayhq/sunday-league/internal/domain/achievement"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
)

func TestPublishAwardsDeliversEvent(t *testing.T) {
	var mu sync.Mutex
	var gotBody []byte
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotBody = body
		gotAuth = r.Header.Get("Authorization")
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(WebhookNotifierConfig{
		Endpoints: []string{server.URL},
		Token:     "secret-token",
	}, logging.NewNop())

	def, _ := achievement.Lookup("hat_trick_3_matches")
	if err := notifier.PublishAwards(context.Background(), "usr-ade", []achievement.Definition{def}); err != nil {
		t.Fatalf("PublishAwards: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}

	var event awardEvent
	if err := sonic.Unmarshal(gotBody, &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.UserID != "usr-ade" {
		t.Fatalf("expected user usr-ade, got %q", event.UserID)
	}
	if len(event.Achievements) != 1 || event.Achievements[0].ID != "hat_trick_3_matches" {
		t.Fatalf("unexpected achievements payload: %+v", event.Achievements)
	}
	if event.Achievements[0].XP != 100 {
		t.Fatalf("expected 100 XP in payload, got %d", event.Achievements[0].XP)
	}
}

func TestPublishAwardsFansOutToAllEndpoints(t *testing.T) {
	var hits sync.Map
	newServer := func(name string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Store(name, true)
			w.WriteHeader(http.StatusOK)
		}))
	}
	first := newServer("first")
	defer first.Close()
	second := newServer("second")
	defer second.Close()

	notifier := NewWebhookNotifier(WebhookNotifierConfig{
		Endpoints: []string{first.URL, second.URL},
	}, logging.NewNop())

	def, _ := achievement.Lookup("captain_5_wins")
	if err := notifier.PublishAwards(context.Background(), "usr-ben", []achievement.Definition{def}); err != nil {
		t.Fatalf("PublishAwards: %v", err)
	}

	for _, name := range []string{"first", "second"} {
		if _, ok := hits.Load(name); !ok {
			t.Fatalf("endpoint %s was not called", name)
		}
	}
}

func TestPublishAwardsReportsEndpointFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(WebhookNotifierConfig{
		Endpoints: []string{server.URL},
	}, logging.NewNop())

	def, _ := achievement.Lookup("hat_trick_3_matches")
	err := notifier.PublishAwards(context.Background(), "usr-ade", []achievement.Definition{def})
	if err == nil {
		t.Fatal("expected error for 500 endpoint")
	}
	if !strings.Contains(err.Error(), "status=500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestPublishAwardsNoEndpointsIsNoop(t *testing.T) {
	notifier := NewWebhookNotifier(WebhookNotifierConfig{}, logging.NewNop())

	def, _ := achievement.Lookup("hat_trick_3_matches")
	if err := notifier.PublishAwards(context.Background(), "usr-ade", []achievement.Definition{def}); err != nil {
		t.Fatalf("expected noop without endpoints, got %v", err)
	}
}

func TestValidateHTTPURL(t *testing.T) {
	if _, err := validateHTTPURL("ftp://example.com/hook"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
	if _, err := validateHTTPURL(" "); err == nil {
		t.Fatal("expected error for empty value")
	}
	got, err := validateHTTPURL("https://hooks.example.com/awards")
	if err != nil {
		t.Fatalf("validateHTTPURL: %v", err)
	}
	if got != "https://hooks.example.com/awards" {
		t.Fatalf("unexpected validated url: %s", got)
	}
}
