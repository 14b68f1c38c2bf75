package bark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// ConfigFunc is called each time a push is attempted to get the latest Bark settings.
type ConfigFunc func() (key, serverURL, siteTitle string)

// Service sends iOS push notifications via the Bark API.
type Service struct {
	configFn   ConfigFunc
	httpClient *http.Client

	mu         sync.Mutex
	lastPushAt map[string]time.Time
	throttleD  time.Duration
}

// New creates a new Bark service. configFn is called on each push to retrieve settings.
func New(configFn ConfigFunc) *Service {
	return &Service{
		configFn:   configFn,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		lastPushAt: make(map[string]time.Time),
		throttleD:  10 * time.Minute,
	}
}

type pushPayload struct {
	DeviceKey string `json:"device_key"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Group     string `json:"group,omitempty"`
}

// Push sends a Bark notification immediately (no throttle).
func (s *Service) Push(title, body string) error {
	key, serverURL, siteTitle := s.configFn()
	if key == "" {
		return fmt.Errorf("bark key not configured")
	}
	if serverURL == "" {
		serverURL = "https://day.app"
	}

	payload := pushPayload{
		DeviceKey: key,
		Title:     title,
		Body:      body,
		Group:     siteTitle,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Post(serverURL+"/push", "application/json; charset=utf-8", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("bark push failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

// InquiryPush notifies the studio owner about a new contact inquiry.
func (s *Service) InquiryPush(name, email string) {
	_, _, siteTitle := s.configFn()
	title := "New inquiry"
	if siteTitle != "" {
		title = siteTitle + ": new inquiry"
	}
	_ = s.Push(title, fmt.Sprintf("%s <%s> sent a message", name, email))
}

// ThrottlePush sends at most one notification per key within the throttle window.
func (s *Service) ThrottlePush(ip, path string) {
	throttleKey := ip + "|" + path

	s.mu.Lock()
	last, seen := s.lastPushAt[throttleKey]
	if seen && time.Since(last) < s.throttleD {
		s.mu.Unlock()
		return
	}
	s.lastPushAt[throttleKey] = time.Now()
	s.mu.Unlock()

	_ = s.Push("Rate limit tripped", fmt.Sprintf("%s is hammering %s", ip, path))
}
