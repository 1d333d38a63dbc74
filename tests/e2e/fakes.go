//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// FakeShop serves the subset of the Shopify Admin API the campaign uses.
type FakeShop struct {
	Server *httptest.Server

	mu            sync.Mutex
	ordersByDate  map[string][]json.RawMessage
	pageSize      int
	failDates     map[string]int
	PriceRules    []map[string]any
	DiscountCodes []map[string]any
	nextRuleID    int64
}

func NewFakeShop(t *testing.T, pageSize int) *FakeShop {
	t.Helper()
	f := &FakeShop{
		ordersByDate: map[string][]json.RawMessage{},
		failDates:    map[string]int{},
		pageSize:     pageSize,
		nextRuleID:   1000,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/api/2023-01/orders.json", f.handleOrders)
	mux.HandleFunc("POST /admin/api/2023-01/price_rules.json", f.handlePriceRule)
	mux.HandleFunc("POST /admin/api/2023-01/price_rules/{id}/discount_codes.json", f.handleDiscountCode)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// SetOrders registers the orders created on date (YYYY-MM-DD).
func (f *FakeShop) SetOrders(date string, orders ...json.RawMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ordersByDate[date] = orders
}

// FailFromPage makes every page at or after page (1-based) for date return 500.
func (f *FakeShop) FailFromPage(date string, page int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failDates[date] = page
}

func (f *FakeShop) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ordersByDate = map[string][]json.RawMessage{}
	f.failDates = map[string]int{}
	f.PriceRules = nil
	f.DiscountCodes = nil
}

func (f *FakeShop) Codes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	codes := make([]string, 0, len(f.DiscountCodes))
	for _, dc := range f.DiscountCodes {
		codes = append(codes, dc["code"].(string))
	}
	return codes
}

func (f *FakeShop) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Shopify-Access-Token") == "" {
		http.Error(w, `{"errors":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	date, _, _ := strings.Cut(r.URL.Query().Get("created_at_min"), "T")
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		page, _ = strconv.Atoi(p)
	}

	f.mu.Lock()
	orders := f.ordersByDate[date]
	failFrom, fails := f.failDates[date]
	f.mu.Unlock()

	if fails && page >= failFrom {
		http.Error(w, `{"errors":"internal"}`, http.StatusInternalServerError)
		return
	}

	start := (page - 1) * f.pageSize
	end := min(start+f.pageSize, len(orders))
	if start > len(orders) {
		start = end
	}
	if end < len(orders) {
		q := r.URL.Query()
		q.Set("page", strconv.Itoa(page+1))
		w.Header().Set("Link", fmt.Sprintf(`<%s%s?%s>; rel="next"`, f.Server.URL, r.URL.Path, q.Encode()))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"orders": orders[start:end]})
}

func (f *FakeShop) handlePriceRule(w http.ResponseWriter, r *http.Request) {
	var body map[string]map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.nextRuleID++
	rule := body["price_rule"]
	rule["id"] = f.nextRuleID
	f.PriceRules = append(f.PriceRules, rule)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"price_rule": rule})
}

func (f *FakeShop) handleDiscountCode(w http.ResponseWriter, r *http.Request) {
	var body map[string]map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	code := body["discount_code"]
	f.mu.Lock()
	f.DiscountCodes = append(f.DiscountCodes, code)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"discount_code": code})
}

type SentMessage struct {
	Number string
	Text   string
}

// FakeEvolution records every sendText call.
type FakeEvolution struct {
	Server *httptest.Server

	mu       sync.Mutex
	messages []SentMessage
}

func NewFakeEvolution(t *testing.T) *FakeEvolution {
	t.Helper()
	f := &FakeEvolution{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /message/sendText/{instance}", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Number      string `json:"number"`
			TextMessage struct {
				Text string `json:"text"`
			} `json:"textMessage"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.messages = append(f.messages, SentMessage{Number: body.Number, Text: body.TextMessage.Text})
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"PENDING"}`))
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeEvolution) Messages() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentMessage(nil), f.messages...)
}

func (f *FakeEvolution) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = nil
}
