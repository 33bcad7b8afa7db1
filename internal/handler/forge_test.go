package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/forge"
	"github.com/osse101/SwordForge_Go/internal/player"
	"github.com/osse101/SwordForge_Go/internal/upgrade"
	"github.com/osse101/SwordForge_Go/mocks"
)

const testItemID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func newTestRouter(svc forge.Service) http.Handler {
	h := NewForgeHandler(svc)
	r := chi.NewRouter()
	r.Post("/craft", h.HandleCraft)
	r.Post("/upgrades/purchase", h.HandlePurchaseUpgrade)
	r.Get("/categories", h.HandleCategories)
	r.Get("/odds/{category}", h.HandleOddsReport)
	r.Post("/items/sell", h.HandleSell)
	r.Get("/items", h.HandleRack)
	r.Get("/player", h.HandlePlayer)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleCraft(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockForgeService)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("Craft", mock.Anything).Return(&forge.CraftResult{
					Item: &domain.RolledItem{
						ID:           testItemID,
						Attributes:   map[string]string{domain.CategoryMold: "Gold", domain.CategoryRarity: "Rare"},
						Enchantments: []domain.Enchantment{{Type: domain.EnchantmentPower, Level: 12}},
						Level:        3,
						Value:        1520,
						CraftedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
					},
					Colors: map[string]string{domain.CategoryMold: "#FFD700"},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var view ItemView
				require.NoError(t, json.Unmarshal(body, &view))
				assert.Equal(t, testItemID, view.ID)
				assert.Equal(t, "$1.52k", view.ValueFormatted)
				require.Len(t, view.Enchantments, 1)
				assert.Equal(t, "Power XII", view.Enchantments[0].Name)
				assert.Equal(t, "#FFD700", view.Colors[domain.CategoryMold])
				assert.Contains(t, view.Summary, "[RARE] Gold Lvl3")
			},
		},
		{
			name: "Service Error",
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("Craft", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Something went wrong"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockForgeService(t)
			tt.mockSetup(svc)

			w := doRequest(t, newTestRouter(svc), http.MethodPost, "/craft", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, w.Body.Bytes())
		})
	}
}

func TestHandlePurchaseUpgrade(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockForgeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: PurchaseUpgradeRequest{Category: domain.CategoryMold},
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("PurchaseUpgrade", mock.Anything, domain.CategoryMold).Return(&forge.PurchaseOutcome{
					PurchaseResult: upgrade.PurchaseResult{
						Category: domain.CategoryMold, Success: true, CostCharged: 100, Level: 1, NextCost: 115,
					},
					Balance: 20,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"category":"mold","cost_charged":100,"level":1,"next_cost":115,"next_cost_formatted":"$115.00","balance":20}`,
		},
		{
			name: "Insufficient Funds",
			body: PurchaseUpgradeRequest{Category: domain.CategoryMold},
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("PurchaseUpgrade", mock.Anything, domain.CategoryMold).Return(&forge.PurchaseOutcome{
					PurchaseResult: upgrade.PurchaseResult{
						Category: domain.CategoryMold, NextCost: 100, Reason: domain.ErrInsufficientFunds,
					},
					Balance: 5,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":false,"category":"mold","cost_charged":0,"level":0,"next_cost":100,"next_cost_formatted":"$100.00","reason":"Not enough money","balance":5}`,
		},
		{
			name: "Max Level",
			body: PurchaseUpgradeRequest{Category: domain.CategoryRarity},
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("PurchaseUpgrade", mock.Anything, domain.CategoryRarity).Return(&forge.PurchaseOutcome{
					PurchaseResult: upgrade.PurchaseResult{
						Category: domain.CategoryRarity, Level: 100, NextCost: math.MaxFloat64, Reason: domain.ErrMaxLevel,
					},
					Balance: 1e9,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":false,"category":"rarity","cost_charged":0,"level":100,"next_cost":null,"next_cost_formatted":"MAX","reason":"Category is already at max level","balance":1000000000}`,
		},
		{
			name: "Unknown Category",
			body: PurchaseUpgradeRequest{Category: "hilt"},
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("PurchaseUpgrade", mock.Anything, "hilt").Return(nil, domain.ErrUnknownCategory)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Unknown category"}`,
		},
		{
			name:           "Missing Category",
			body:           `{}`,
			mockSetup:      func(m *mocks.MockForgeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"category":"This field is required"}}`,
		},
		{
			name:           "Malformed Category",
			body:           PurchaseUpgradeRequest{Category: "Mold; DROP"},
			mockSetup:      func(m *mocks.MockForgeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"category":"Invalid category name"}}`,
		},
		{
			name:           "Unknown Field",
			body:           `{"category":"mold","funds":1e9}`,
			mockSetup:      func(m *mocks.MockForgeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockForgeService(t)
			tt.mockSetup(svc)

			w := doRequest(t, newTestRouter(svc), http.MethodPost, "/upgrades/purchase", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandleSell(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockForgeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: SellItemRequest{ItemID: testItemID},
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("Sell", mock.Anything, testItemID).Return(&forge.SaleResult{
					ItemID: testItemID, Value: 2500, Balance: 2600, XPGained: 10,
					Player: player.Snapshot{Level: 1, XP: 10, XPToNext: 100},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"item_id":"` + testItemID + `","value":2500,"value_formatted":"$2.50k","balance":2600,` +
				`"balance_formatted":"$2.60k","xp_gained":10,"levels_gained":0,"player":{"level":1,"xp":10,"xp_to_next":100}}`,
		},
		{
			name: "Already Sold",
			body: SellItemRequest{ItemID: testItemID},
			mockSetup: func(m *mocks.MockForgeService) {
				m.On("Sell", mock.Anything, testItemID).Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Item not found or already sold"}`,
		},
		{
			name:           "Invalid ID",
			body:           SellItemRequest{ItemID: "sword-1"},
			mockSetup:      func(m *mocks.MockForgeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"itemid":"Must be a valid item ID"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockForgeService(t)
			tt.mockSetup(svc)

			w := doRequest(t, newTestRouter(svc), http.MethodPost, "/items/sell", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandleOddsReport(t *testing.T) {
	t.Run("Compare", func(t *testing.T) {
		svc := mocks.NewMockForgeService(t)
		svc.On("OddsReport", mock.Anything, domain.CategoryQuality, true).Return("quality @ level 3\n", nil)

		w := doRequest(t, newTestRouter(svc), http.MethodGet, "/odds/quality?compare=true", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "quality @ level 3\n", w.Body.String())
	})

	t.Run("Unknown Category", func(t *testing.T) {
		svc := mocks.NewMockForgeService(t)
		svc.On("OddsReport", mock.Anything, "hilt", false).Return("", domain.ErrUnknownCategory)

		w := doRequest(t, newTestRouter(svc), http.MethodGet, "/odds/hilt", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleCategories(t *testing.T) {
	svc := mocks.NewMockForgeService(t)
	svc.On("Categories", mock.Anything).Return([]forge.CategoryView{
		{
			CategoryStatus: forge.CategoryStatus{Name: domain.CategoryMold, Level: 100, MaxLevel: 100, NextCost: math.MaxFloat64, MaxedOut: true},
			Options:        []forge.OptionOdds{{Name: "Normal", BaseOdds: 1, Retired: true}},
		},
	}, nil)

	w := doRequest(t, newTestRouter(svc), http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Nil(t, out[0]["next_cost"])
	assert.Equal(t, "MAX", out[0]["next_cost_formatted"])
	assert.Equal(t, true, out[0]["maxed_out"])
}

func TestHandlePlayerAndRack(t *testing.T) {
	svc := mocks.NewMockForgeService(t)
	svc.On("Status", mock.Anything).Return(&forge.Status{
		Balance: 1234.5,
		Player:  player.Snapshot{Level: 2, XP: 30, XPToNext: 120},
	}, nil)
	svc.On("Rack", mock.Anything).Return([]*domain.RolledItem{{ID: testItemID, Value: 10}}, nil)

	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/player", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance_formatted":"$1.23k"`)
	assert.Contains(t, w.Body.String(), `"level":2`)

	w = doRequest(t, router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testItemID)
}
