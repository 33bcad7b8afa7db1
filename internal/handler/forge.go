package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/forge"
	"github.com/osse101/SwordForge_Go/internal/logger"
	"github.com/osse101/SwordForge_Go/internal/player"
	"github.com/osse101/SwordForge_Go/internal/utils"
)

// ForgeHandler serves the forge API
type ForgeHandler struct {
	svc forge.Service
}

// NewForgeHandler creates a new ForgeHandler
func NewForgeHandler(svc forge.Service) *ForgeHandler {
	return &ForgeHandler{svc: svc}
}

// EnchantmentView is one enchantment of a crafted item
type EnchantmentView struct {
	Type  string `json:"type"`
	Level int    `json:"level"`
	Name  string `json:"name"`
}

// ItemView is a crafted item as returned by the API
type ItemView struct {
	ID             string            `json:"id"`
	Summary        string            `json:"summary"`
	Attributes     map[string]string `json:"attributes"`
	Colors         map[string]string `json:"colors,omitempty"`
	Enchantments   []EnchantmentView `json:"enchantments"`
	Level          int               `json:"level"`
	Value          float64           `json:"value"`
	ValueFormatted string            `json:"value_formatted"`
	CraftedAt      time.Time         `json:"crafted_at"`
}

func newItemView(item *domain.RolledItem, colors map[string]string) ItemView {
	enchants := make([]EnchantmentView, len(item.Enchantments))
	for i, e := range item.Enchantments {
		enchants[i] = EnchantmentView{Type: e.Type, Level: e.Level, Name: e.DisplayName()}
	}
	return ItemView{
		ID:             item.ID,
		Summary:        item.Summary(),
		Attributes:     item.Attributes,
		Colors:         colors,
		Enchantments:   enchants,
		Level:          item.Level,
		Value:          item.Value,
		ValueFormatted: utils.FormatMoney(item.Value),
		CraftedAt:      item.CraftedAt,
	}
}

// HandleCraft crafts a new item
// @Summary Craft an item
// @Description Rolls every attribute category and enchantments, prices the item and puts it on the sell rack
// @Tags forge
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} ItemView
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/craft [post]
func (h *ForgeHandler) HandleCraft(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Craft(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCraftFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, newItemView(res.Item, res.Colors))
}

// PurchaseUpgradeRequest is the body of an upgrade purchase
type PurchaseUpgradeRequest struct {
	Category string `json:"category" validate:"required,category"`
}

// PurchaseUpgradeResponse reports a purchase attempt. A rejected purchase
// is still a 200 with success=false and a reason.
type PurchaseUpgradeResponse struct {
	Success      bool     `json:"success"`
	Category     string   `json:"category"`
	CostCharged  float64  `json:"cost_charged"`
	Level        int      `json:"level"`
	NextCost     *float64 `json:"next_cost"`
	NextCostText string   `json:"next_cost_formatted"`
	Reason       string   `json:"reason,omitempty"`
	Balance      float64  `json:"balance"`
	NewlyRetired []string `json:"newly_retired,omitempty"`
}

// HandlePurchaseUpgrade buys the next level of a category
// @Summary Purchase an upgrade level
// @Description Spends money on the next level of a category. Insufficient funds and max level are reported with success=false
// @Tags upgrades
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PurchaseUpgradeRequest true "Category to upgrade"
// @Success 200 {object} PurchaseUpgradeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/upgrades/purchase [post]
func (h *ForgeHandler) HandlePurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	var req PurchaseUpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase upgrade"); err != nil {
		return
	}

	out, err := h.svc.PurchaseUpgrade(r.Context(), req.Category)
	if err != nil {
		respondServiceError(w, r, ErrMsgPurchaseFailed, err)
		return
	}

	resp := PurchaseUpgradeResponse{
		Success:      out.Success,
		Category:     req.Category,
		CostCharged:  out.CostCharged,
		Level:        out.Level,
		NextCost:     costPtr(out.NextCost),
		NextCostText: formatCost(out.NextCost),
		Balance:      out.Balance,
		NewlyRetired: out.NewlyRetired,
	}
	if out.Reason != nil {
		_, resp.Reason = mapServiceErrorToUserMessage(out.Reason)
	}
	respondJSON(w, http.StatusOK, resp)
}

// costPtr returns nil for the max-level sentinel so it serialises as null
func costPtr(cost float64) *float64 {
	if cost >= math.MaxFloat64 {
		return nil
	}
	return &cost
}

func formatCost(cost float64) string {
	if cost >= math.MaxFloat64 {
		return "MAX"
	}
	return utils.FormatMoney(cost)
}

// CategoryResponse is one category with its effective odds
type CategoryResponse struct {
	forge.CategoryView
	NextCost     *float64 `json:"next_cost"`
	NextCostText string   `json:"next_cost_formatted"`
}

// HandleCategories lists every category with its odds
// @Summary List categories
// @Description Upgrade level, next cost and effective odds of every category
// @Tags upgrades
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/categories [get]
func (h *ForgeHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Categories(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCategoriesFailed, err)
		return
	}

	out := make([]CategoryResponse, len(views))
	for i, v := range views {
		out[i] = CategoryResponse{
			CategoryView: v,
			NextCost:     costPtr(v.NextCost),
			NextCostText: formatCost(v.NextCost),
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleOddsReport renders the text odds report of one category
// @Summary Odds report
// @Description Plain-text effective odds of a category at its current level. compare=true adds the level 0 odds
// @Tags upgrades
// @Produce plain
// @Security ApiKeyAuth
// @Param category path string true "Category name"
// @Param compare query bool false "Compare with level 0"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/odds/{category} [get]
func (h *ForgeHandler) HandleOddsReport(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, http.StatusBadRequest, "Missing category path parameter")
		return
	}
	compare, _ := strconv.ParseBool(GetOptionalQueryParam(r, "compare", "false"))

	report, err := h.svc.OddsReport(r.Context(), category, compare)
	if err != nil {
		respondServiceError(w, r, ErrMsgOddsReportFailed, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

// SellItemRequest is the body of a sale
type SellItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// SellItemResponse reports a completed sale
type SellItemResponse struct {
	ItemID           string          `json:"item_id"`
	Value            float64         `json:"value"`
	ValueFormatted   string          `json:"value_formatted"`
	Balance          float64         `json:"balance"`
	BalanceFormatted string          `json:"balance_formatted"`
	XPGained         int             `json:"xp_gained"`
	LevelsGained     int             `json:"levels_gained"`
	Player           player.Snapshot `json:"player"`
}

// HandleSell sells an item from the sell rack
// @Summary Sell an item
// @Description Sells an item still on the sell rack. Items not sold before the countdown are sold automatically
// @Tags forge
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SellItemRequest true "Item to sell"
// @Success 200 {object} SellItemResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/sell [post]
func (h *ForgeHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req SellItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}

	sale, err := h.svc.Sell(r.Context(), req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgSellFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SellItemResponse{
		ItemID:           sale.ItemID,
		Value:            sale.Value,
		ValueFormatted:   utils.FormatMoney(sale.Value),
		Balance:          sale.Balance,
		BalanceFormatted: utils.FormatMoney(sale.Balance),
		XPGained:         sale.XPGained,
		LevelsGained:     sale.LevelsGained,
		Player:           sale.Player,
	})
}

// HandleRack lists unsold items
// @Summary Sell rack
// @Description Items waiting to be sold
// @Tags forge
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ItemView
// @Router /api/v1/items [get]
func (h *ForgeHandler) HandleRack(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Rack(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRackFailed, err)
		return
	}

	out := make([]ItemView, len(items))
	for i, it := range items {
		out[i] = newItemView(it, nil)
	}
	respondJSON(w, http.StatusOK, out)
}

// PlayerResponse is the player's money and progression
type PlayerResponse struct {
	forge.Status
	BalanceFormatted string `json:"balance_formatted"`
}

// HandlePlayer returns money, level and XP
// @Summary Player status
// @Tags forge
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PlayerResponse
// @Router /api/v1/player [get]
func (h *ForgeHandler) HandlePlayer(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStatusFailed, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Player status retrieved", "balance", st.Balance, "level", st.Player.Level)
	respondJSON(w, http.StatusOK, PlayerResponse{Status: *st, BalanceFormatted: utils.FormatMoney(st.Balance)})
}
