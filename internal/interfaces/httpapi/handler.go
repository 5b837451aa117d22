package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/music-league/external/googlesheets"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/usecase"
)

// SheetRefresher drops cached data for a sheet.
type SheetRefresher interface {
	Invalidate(ctx context.Context, sheetID string)
}

type Handler struct {
	competitorService  *usecase.CompetitorService
	roundService       *usecase.RoundService
	leaderboardService *usecase.LeaderboardService
	refresher          SheetRefresher
	defaultSheetID     string
	logger             *logging.Logger
	validator          *validator.Validate
}

// NewHandler wires the handler. refresher may be nil when the snapshot
// cache is disabled.
func NewHandler(
	competitorService *usecase.CompetitorService,
	roundService *usecase.RoundService,
	leaderboardService *usecase.LeaderboardService,
	refresher SheetRefresher,
	defaultSheetID string,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		competitorService:  competitorService,
		roundService:       roundService,
		leaderboardService: leaderboardService,
		refresher:          refresher,
		defaultSheetID:     strings.TrimSpace(defaultSheetID),
		logger:             logging.OrDefault(logger).Named("http_handler"),
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ResolveSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveSheet")
	defer span.End()

	var req resolveSheetRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sheetID, ok := googlesheets.ExtractSheetID(req.URL)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: could not extract a sheet id from url", usecase.ErrInvalidInput))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resolveSheetDTO{SheetID: sheetID})
}

// GetDefaultSheet reports the sheet a client should open when the user has
// not picked one.
func (h *Handler) GetDefaultSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefaultSheet")
	defer span.End()

	if h.defaultSheetID == "" {
		writeError(ctx, w, fmt.Errorf("%w: no default sheet configured", usecase.ErrNotFound))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, resolveSheetDTO{SheetID: h.defaultSheetID})
}

func (h *Handler) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitors")
	defer span.End()

	sheetID := r.PathValue("sheetID")
	items, err := h.competitorService.List(ctx, sheetID)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitors failed", "sheet_id", sheetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]competitorDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitorToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	sheetID := r.PathValue("sheetID")
	items, err := h.roundService.List(ctx, sheetID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "sheet_id", sheetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]roundDTO, 0, len(items))
	for _, item := range items {
		out = append(out, roundToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetRoundDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundDetail")
	defer span.End()

	sheetID := r.PathValue("sheetID")
	roundID := r.PathValue("roundID")
	detail, err := h.roundService.Detail(ctx, sheetID, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get round detail failed", "sheet_id", sheetID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundDetailToDTO(detail))
}

func (h *Handler) GetRoundChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundChart")
	defer span.End()

	sheetID := r.PathValue("sheetID")
	roundID := r.PathValue("roundID")
	selected, distribution, err := h.roundService.Distribution(ctx, sheetID, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get round chart failed", "sheet_id", sheetID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	body, err := renderDistributionChart(selected.Name, distribution)
	if err != nil {
		h.logger.ErrorContext(ctx, "render round chart failed", "sheet_id", sheetID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writePNG(ctx, w, body)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	sheetID := r.PathValue("sheetID")
	roundID := strings.TrimSpace(r.URL.Query().Get("round"))
	board, err := h.leaderboardService.Standings(ctx, sheetID, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "sheet_id", sheetID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

func (h *Handler) RefreshSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshSheet")
	defer span.End()

	sheetID := strings.TrimSpace(r.PathValue("sheetID"))
	if sheetID == "" {
		writeError(ctx, w, fmt.Errorf("%w: sheet id is required", usecase.ErrInvalidInput))
		return
	}

	invalidated := false
	if h.refresher != nil {
		h.refresher.Invalidate(ctx, sheetID)
		invalidated = true
		h.logger.InfoContext(ctx, "sheet cache invalidated", "sheet_id", sheetID)
	}

	writeSuccess(ctx, w, http.StatusOK, refreshDTO{SheetID: sheetID, Invalidated: invalidated})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type resolveSheetRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}
