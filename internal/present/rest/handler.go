package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/internal/present/rest/presenter"
	"github.com/atelierworks/atelier/internal/usecase"
)

const resourceCacheTTL = 10 // seconds

// RealtimeSource streams transition events for websocket subscribers.
// Values sent on input replace the active subscription set; the source
// must exit when ctx is cancelled.
type RealtimeSource interface {
	Realtime(ctx context.Context, input chan []string, output chan atelier.Event)
}

type Handler struct {
	config     domain.Config
	dispatcher *usecase.Dispatcher
	store      usecase.Store
	social     *usecase.SocialUsecase
	wallet     usecase.WalletGateway
	signal     RealtimeSource
	mc         *memcache.Client
}

func NewHandler(
	config domain.Config,
	dispatcher *usecase.Dispatcher,
	store usecase.Store,
	social *usecase.SocialUsecase,
	wallet usecase.WalletGateway,
	signal RealtimeSource,
	mc *memcache.Client,
) *Handler {
	return &Handler{
		config:     config,
		dispatcher: dispatcher,
		store:      store,
		social:     social,
		wallet:     wallet,
		signal:     signal,
		mc:         mc,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/.well-known/atelier", h.handleWellKnown)
	e.POST("/commit", h.handleCommit)
	e.GET("/resource/:uri", h.handleResource)
	e.GET("/works/recent", h.handleWorksRecent)
	e.GET("/wallet/:holder", h.handleWalletBalance)
	e.GET("/realtime", h.handleRealtime)
}

func (h *Handler) handleWellKnown(c echo.Context) error {
	wellknown := atelier.WellKnownAtelier{
		Version: "1.0",
		Domain:  h.config.FQDN,
		ASID:    h.config.ASID,
		Endpoints: map[string]atelier.AtelierEndpoint{
			"net.atelierworks.resource": {
				Template: "/resource/{uri}",
				Method:   "GET",
			},
			"net.atelierworks.commit": {
				Template: "/commit",
				Method:   "POST",
			},
			"net.atelierworks.works.recent": {
				Template: "/works/recent",
				Method:   "GET",
				Query:    &[]string{"artist", "limit"},
			},
			"net.atelierworks.wallet.balance": {
				Template: "/wallet/{holder}",
				Method:   "GET",
			},
			"net.atelierworks.realtime": {
				Template: "/realtime",
				Method:   "GET",
			},
		},
	}
	return presenter.OK(c, wellknown)
}

type commitResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Record any    `json:"record,omitempty"`
}

func (h *Handler) handleCommit(c echo.Context) error {
	ctx := c.Request().Context()

	var si atelier.SignedInstruction
	err := c.Bind(&si)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	result, err := h.dispatcher.Dispatch(ctx, si)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return presenter.Unauthorized(c, err)
		case errors.Is(err, domain.ErrNotFound):
			return presenter.NotFound(c, err.Error())
		case errors.Is(err, domain.ErrAlreadyExists),
			errors.Is(err, domain.ErrAlreadyFollowing),
			errors.Is(err, domain.ErrInvalidTransition):
			return presenter.Conflict(c, err)
		case errors.Is(err, domain.ErrInsufficientFunds):
			return presenter.PaymentRequired(c, err)
		case errors.Is(err, domain.ErrFieldTooLong),
			errors.Is(err, domain.ErrTooManyLinks),
			errors.Is(err, domain.ErrInvalidInteraction),
			errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrOverflow),
			errors.Is(err, domain.ErrUnderflow):
			return presenter.BadRequest(c, err)
		default:
			return presenter.InternalError(c, err)
		}
	}

	if h.mc != nil {
		h.mc.Delete("resource:" + result.Key)
	}

	return presenter.OK(c, commitResponse{
		Status: "ok",
		Key:    result.Key,
		Record: result.Record,
	})
}

func (h *Handler) handleResource(c echo.Context) error {
	ctx := c.Request().Context()

	escaped := c.Param("uri")
	uriString, err := url.QueryUnescape(escaped)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid uri")
	}
	uri, err := url.Parse(uriString)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid uri")
	}

	if uri.Scheme == "http" || uri.Scheme == "https" {
		return c.JSON(http.StatusSeeOther, echo.Map{"location": uri.String()})
	}

	if uri.Scheme != "at" {
		return presenter.BadRequestMessage(c, "unsupported uri scheme")
	}

	cacheKey := "resource:" + uriString
	if h.mc != nil {
		item, err := h.mc.Get(cacheKey)
		if err == nil {
			return c.JSONBlob(http.StatusOK, item.Value)
		}
	}

	value, err := h.store.Resolve(ctx, uriString)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "resource not found")
		}
		return presenter.InternalError(c, err)
	}

	if h.mc != nil {
		blob, err := json.Marshal(value)
		if err == nil {
			h.mc.Set(&memcache.Item{
				Key:        cacheKey,
				Value:      blob,
				Expiration: resourceCacheTTL,
			})
		}
	}

	return presenter.OK(c, value)
}

func (h *Handler) handleWorksRecent(c echo.Context) error {
	ctx := c.Request().Context()

	artist := c.QueryParam("artist")
	if artist != "" && !atelier.IsArtID(artist) {
		return presenter.BadRequestMessage(c, "invalid artist parameter")
	}

	limit := 16
	limitStr := c.QueryParam("limit")
	if limitStr != "" {
		limitInt, err := strconv.Atoi(limitStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid limit parameter")
		}
		limit = limitInt
	}
	if limit > 64 {
		limit = 64
	}

	results, err := h.social.RecentWorks(ctx, artist, limit)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, results)
}

type walletBalanceResponse struct {
	Holder  string `json:"holder"`
	Balance uint64 `json:"balance"`
}

func (h *Handler) handleWalletBalance(c echo.Context) error {
	ctx := c.Request().Context()

	holder := c.Param("holder")
	if !atelier.IsArtID(holder) {
		return presenter.BadRequestMessage(c, "invalid holder id")
	}

	balance, err := h.wallet.Balance(ctx, holder)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, walletBalanceResponse{Holder: holder, Balance: balance})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type realtimeRequest struct {
	Type string   `json:"type"`
	Keys []string `json:"keys"`
}

// handleRealtime streams transition events to a websocket client. A
// cancellable context derived from the request is the only shutdown
// signal: whichever side fails first cancels it and every goroutine
// drains out through ctx.Done(). No channel is ever closed, so a sender
// blocked mid-handoff can never panic on a closed channel.
func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	subscriptions := make(chan []string)
	events := make(chan atelier.Event)

	go h.signal.Realtime(ctx, subscriptions, events)
	go h.readRealtime(ctx, cancel, ws, subscriptions)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-events:
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing event",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}

// readRealtime pumps subscription requests from the socket until the
// client disconnects, then cancels the session.
func (h *Handler) readRealtime(ctx context.Context, cancel context.CancelFunc, ws *websocket.Conn, subscriptions chan []string) {
	defer cancel()

	for {
		var req realtimeRequest
		if err := ws.ReadJSON(&req); err != nil {
			wsErr, ok := err.(*websocket.CloseError)
			if ok && (wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
				return
			}
			slog.DebugContext(
				ctx, "WebSocket read ended",
				slog.String("error", err.Error()),
				slog.String("module", "socket"),
			)
			return
		}

		switch req.Type {
		case "listen":
			select {
			case subscriptions <- req.Keys:
			case <-ctx.Done():
				return
			}
		case "h": // heartbeat
			// do nothing
		default:
			slog.InfoContext(
				ctx, "Unknown request type",
				slog.String("type", req.Type),
				slog.String("module", "socket"),
			)
		}
	}
}
