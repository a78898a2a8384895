// SPDX-License-Identifier: MIT

package requests

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/internal/logging"
	"github.com/katalvlaran/transcat/transport"
)

// Handler answers stat requests against a loaded catalogue.
type Handler struct {
	db     *catalogue.Database
	router *transport.Router
	logger *slog.Logger
}

// NewHandler returns a Handler. router may be nil, in which case Route
// requests are answered with "not found".
func NewHandler(db *catalogue.Database, router *transport.Router, logger *slog.Logger) *Handler {
	return &Handler{db: db, router: router, logger: logging.OrDiscard(logger)}
}

// AnswerAll answers reqs in order.
func (h *Handler) AnswerAll(reqs []StatRequest) []Response {
	out := make([]Response, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, h.Answer(r))
	}

	return out
}

// Answer answers one stat request.
func (h *Handler) Answer(req StatRequest) Response {
	switch req.Type {
	case TypeBus:
		return h.answerBus(req)
	case TypeStop:
		return h.answerStop(req)
	case TypeRoute:
		return h.answerRoute(req)
	default:
		h.logger.Debug("unsupported stat request", "id", req.ID, "type", req.Type)
		return ErrorResponse{ErrorMessage: notFound, RequestID: req.ID}
	}
}

func (h *Handler) answerBus(req StatRequest) Response {
	stat, err := h.db.BusInfoByName(req.Name)
	if err != nil {
		return h.fail(req, err)
	}

	return BusResponse{
		Curvature:       stat.Curvature,
		RequestID:       req.ID,
		RouteLength:     stat.RouteLength,
		StopCount:       stat.TotalStops,
		UniqueStopCount: stat.UniqueStops,
	}
}

func (h *Handler) answerStop(req StatRequest) Response {
	stop, ok := h.db.Stop(req.Name)
	if !ok {
		return h.fail(req, catalogue.ErrNotFound)
	}
	buses, err := h.db.BusesForStop(stop)
	if err != nil {
		return h.fail(req, err)
	}

	return StopResponse{Buses: buses, RequestID: req.ID}
}

func (h *Handler) answerRoute(req StatRequest) Response {
	if h.router == nil {
		return h.fail(req, transport.ErrInvalidState)
	}
	it, err := h.router.FindRoute(req.From, req.To)
	if err != nil {
		return h.fail(req, err)
	}

	items := make([]RouteItem, 0, len(it.Items))
	for _, item := range it.Items {
		switch v := item.(type) {
		case transport.Wait:
			items = append(items, RouteItem{Type: "Wait", StopName: v.StopName, Time: v.Time})
		case transport.Ride:
			items = append(items, RouteItem{Type: "Bus", Bus: v.BusName, SpanCount: v.SpanCount, Time: v.Time})
		}
	}

	return RouteResponse{Items: items, RequestID: req.ID, TotalTime: it.TotalTime}
}

// fail turns err into a "not found" answer. Expected misses are logged at
// debug level, anything else as a warning.
func (h *Handler) fail(req StatRequest, err error) Response {
	if errors.Is(err, catalogue.ErrNotFound) || errors.Is(err, transport.ErrNoRoute) {
		h.logger.Debug("stat request not answered", "id", req.ID, "type", req.Type, "error", err)
	} else {
		h.logger.Warn("stat request failed", "id", req.ID, "type", req.Type, "error", err)
	}

	return ErrorResponse{ErrorMessage: notFound, RequestID: req.ID}
}
