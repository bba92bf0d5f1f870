package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
)

// Subscriber fuente de eventos de cambio (lo implementa events.Broker).
type Subscriber interface {
	Subscribe() (<-chan appinventory.ChangeEvent, func())
}

// EventsHandler feed SSE de cambios confirmados para que la UI refresque.
type EventsHandler struct {
	sub       Subscriber
	keepAlive time.Duration
	log       zerolog.Logger
}

// NewEventsHandler construye el handler. keepAlive <= 0 usa 15s.
func NewEventsHandler(sub Subscriber, keepAlive time.Duration, log zerolog.Logger) *EventsHandler {
	if keepAlive <= 0 {
		keepAlive = 15 * time.Second
	}
	return &EventsHandler{sub: sub, keepAlive: keepAlive, log: log}
}

// Stream godoc
// @Summary      Feed de cambios (Server-Sent Events)
// @Description  Un evento por mutación confirmada: product.created, products.moved, product.deleted.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /api/events [get]
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	events, cancel := h.sub.Subscribe()
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()

		fmt.Fprint(w, ": connected\n\n")
		if err := w.Flush(); err != nil {
			return
		}
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				if err := writeEvent(w, ev); err != nil {
					h.log.Debug().Err(err).Msg("cliente SSE desconectado")
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": ping\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

func writeEvent(w *bufio.Writer, ev appinventory.ChangeEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
		return err
	}
	return w.Flush()
}
