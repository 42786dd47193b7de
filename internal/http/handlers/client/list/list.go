// Package list реализует HTTP-обработчик для списочной выдачи клиентов тренера.
//
// Каждая запись дополняется меткой периода оплаты, количеством оставшихся
// дней абонемента и флагом уведомления.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-client-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
)

// Handler управляет HTTP-запросами на получение списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списочной выдачи.
type Service interface {
	List(ctx context.Context, instructorUID string) ([]*models.ClientInfo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список клиентов тренера
// @Description Возвращает всех клиентов текущего тренера с количеством оставшихся дней и флагом уведомления.
// @Tags Clients
// @Produce  json
// @Success 200 {object} map[string]any "Список клиентов"
// @Failure 401 {object} response.ErrorResponse "Тренер не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /clients/list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	instructorUID, ok := r.Context().Value(middlewarectx.Instructor).(string)
	if !ok || instructorUID == "" {
		log.Error("instructor uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	clients, err := h.service.List(r.Context(), instructorUID)
	if err != nil {
		log.Error("failed to list clients", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list clients"))
		return
	}

	log.Info("success to list clients", slog.Int("count", len(clients)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"clients": clients,
		"count":   len(clients),
	}))
}
