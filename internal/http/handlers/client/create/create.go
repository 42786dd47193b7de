// Package create реализует HTTP-обработчик для регистрации новых клиентов тренера.
//
// Handler принимает JSON-запрос с данными клиента, валидирует их, извлекает UID тренера
// из контекста, вызывает бизнес-логику создания клиента через сервис и возвращает ID
// созданной записи в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-client-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/displaydate"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
	services "github.com/magabrotheeeer/gym-client-manager/internal/services/client"
)

// Handler управляет HTTP-запросами на регистрацию новых клиентов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания клиентов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания клиента.
type Service interface {
	Create(ctx context.Context, instructorUID string, req models.DummyClient) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Зарегистрировать нового клиента
// @Description Создает нового клиента текущего тренера. Возвращает ID созданной записи.
// @Tags Clients
// @Accept  json
// @Produce  json
// @Param request body models.DummyClient true "Данные нового клиента"
// @Success 200 {object} map[string]any "Успешное создание клиента"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Тренер не авторизован"
// @Failure 409 {object} response.ErrorResponse "Клиент с таким именем уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании клиента"
// @Router /clients [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyClient
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	instructorUID, ok := r.Context().Value(middlewarectx.Instructor).(string)
	if !ok || instructorUID == "" {
		log.Error("instructor uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), instructorUID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientAlreadyExists):
			log.Error("client already exists", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("client with this name already exists"))
		case errors.Is(err, displaydate.ErrInvalidDate):
			log.Error("invalid start date", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid start date"))
		case errors.Is(err, expiry.ErrUnknownPeriod):
			log.Error("unknown payment period", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown payment period"))
		default:
			log.Error("failed to create client", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create client"))
		}
		return
	}

	log.Info("success to create client", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"last_added_id": id,
	}))
}
