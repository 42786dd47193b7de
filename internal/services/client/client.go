// Package services содержит бизнес-логику для управления клиентами тренера:
// регистрацию, расчёт даты окончания абонемента, частичное обновление
// и списочную выдачу с флагом уведомления.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/displaydate"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
)

// Типизированные ошибки бизнес-логики. Обработчики транслируют их
// в HTTP-статусы через errors.Is.
var (
	// ErrClientAlreadyExists возвращается при регистрации клиента с занятым именем.
	ErrClientAlreadyExists = errors.New("client name already exists")
	// ErrClientNotFound возвращается при обновлении или удалении несуществующего клиента.
	ErrClientNotFound = errors.New("client not found")
)

// ClientRepository определяет методы для работы с клиентами и справочником
// периодов оплаты в хранилище.
type ClientRepository interface {
	// CreateClient добавляет нового клиента и возвращает его ID.
	CreateClient(ctx context.Context, entry models.Client) (int, error)
	// FindClientByName возвращает клиента по имени либо nil, если записи нет.
	FindClientByName(ctx context.Context, name string) (*models.Client, error)
	// FindClientByID возвращает клиента по ID либо nil, если записи нет.
	FindClientByID(ctx context.Context, id int) (*models.Client, error)
	// UpdateClient обновляет данные клиента по ID.
	UpdateClient(ctx context.Context, entry models.Client, id int) (int, error)
	// RemoveClient удаляет клиента по ID и возвращает количество удалённых записей.
	RemoveClient(ctx context.Context, id int) (int, error)
	// ListClientsByInstructor возвращает клиентов тренера в порядке хранения.
	ListClientsByInstructor(ctx context.Context, instructorUID string) ([]*models.Client, error)
	// FindPaymentID возвращает ID периода оплаты по метке.
	FindPaymentID(ctx context.Context, period string) (int, bool, error)
	// FindPaymentLabel возвращает метку периода оплаты по ID.
	FindPaymentLabel(ctx context.Context, id int) (string, bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ClientService реализует бизнес-логику работы с клиентами, включая кеширование.
type ClientService struct {
	repo  ClientRepository
	cache Cache
	log   *slog.Logger
}

// NewClientService создает новый экземпляр ClientService.
func NewClientService(repo ClientRepository, cache Cache, log *slog.Logger) *ClientService {
	return &ClientService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create регистрирует нового клиента тренера и возвращает его ID.
//
// Имя должно быть свободно, дата начала — корректной датой DD/MM/YYYY,
// метка периода — одной из четырёх известных. Дата окончания вычисляется
// из даты начала и периода; флаг уведомления при создании всегда false.
func (s *ClientService) Create(ctx context.Context, instructorUID string, req models.DummyClient) (int, error) {
	existing, err := s.repo.FindClientByName(ctx, req.Name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("name %q: %w", req.Name, ErrClientAlreadyExists)
	}

	startDate, err := displaydate.Parse(req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	finishDate, err := expiry.ExpirationDate(req.Payment, startDate)
	if err != nil {
		return 0, err
	}

	paymentID, found, err := s.repo.FindPaymentID(ctx, req.Payment)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("period %q: %w", req.Payment, expiry.ErrUnknownPeriod)
	}

	entry := models.Client{
		Name:          req.Name,
		InstructorUID: instructorUID,
		PaymentID:     paymentID,
		StartDate:     displaydate.Format(startDate),
		FinishDate:    displaydate.Format(finishDate),
		Notification:  false,
	}

	id, err := s.repo.CreateClient(ctx, entry)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new client", slog.Int("id", id))

	cacheKey := fmt.Sprintf("client:%d", id)
	entry.ID = id
	if err := s.cache.Set(cacheKey, entry, time.Hour); err != nil {
		s.log.Warn("failed to cache client", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает клиента по ID, используя кеш или репозиторий.
func (s *ClientService) Read(ctx context.Context, id int) (*models.Client, error) {
	var result *models.Client
	cacheKey := fmt.Sprintf("client:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.FindClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("id %d: %w", id, ErrClientNotFound)
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает клиентов тренера, обогащённых количеством оставшихся дней
// и флагом уведомления. Оба значения всегда вычисляются в момент чтения
// и никогда не берутся из хранилища, порядок записей — порядок хранилища.
func (s *ClientService) List(ctx context.Context, instructorUID string) ([]*models.ClientInfo, error) {
	entries, err := s.repo.ListClientsByInstructor(ctx, instructorUID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	result := make([]*models.ClientInfo, 0, len(entries))
	for _, entry := range entries {
		finishDate, err := displaydate.Parse(entry.FinishDate)
		if err != nil {
			return nil, fmt.Errorf("stored finish date for client %d: %w", entry.ID, err)
		}
		period, found, err := s.repo.FindPaymentLabel(ctx, entry.PaymentID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("payment id %d: %w", entry.PaymentID, expiry.ErrUnknownPeriod)
		}

		daysLeft := expiry.DaysLeft(finishDate, today)
		result = append(result, &models.ClientInfo{
			ID:           entry.ID,
			Name:         entry.Name,
			Payment:      period,
			StartDate:    entry.StartDate,
			FinishDate:   entry.FinishDate,
			DaysLeft:     daysLeft,
			Notification: expiry.ShouldNotify(daysLeft),
		})
	}
	return result, nil
}

// Update применяет частичное обновление к клиенту и возвращает количество
// изменённых строк. Пустые поля запроса заполняются из сохранённой записи,
// дата окончания пересчитывается безусловно.
func (s *ClientService) Update(ctx context.Context, req models.DummyUpdateClient, id int) (int, error) {
	existing, err := s.repo.FindClientByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, fmt.Errorf("id %d: %w", id, ErrClientNotFound)
	}

	entry, err := s.reconcile(ctx, req, existing)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.UpdateClient(ctx, entry, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated client in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("client:%d", id)
	entry.ID = id
	if err := s.cache.Set(cacheKey, entry, time.Hour); err != nil {
		s.log.Warn("failed to cache client", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return count, nil
}

// Remove удаляет клиента по ID и инвалидирует кеш.
func (s *ClientService) Remove(ctx context.Context, id int) (int, error) {
	existing, err := s.repo.FindClientByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, fmt.Errorf("id %d: %w", id, ErrClientNotFound)
	}

	cacheKey := fmt.Sprintf("client:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveClient(ctx, id)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// reconcile сводит частичное обновление с сохранённой записью в полную
// модель для записи. Правила, по порядку: пустое имя и пустая дата начала
// берутся из сохранённой записи; пустая метка периода восстанавливается
// из справочника по сохранённому payment_id; дата окончания пересчитывается
// всегда, даже если по значению ничего не изменилось; итоговая метка
// разрешается обратно в payment_id. Дата начала валидируется на этом пути
// так же строго, как и при создании.
func (s *ClientService) reconcile(ctx context.Context, req models.DummyUpdateClient, existing *models.Client) (models.Client, error) {
	name := req.Name
	if name == "" {
		name = existing.Name
	}

	startDateStr := req.StartDate
	if startDateStr == "" {
		startDateStr = existing.StartDate
	}

	period := req.Payment
	if period == "" {
		label, found, err := s.repo.FindPaymentLabel(ctx, existing.PaymentID)
		if err != nil {
			return models.Client{}, err
		}
		if !found {
			return models.Client{}, fmt.Errorf("payment id %d: %w", existing.PaymentID, expiry.ErrUnknownPeriod)
		}
		period = label
	}

	startDate, err := displaydate.Parse(startDateStr)
	if err != nil {
		return models.Client{}, fmt.Errorf("invalid start date: %w", err)
	}
	finishDate, err := expiry.ExpirationDate(period, startDate)
	if err != nil {
		return models.Client{}, err
	}

	paymentID, found, err := s.repo.FindPaymentID(ctx, period)
	if err != nil {
		return models.Client{}, err
	}
	if !found {
		return models.Client{}, fmt.Errorf("period %q: %w", period, expiry.ErrUnknownPeriod)
	}

	return models.Client{
		Name:          name,
		InstructorUID: existing.InstructorUID,
		PaymentID:     paymentID,
		StartDate:     displaydate.Format(startDate),
		FinishDate:    displaydate.Format(finishDate),
	}, nil
}
