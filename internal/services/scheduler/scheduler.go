// Package services реализует планировщик уведомлений: периодически находит
// клиентов с заканчивающимся абонементом и публикует их в очередь.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
	"github.com/magabrotheeeer/gym-client-manager/internal/rabbitmq"
)

// ExpiringClientRepository определяет выборку клиентов с заканчивающимся абонементом.
type ExpiringClientRepository interface {
	FindClientsExpiringSoon(ctx context.Context, thresholdDays int) ([]*models.ExpiringClientInfo, error)
}

// Publisher публикует сообщение в exchange с ключом маршрутизации.
type Publisher func(ch *amqp.Channel, exchange, routingkey string, message any) error

// SchedulerService периодически выбирает клиентов, у которых абонемент
// заканчивается в пределах порога уведомления, и публикует их в брокер.
type SchedulerService struct {
	repo    ExpiringClientRepository
	log     *slog.Logger
	publish Publisher
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo ExpiringClientRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo:    repo,
		log:     log,
		publish: rabbitmq.PublishMessage,
	}
}

// Run запускает цикл поиска и публикации с заданным интервалом.
// Первый проход выполняется сразу, до первого тика.
func (s *SchedulerService) Run(ctx context.Context, channel *amqp.Channel, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.publishExpiring(ctx, channel)
	for {
		select {
		case <-ticker.C:
			s.publishExpiring(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) publishExpiring(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting scan for expiring client subscriptions")
	clientsInfo, err := s.repo.FindClientsExpiringSoon(ctx, expiry.NotificationThreshold)
	if err != nil {
		s.log.Error("failed to find expiring clients", sl.Err(err))
		return
	}
	for _, clientInfo := range clientsInfo {
		err = s.publish(channel, rabbitmq.ExchangeName, rabbitmq.ExpiringRoutingKey, clientInfo)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
	s.log.Info("finished scan for expiring client subscriptions",
		slog.Int("count", len(clientsInfo)))
}
