package rabbitmq

// ExchangeName — exchange, через который проходят все уведомления.
const ExchangeName = "notifications"

// ExpiringQueue и ExpiringRoutingKey задают очередь уведомлений
// о заканчивающихся абонементах.
const (
	ExpiringQueue      = "notifications.expiring"
	ExpiringRoutingKey = "expiring"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди уведомлений для объявления при старте.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ExpiringQueue, RoutingKey: ExpiringRoutingKey},
	}
}
