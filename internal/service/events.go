package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/model"
)

const rentalEventsTopic = "rental-events"

const (
	EventRented   = "RENTED"
	EventReturned = "RETURNED"
)

type RentalEvent struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	RentalID int       `json:"rentalId"`
	BookID   int       `json:"bookId,omitempty"`
	UserID   int       `json:"userId"`
	At       time.Time `json:"at"`
}

type Publisher struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log.Named("events"),
	}
}

func (p *Publisher) Publish(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// publishRentalEvent emits an audit event after the transaction has
// committed. Publishing failures are logged, never surfaced to the caller.
func (s *Service) publishRentalEvent(_ context.Context, eventType string, rental model.Rental) {
	if s.events == nil {
		return
	}
	ev := RentalEvent{
		ID:       uuid.NewString(),
		Type:     eventType,
		RentalID: rental.ID,
		BookID:   rental.BookID,
		UserID:   rental.UserID,
		At:       time.Now().UTC(),
	}
	if err := s.events.Publish(rentalEventsTopic, ev); err != nil {
		s.events.log.Warn("publish rental event", zap.String("type", eventType), zap.Error(err))
	}
}
