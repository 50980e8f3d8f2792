package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/salesdash/api/internal/domain"
	pkgkafka "github.com/salesdash/api/pkg/kafka"
)

// Kafka topics for salesdash domain events.
const (
	TopicUserRegistered = "salesdash.user.registered"
	TopicProductChanged = "salesdash.product.changed"
	TopicContactChanged = "salesdash.contact.changed"
)

// Aggregate type constants.
const (
	AggregateTypeUser    = "user"
	AggregateTypeProduct = "product"
	AggregateTypeContact = "contact"
)

// Source identifier for events originating from this service.
const Source = "salesdash"

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProductChangedData is the payload for product change events.
type ProductChangedData struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Quantity    int64   `json:"quantity,omitempty"`
	NetPrice    float64 `json:"netPrice,omitempty"`
}

// ContactChangedData is the payload for contact change events.
type ContactChangedData struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

// Producer publishes salesdash domain events to Kafka. Publication is best
// effort: callers log failures and never surface them to the API caller.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{kafka: kafka, logger: logger}
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{ID: user.ID, Email: user.Email}
	return p.publish(ctx, TopicUserRegistered, "user.registered", user.ID, AggregateTypeUser, data)
}

// PublishProductChanged publishes a product change event with the given
// action (created, updated, deleted, deleted_all).
func (p *Producer) PublishProductChanged(ctx context.Context, action string, product *domain.Product) error {
	data := ProductChangedData{
		ID:          product.ID,
		ProductName: product.ProductName,
		Price:       product.Price,
		Quantity:    product.Quantity,
		NetPrice:    product.NetPrice,
	}
	return p.publish(ctx, TopicProductChanged, "product."+action, product.ID, AggregateTypeProduct, data)
}

// PublishContactChanged publishes a contact change event with the given
// action (created, updated, deleted).
func (p *Producer) PublishContactChanged(ctx context.Context, action string, contact *domain.Contact) error {
	data := ContactChangedData{ID: contact.ID, Name: contact.Name, Status: contact.Status}
	return p.publish(ctx, TopicContactChanged, "contact."+action, contact.ID, AggregateTypeContact, data)
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, data any) error {
	evt, err := pkgkafka.NewEvent(eventType, aggregateID, aggregateType, Source, data)
	if err != nil {
		return fmt.Errorf("build %s event: %w", eventType, err)
	}
	return p.kafka.Publish(ctx, topic, evt)
}
