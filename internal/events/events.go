// Package events publishes account and catalog notifications over MQTT.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecommerce-backend/internal/logger"

	"go.uber.org/zap"
)

const (
	TopicUserRegistered = "users/registered"
	TopicProductAdded   = "products/added"
)

// UserRegistered carries the link a new user follows to verify the account.
type UserRegistered struct {
	UserUUID       string    `json:"user_uuid"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ActivationLink string    `json:"activation_link"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type ProductAdded struct {
	ProductID  uint      `json:"product_id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is satisfied by *mqtt.Client.
type Publisher interface {
	Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error
}

type MQTTNotifier struct {
	publisher Publisher
	prefix    string
	qos       byte
}

func NewMQTTNotifier(publisher Publisher, topicPrefix string) *MQTTNotifier {
	return &MQTTNotifier{publisher: publisher, prefix: topicPrefix, qos: 1}
}

func (n *MQTTNotifier) UserRegistered(ctx context.Context, event UserRegistered) error {
	return n.publish(ctx, TopicUserRegistered, event)
}

func (n *MQTTNotifier) ProductAdded(ctx context.Context, event ProductAdded) error {
	return n.publish(ctx, TopicProductAdded, event)
}

func (n *MQTTNotifier) Topic(name string) string {
	if n.prefix == "" {
		return name
	}
	return n.prefix + "/" + name
}

func (n *MQTTNotifier) publish(ctx context.Context, name string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", name, err)
	}
	return n.publisher.Publish(ctx, n.Topic(name), n.qos, false, payload)
}

// LogNotifier writes events to the log. It stands in when MQTT is disabled.
type LogNotifier struct{}

func (LogNotifier) UserRegistered(_ context.Context, event UserRegistered) error {
	logger.Info("User registered",
		zap.String("user_uuid", event.UserUUID),
		zap.String("email", event.Email),
		zap.String("activation_link", event.ActivationLink),
	)
	return nil
}

func (LogNotifier) ProductAdded(_ context.Context, event ProductAdded) error {
	logger.Info("Product added",
		zap.Uint("product_id", event.ProductID),
		zap.String("title", event.Title),
	)
	return nil
}
