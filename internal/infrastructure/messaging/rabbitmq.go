package messaging

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"crm_assistencia/internal/infrastructure/config"

	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

var (
	ErrNotConnected      = errors.New("no connection to RabbitMQ")
	ErrConnectInProgress = errors.New("RabbitMQ connect already in progress")
	ErrClientClosed      = errors.New("RabbitMQ client closed")
)

// amqpChannel is the part of *amqp.Channel the publisher needs.
type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQClient owns one connection and channel to a topic exchange and
// reconnects when the broker drops it.
type RabbitMQClient struct {
	cfg        config.RabbitMQConfig
	connection *amqp.Connection
	channel    *amqp.Channel
	mu         sync.RWMutex
	closing    bool
	connecting atomic.Bool
}

func NewRabbitMQClient(cfg config.RabbitMQConfig) *RabbitMQClient {
	if cfg.RetryCount < 1 {
		cfg.RetryCount = 1
	}
	return &RabbitMQClient{cfg: cfg}
}

func ConnectionURL(cfg config.RabbitMQConfig) string {
	vhost := cfg.VHost
	if vhost != "/" && !strings.HasPrefix(vhost, "/") {
		vhost = "/" + vhost
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port, vhost)
}

// Connect dials the broker with retries. The lock is held only to swap the
// new connection in.
func (r *RabbitMQClient) Connect() error {
	if !r.connecting.CompareAndSwap(false, true) {
		return ErrConnectInProgress
	}
	defer r.connecting.Store(false)

	var err error
	for attempt := 1; attempt <= r.cfg.RetryCount; attempt++ {
		if r.isClosing() {
			return ErrClientClosed
		}
		var (
			conn *amqp.Connection
			ch   *amqp.Channel
		)
		conn, ch, err = r.dial()
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Int("max", r.cfg.RetryCount).Msg("[events][rabbitmq] connection failed")
			if attempt < r.cfg.RetryCount {
				time.Sleep(r.cfg.RetryDelay)
			}
			continue
		}

		r.mu.Lock()
		if r.closing {
			r.mu.Unlock()
			ch.Close()
			conn.Close()
			return ErrClientClosed
		}
		r.connection, r.channel = conn, ch
		r.mu.Unlock()

		log.Info().Str("host", r.cfg.Host).Str("exchange", r.cfg.Exchange).Msg("[events][rabbitmq] connected")
		go r.watchConnection(conn)
		return nil
	}
	return fmt.Errorf("connect to RabbitMQ: %w", err)
}

func (r *RabbitMQClient) dial() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(ConnectionURL(r.cfg))
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(r.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("declare exchange %q: %w", r.cfg.Exchange, err)
	}
	return conn, ch, nil
}

func (r *RabbitMQClient) isClosing() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closing
}

func (r *RabbitMQClient) watchConnection(conn *amqp.Connection) {
	err, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))
	if !ok {
		return
	}
	if r.isClosing() {
		return
	}
	log.Warn().Err(err).Msg("[events][rabbitmq] connection lost, reconnecting")
	time.Sleep(2 * time.Second)
	if err := r.Connect(); err != nil {
		log.Error().Err(err).Msg("[events][rabbitmq] reconnect failed")
	}
}

func (r *RabbitMQClient) Exchange() string {
	return r.cfg.Exchange
}

// channelIfConnected fails fast while a (re)connect is running.
func (r *RabbitMQClient) channelIfConnected() (amqpChannel, error) {
	if r.connecting.Load() {
		return nil, ErrNotConnected
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.connection == nil || r.connection.IsClosed() || r.channel == nil {
		return nil, ErrNotConnected
	}
	return r.channel, nil
}

func (r *RabbitMQClient) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closing {
		return nil
	}
	r.closing = true

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("channel close: %w", err))
		}
	}
	if r.connection != nil {
		if err := r.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("connection close: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Error().Err(err).Msg("[events][rabbitmq] close failed")
		return err
	}
	log.Info().Msg("[events][rabbitmq] closed")
	return nil
}
