package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// Job is the wire shape published to RabbitMQ.
type Job struct {
	ReceiptID int `json:"receipt_id"`
}

// AMQPQueue publishes jobs to RabbitMQ. Consumption is handled by
// cmd/worker; Subscribe here only exists to satisfy the Queue interface
// for in-process deployments that were flipped to a broker.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPQueue(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &AMQPQueue{conn: conn, ch: ch}, nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	id, ok := payload.(int)
	if !ok {
		return fmt.Errorf("unsupported payload type %T", payload)
	}

	if _, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return err
	}

	body, err := json.Marshal(Job{ReceiptID: id})
	if err != nil {
		return err
	}

	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	if _, err := q.ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return err
	}
	msgs, err := q.ch.Consume(topic, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for d := range msgs {
			var job Job
			if err := json.Unmarshal(d.Body, &job); err != nil {
				d.Ack(false)
				continue
			}
			if err := handler(job.ReceiptID); err != nil {
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}()
	return nil
}

func (q *AMQPQueue) Close() error {
	q.ch.Close()
	return q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)
