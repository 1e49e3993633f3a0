package service

import (
	"fmt"

	"github.com/charmbracelet/log"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/utils"
)

type Queue struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Jobs    *amqp.Queue
	Results *amqp.Queue
}

// ConnectQueue dials RabbitMQ and declares the job and result queues.
func ConnectQueue(env utils.EnvVars) (Queue, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:5672/", env.RabbitUser, env.RabbitPass, env.RabbitHost)
	conn, err := amqp.Dial(url)
	if err != nil {
		return Queue{}, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return Queue{}, fmt.Errorf("could not open a channel to RabbitMQ: %w", err)
	}
	jobs, err := DeclareQueue(env.JobQueue, ch)
	if err != nil {
		conn.Close()
		return Queue{}, fmt.Errorf("could not declare %q queue: %w", env.JobQueue, err)
	}
	results, err := DeclareQueue(env.ResultQueue, ch)
	if err != nil {
		conn.Close()
		return Queue{}, fmt.Errorf("could not declare %q queue: %w", env.ResultQueue, err)
	}
	return Queue{Conn: conn, Channel: ch, Jobs: &jobs, Results: &results}, nil
}

func (q Queue) Close() {
	if q.Channel != nil {
		q.Channel.Close()
	}
	if q.Conn != nil {
		q.Conn.Close()
	}
}

func DeclareQueue(name string, ch *amqp.Channel) (queue amqp.Queue, err error) {
	queue, err = ch.QueueDeclare(
		name,  // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return
	}
	if err = ch.Qos(1, 0, false); err != nil {
		return
	}
	return
}

func FailOnNack(d amqp.Delivery, err error) {
	log.Error("could not handle delivery", "err", err)
	// Message will be re-added to the queue
	if err = d.Nack(false, true); err != nil {
		log.Fatalf("could not NACK to message queue: %v", err)
	}
}
