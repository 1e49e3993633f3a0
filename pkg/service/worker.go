package service

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	amqp "github.com/rabbitmq/amqp091-go"
	protobuf "google.golang.org/protobuf/proto"

	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

// Work consumes rank jobs from the job queue and publishes the computed
// ranks to the result queue. Blocks until the delivery channel closes.
func Work(q Queue) error {
	// Register consumer
	msgs, err := q.Channel.Consume(
		q.Jobs.Name, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return err
	}
	log.Info("waiting for rank jobs", "queue", q.Jobs.Name)
	// Queue Message Handler
	for d := range msgs {
		// Get data from bytes
		var job proto.Job
		if err := protobuf.Unmarshal(d.Body, &job); err != nil {
			FailOnNack(d, err)
			continue
		}
		log.Info("computing rank job", "type", job.Type, "from", job.GetCorpus().GetFrom())
		result, err := ComputeRanks(job.GetCorpus(), job.Type)
		if err != nil {
			FailOnNack(d, err)
			continue
		}
		// Publish result to result queue
		data, err := protobuf.Marshal(result)
		if err != nil {
			FailOnNack(d, err)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = q.Channel.PublishWithContext(ctx,
			"",             // exchange
			q.Results.Name, // routing key
			false,          // mandatory
			false,          // immediate
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/x-protobuf",
				Body:         data,
			})
		cancel()
		if err != nil {
			FailOnNack(d, err)
			continue
		}
		// Ack
		if err := d.Ack(false); err != nil {
			FailOnNack(d, err)
			continue
		}
		log.Info("completed rank job", "pages", len(result.Iterated)+len(result.Sampled))
	}
	return nil
}
