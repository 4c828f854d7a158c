package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

// LeadImporter é o contrato do worker com o domínio: ele não conhece banco,
// só entrega payloads validáveis.
type LeadImporter interface {
	ImportLead(ctx context.Context, payload ImportPayload) error
}

// isRetryable separa falha de colaborador (volta pra fila) de payload podre
// (DLQ). O contrato vem do erro, não do tipo concreto do domínio.
func isRetryable(err error) bool {
	var r interface{ Retryable() bool }
	return errors.As(err, &r) && r.Retryable()
}

type Worker struct {
	Channel  *amqp.Channel
	Importer LeadImporter
}

func NewWorker(ch *amqp.Channel, importer LeadImporter) *Worker {
	return &Worker{
		Channel:  ch,
		Importer: importer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ImportPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [IMPORT] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue: vai pra DLQ.
				d.Nack(false, false)
				middleware.RecordLeadImported("malformed")
				continue
			}

			if err := w.Importer.ImportLead(context.Background(), payload); err != nil {
				if isRetryable(err) {
					// Store fora do ar: devolve pra fila em vez de
					// condenar uma mensagem boa à DLQ.
					log.Printf("⚠️ [IMPORT] Falha transitória com %s, requeue: %s", payload.Email, err)
					d.Nack(false, true)
					middleware.RecordLeadImported("requeued")
				} else {
					log.Printf("❌ [IMPORT] Payload rejeitado de %s: %s", payload.Email, err)
					d.Nack(false, false)
					middleware.RecordLeadImported("failed")
				}
			} else {
				d.Ack(false)
				middleware.RecordLeadImported("ok")
			}
		}
	}()

	log.Printf(" [*] Import worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
