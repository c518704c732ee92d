package worker

// aviso_worker.go
// Processes staff notification jobs from QueueAvisos: one email per new
// order, sent to the configured staff inbox.

import (
	"context"
	"encoding/json"

	"ferreteria/internal/infra"

	"github.com/rs/zerolog/log"
)

// AvisoPayload is the job envelope sent to QueueAvisos. Para may be left
// empty; the worker falls back to the configured staff address.
type AvisoPayload struct {
	Para   string `json:"para,omitempty"`
	Asunto string `json:"asunto"`
	Cuerpo string `json:"cuerpo"`
}

type AvisoWorker struct {
	mailer      *infra.Mailer
	destinoPred string
}

func NewAvisoWorker(mailer *infra.Mailer, destinoPred string) *AvisoWorker {
	return &AvisoWorker{mailer: mailer, destinoPred: destinoPred}
}

func (w *AvisoWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload AvisoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("aviso_worker: invalid payload")
		return
	}
	para := payload.Para
	if para == "" {
		para = w.destinoPred
	}
	if para == "" {
		log.Warn().Msg("aviso_worker: no recipient configured — skipping")
		return
	}

	if err := w.mailer.SendAviso(para, payload.Asunto, payload.Cuerpo); err != nil {
		log.Error().Err(err).Str("to", para).Msg("aviso_worker: failed to send email")
		return
	}
	log.Info().Str("to", para).Msg("aviso_worker: aviso sent successfully")
}
