package services

import (
	"authbox/internal/logger"

	"go.uber.org/zap"
)

type EmailJob struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

var EmailQueue = make(chan EmailJob, 100) // глобальная очередь на 100 писем

// enqueueEmail кладёт письмо в очередь, не блокируя вызывающий запрос.
// Переполненная очередь (например, SMTP лежит) — письмо теряется с записью
// в лог, ответ пользователю от этого не зависит.
func enqueueEmail(job EmailJob) bool {
	select {
	case EmailQueue <- job:
		return true
	default:
		logger.Log.Warn("Очередь писем переполнена, письмо отброшено", zap.String("subject", job.Subject))
		return false
	}
}

// StartEmailWorker запускает воркер, разбирающий очередь писем. Ошибки
// доставки только логируются: на пользовательские ответы они не влияют.
func StartEmailWorker(emailService *EmailService) {
	go func() {
		for job := range EmailQueue {
			var err error
			if job.IsHTML {
				err = emailService.SendHTML(job.To, job.Subject, job.Body)
			} else {
				err = emailService.Send(job.To, job.Subject, job.Body)
			}
			if err != nil {
				logger.Log.Error("Не удалось отправить письмо", zap.String("subject", job.Subject), zap.Error(err))
			}
		}
	}()
}
