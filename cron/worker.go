package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"motorhub/config"
	"motorhub/services/promo"
	"motorhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePromoExpire = "promo:expire"

// PromoExpirePayload identifies the promotion a scheduled expiry task
// deactivates.
type PromoExpirePayload struct {
	PromoID string `json:"promoId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPromoTaskDB,
	}
}

// NewPromoTaskClient returns the client used to enqueue expiry tasks.
func NewPromoTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// SchedulePromoExpiry enqueues a task that fires at the promotion's
// deadline. The promo registry also expires lazily on read, so a missed
// task degrades to a slightly later deactivation, never a wrong price
// for a fresh computation.
func SchedulePromoExpiry(client *asynq.Client, promoID string, endsAt time.Time) error {
	payload, err := json.Marshal(PromoExpirePayload{PromoID: promoID})
	if err != nil {
		return fmt.Errorf("failed to marshal promo expiry payload: %w", err)
	}
	task := asynq.NewTask(TypePromoExpire, payload)
	if _, err := client.Enqueue(task, asynq.ProcessAt(endsAt)); err != nil {
		return fmt.Errorf("failed to schedule promo expiry: %w", err)
	}
	return nil
}

// InitPromoWorker runs the async worker in background.
func InitPromoWorker(registry *promo.Registry) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePromoExpire, handlePromoExpire(registry))

	go func() {
		log.Println("[PromoWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PromoWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PromoWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePromoExpire(registry *promo.Registry) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PromoExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PromoWorker] invalid payload: %v", err)
			return err
		}

		logger := utils.GetLogger()
		if registry.Expire(p.PromoID) {
			logger.Info("promotion expired",
				zap.String("promoId", p.PromoID),
				zap.String("event", "promo_expired"))
		}
		return nil
	}
}
