package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// WorkerConfig - параметры доставки уведомлений
type WorkerConfig struct {
	URL        string
	Secret     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// AlertWorker забирает уведомления из очереди Redis и отправляет их на вебхук
type AlertWorker struct {
	redisClient redis.Cmdable
	logger      *logrus.Logger
	cfg         WorkerConfig
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(redisClient redis.Cmdable, logger *logrus.Logger, cfg WorkerConfig) *AlertWorker {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		sleep: sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Start запускает горутину для обработки очереди уведомлений
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting route alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping route alert worker.")
				return
			default:
				// BRPOP забирает самое старое уведомление, 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, AlertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop route alert from Redis")
					w.sleep(ctx, w.cfg.Timeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.Deliver(ctx, result[1])
			}
		}
	}()
}

// Deliver отправляет одно уведомление с повторами и экспоненциальной задержкой.
// Возвращает true, если вебхук ответил 2xx.
func (w *AlertWorker) Deliver(ctx context.Context, rawPayload string) bool {
	var alert RouteAlert
	if err := json.Unmarshal([]byte(rawPayload), &alert); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal route alert")
		return false
	}

	log := w.logger.WithFields(logrus.Fields{
		"worker":         "AlertWorker",
		"distance_km":    alert.DistanceKm,
		"risk_area_hits": len(alert.IntersectedAreaIDs),
	})
	log.Debug("Processing route alert...")

	if w.cfg.URL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return false
	}

	delay := w.cfg.BaseDelay
	for i := 0; i < w.cfg.MaxRetries; i++ {
		retriesLeft := w.cfg.MaxRetries - 1 - i

		status, err := w.send(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send route alert. Retries left: %d", retriesLeft)
		case status >= 200 && status < 300:
			log.Info("Route alert delivered successfully.")
			return true
		default:
			log.Warnf("Route alert delivery failed with status code %d. Retries left: %d", status, retriesLeft)
		}

		if retriesLeft > 0 {
			w.sleep(ctx, delay)
			delay *= 2
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Errorf("Failed to deliver route alert after %d attempts.", w.cfg.MaxRetries)
	return false
}

func (w *AlertWorker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if w.cfg.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(rawPayload, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Sign возвращает HMAC-SHA256 подпись данных в hex
func Sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
