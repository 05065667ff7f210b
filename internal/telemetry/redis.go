package telemetry

import (
	"context" // Hook signatures
	"fmt"     // Error wrapping
	"net"     // Dial hook
	"time"    // Command latency

	"github.com/redis/go-redis/extra/redisotel/v9" // OpenTelemetry instrumentation
	"github.com/redis/go-redis/v9"                 // Redis client
	"github.com/sirupsen/logrus"                   // Logrus for structured logging
)

// MonitorRedis attaches tracing, metrics and debug logging to a Redis client
func MonitorRedis(r redis.UniversalClient) error {
	if err := redisotel.InstrumentTracing(r); err != nil {
		return fmt.Errorf("instrument tracing: %w", err)
	}
	if err := redisotel.InstrumentMetrics(r); err != nil {
		return fmt.Errorf("instrument metrics: %w", err)
	}
	r.AddHook(redisLog{})
	return nil
}

// redisLog logs dials at info and commands at debug level
type redisLog struct{}

func (redisLog) DialHook(hook redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := hook(ctx, network, addr)
		entry := logrus.WithFields(logrus.Fields{"network": network, "addr": addr})
		if err != nil {
			entry.WithError(err).Error("redis: dial failed")
			return conn, err
		}
		entry.Info("redis: connected")
		return conn, nil
	}
}

func (redisLog) ProcessHook(hook redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := hook(ctx, cmd)
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithFields(logrus.Fields{
				"cmd":     cmd.Name(),
				"latency": time.Since(start),
			}).Debug("redis: processed")
		}
		return err
	}
}

func (redisLog) ProcessPipelineHook(hook redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := hook(ctx, cmds)
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithFields(logrus.Fields{
				"cmds":    len(cmds),
				"latency": time.Since(start),
			}).Debug("redis: pipeline processed")
		}
		return err
	}
}
