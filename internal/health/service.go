package health

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"aimlink-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// DBPinger is optional for health check. If nil, database is reported as disconnected.
type DBPinger interface {
	Ping() error
}

// Report is the /health response body.
type Report struct {
	Status       string               `json:"status"`
	Traffic      TrafficInfo          `json:"traffic"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type TrafficInfo struct {
	TotalRequests   int         `json:"totalRequests"`
	SuccessCount    int         `json:"successCount"`
	FailedCount     int         `json:"failedCount"`
	AvgResponseTime interface{} `json:"avgResponseTime"`
	LastRequest     interface{} `json:"lastRequest"`
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

// CollectHealth gathers dependency status plus the traffic counters the
// request marker middleware keeps in Redis.
func CollectHealth(ctx context.Context, rdb *redis.Client, db DBPinger) Report {
	report := Report{
		Dependencies: make(map[string]DepStatus),
	}

	dbStatus := "disconnected"
	var dbPingMs *int64
	if db != nil {
		start := time.Now()
		if err := db.Ping(); err == nil {
			ms := time.Since(start).Milliseconds()
			dbPingMs = &ms
			dbStatus = "connected"
		} else {
			dbStatus = "error"
		}
	}
	report.Dependencies["database"] = DepStatus{Status: dbStatus, PingMs: dbPingMs}

	redisStatus := "disconnected"
	var redisPingMs *int64
	traffic := TrafficInfo{AvgResponseTime: 0}

	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPingMs = &ms
			redisStatus = "connected"

			totalReq, _ := rdb.Get(ctx, middleware.KeyReqTotal).Result()
			totalErr, _ := rdb.Get(ctx, middleware.KeyReqErrors).Result()
			resTime, _ := rdb.Get(ctx, middleware.KeyResTime).Result()
			resCount, _ := rdb.Get(ctx, middleware.KeyResCount).Result()
			lastReq, _ := rdb.Get(ctx, middleware.KeyLastReq).Result()

			traffic.TotalRequests, _ = strconv.Atoi(totalReq)
			traffic.FailedCount, _ = strconv.Atoi(totalErr)
			traffic.SuccessCount = traffic.TotalRequests - traffic.FailedCount

			timeTotal, _ := strconv.ParseFloat(resTime, 64)
			count, _ := strconv.Atoi(resCount)
			if count > 0 {
				traffic.AvgResponseTime = fmt.Sprintf("%.2f", timeTotal/float64(count))
			}
			if lastReq != "" {
				var parsed map[string]interface{}
				if json.Unmarshal([]byte(lastReq), &parsed) == nil {
					traffic.LastRequest = parsed
				}
			}
		} else {
			redisStatus = "error"
		}
	}
	report.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}
	report.Traffic = traffic

	if dbStatus == "connected" {
		report.Status = "ok"
	} else {
		report.Status = "issue"
	}
	return report
}
