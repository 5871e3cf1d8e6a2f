package health

import (
	"net/http"
	"time"

	"bunk-backend/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var startTime = time.Now()

// Handler reports service liveness, database reachability and basic
// host stats.
func Handler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbOK := pool.Ping(r.Context()) == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		payload := map[string]interface{}{
			"status":         status,
			"database":       dbOK,
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		}

		if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
			payload["cpu_percent"] = percents[0]
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			payload["memory_percent"] = vm.UsedPercent
		}

		utils.JSON(w, code, payload)
	}
}
