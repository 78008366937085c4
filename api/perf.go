package api

import (
	"fmt"
	"net/http"
	"runtime"
	"time"
)

// PerformanceDTO is the process self-report.
type PerformanceDTO struct {
	Time       string `json:"time"`
	Memory     string `json:"memory"`
	Goroutines int    `json:"goroutines"`
}

// HealthDTO is the liveness response.
type HealthDTO struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Performance reports process uptime (HH:MM:SS.mmm), heap in use, and the
// goroutine count.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.started)
	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60
	millis := int(uptime.Milliseconds()) % 1000

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	memMB := float64(ms.Alloc) / (1024 * 1024)

	writeJSON(w, http.StatusOK, PerformanceDTO{
		Time:       fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis),
		Memory:     fmt.Sprintf("%.2f MB", memMB),
		Goroutines: runtime.NumGoroutine(),
	})
}

// Health is the liveness endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok", Service: "savings-engine"})
}
