package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	pool        *pgxpool.Pool
	customersDB *sql.DB
	mongoClient *mongo.Client
	redisClient *redis.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pool *pgxpool.Pool, customersDB *sql.DB, mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:        pool,
		customersDB: customersDB,
		mongoClient: mongoClient,
		redisClient: redisClient,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once every backing store answers a ping. The
// remote transaction API is deliberately excluded: its availability is
// handled per-request by the retry policy.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{}

	if err := h.pool.Ping(ctx); err != nil {
		h.unready(w, "accounts database unhealthy: "+err.Error())
		return
	}
	checks["accountsDb"] = "ok"

	if err := h.customersDB.PingContext(ctx); err != nil {
		h.unready(w, "customers database unhealthy: "+err.Error())
		return
	}
	checks["customersDb"] = "ok"

	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		h.unready(w, "mongodb unhealthy: "+err.Error())
		return
	}
	checks["mongodb"] = "ok"

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.unready(w, "redis unhealthy: "+err.Error())
		return
	}
	checks["redis"] = "ok"

	checks["status"] = "ready"
	writeJSON(w, http.StatusOK, checks)
}

func (h *HealthHandler) unready(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status": "unavailable",
		"detail": message,
	})
}
