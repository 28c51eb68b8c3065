package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"leasing_offers/internal/domain/pricing"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

const (
	defaultPort         = 8080
	defaultEventsStream = "offer-events"
)

// Tables holds the DynamoDB table names. Empty values fall back to the
// repository defaults.
type Tables struct {
	Offers        string
	StatusHistory string
	Leasers       string
	Commissions   string
	Ambassadors   string
}

// Redis configures the event publisher. An empty Addr disables publishing.
type Redis struct {
	Addr     string
	Password string
	DB       int
	Stream   string
}

type Config struct {
	Port               int
	DefaultCoefficient decimal.Decimal
	LineTolerance      decimal.Decimal
	Tables             Tables
	Redis              Redis
}

// Load reads the configuration from the environment (.env is autoloaded).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - DEFAULT_FINANCING_COEFFICIENT (default: 3.27)
//   - LINE_TOLERANCE (default: 0.01)
//   - OFFERS_TABLE, OFFER_STATUS_HISTORY_TABLE, LEASERS_TABLE, COMMISSIONS_TABLE, AMBASSADORS_TABLE
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB (default: 0), OFFER_EVENTS_STREAM (default: offer-events)
func Load() (Config, error) {
	port, err := getenvInt("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	coef, err := getenvDecimal("DEFAULT_FINANCING_COEFFICIENT", pricing.DefaultFinancingCoefficient)
	if err != nil {
		return Config{}, err
	}
	if !coef.IsPositive() {
		return Config{}, fmt.Errorf("DEFAULT_FINANCING_COEFFICIENT must be greater than zero, got %s", coef)
	}
	tolerance, err := getenvDecimal("LINE_TOLERANCE", pricing.DefaultLineTolerance)
	if err != nil {
		return Config{}, err
	}
	if tolerance.IsNegative() {
		return Config{}, fmt.Errorf("LINE_TOLERANCE must not be negative, got %s", tolerance)
	}
	redisDB, err := getenvInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:               port,
		DefaultCoefficient: coef,
		LineTolerance:      tolerance,
		Tables: Tables{
			Offers:        os.Getenv("OFFERS_TABLE"),
			StatusHistory: os.Getenv("OFFER_STATUS_HISTORY_TABLE"),
			Leasers:       os.Getenv("LEASERS_TABLE"),
			Commissions:   os.Getenv("COMMISSIONS_TABLE"),
			Ambassadors:   os.Getenv("AMBASSADORS_TABLE"),
		},
		Redis: Redis{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			Stream:   getenvDefault("OFFER_EVENTS_STREAM", defaultEventsStream),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getenvDecimal(key, def string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getenvDefault(key, def))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
