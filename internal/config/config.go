package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	networksFileEnvKey = "NETWORKS_FILE"

	signerKeyEnvKey           = "SIGNER_PRIVATE_KEY"
	confirmationTimeoutEnvKey = "CONFIRMATION_TIMEOUT"
	receiptPollEnvKey         = "RECEIPT_POLL_INTERVAL"
	refreshDelayEnvKey        = "REFRESH_DELAY"
	balancePollEnvKey         = "BALANCE_POLL_INTERVAL"

	adminUserEnvKey         = "ADMIN_USERNAME"
	adminPasswordHashEnvKey = "ADMIN_PASSWORD_HASH"

	allowedOriginsEnvKey = "ALLOWED_ORIGINS"
)

const (
	defaultConfirmationTimeout = 2 * time.Minute
	defaultReceiptPoll         = 2 * time.Second
	defaultRefreshDelay        = time.Second
	defaultBalancePoll         = 15 * time.Second
)

type App struct {
	Port               string
	NodeURL            string
	DBConnectionString string
	JWTSecret          string
	NetworksFile       string

	// SignerPrivateKey is optional. Without it every flow fails with not connected.
	SignerPrivateKey    string
	ConfirmationTimeout time.Duration
	ReceiptPollInterval time.Duration
	RefreshDelay        time.Duration
	BalancePollInterval time.Duration

	// AdminUsername and AdminPasswordHash (bcrypt) seed the first user of an
	// empty database. Both or neither must be set.
	AdminUsername     string
	AdminPasswordHash string

	// AllowedOrigins are the browser origins, besides the service's own, that
	// may open the flow event stream. "*" allows any.
	AllowedOrigins []string
}

func NewAppConfig() (App, error) {
	required := map[string]*string{}
	var app App
	required[apiPortEnvKey] = &app.Port
	required[ethNodeEnvKey] = &app.NodeURL
	required[dbConnEnvKey] = &app.DBConnectionString
	required[jwtSecretEnvKey] = &app.JWTSecret
	required[networksFileEnvKey] = &app.NetworksFile

	for key, dst := range required {
		val, ok := os.LookupEnv(key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		*dst = val
	}

	app.SignerPrivateKey = os.Getenv(signerKeyEnvKey)
	app.AdminUsername = os.Getenv(adminUserEnvKey)
	app.AdminPasswordHash = os.Getenv(adminPasswordHashEnvKey)
	app.AllowedOrigins = splitList(os.Getenv(allowedOriginsEnvKey))
	if (app.AdminUsername == "") != (app.AdminPasswordHash == "") {
		return App{}, fmt.Errorf("%w: %s and %s must be set together", errEnvVarInvalid, adminUserEnvKey, adminPasswordHashEnvKey)
	}

	var err error
	if app.ConfirmationTimeout, err = durationOr(confirmationTimeoutEnvKey, defaultConfirmationTimeout); err != nil {
		return App{}, err
	}
	if app.ReceiptPollInterval, err = durationOr(receiptPollEnvKey, defaultReceiptPoll); err != nil {
		return App{}, err
	}
	if app.RefreshDelay, err = durationOr(refreshDelayEnvKey, defaultRefreshDelay); err != nil {
		return App{}, err
	}
	if app.BalancePollInterval, err = durationOr(balancePollEnvKey, defaultBalancePoll); err != nil {
		return App{}, err
	}

	return app, nil
}

// splitList parses a comma separated list, dropping blanks.
func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, val)
	}
	return d, nil
}
