package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// StorageNamespace salts per-tenant resource names so two deployments
	// sharing a database cannot collide.
	StorageNamespace string `envconfig:"storage_namespace" required:"true"`

	ProvisionPollInitial time.Duration `envconfig:"provision_poll_initial" default:"250ms"`
	ProvisionPollMax     time.Duration `envconfig:"provision_poll_max" default:"2s"`
	ProvisionPollBudget  time.Duration `envconfig:"provision_poll_budget" default:"10s"`

	JWTEnabled         bool     `envconfig:"jwt_enabled" default:"false"`
	JWTIssuer          string   `envconfig:"jwt_issuer"`
	JWTJwksURL         string   `envconfig:"jwt_jwks_url"`
	JWTAllowedSubjects []string `envconfig:"jwt_allowed_subjects"`
	JWTRequiredScope   string   `envconfig:"jwt_required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
