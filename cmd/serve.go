// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/internal/authorization"
	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/identity"
	"github.com/canonical/onboarding-service/internal/kratos"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring/prometheus"
	"github.com/canonical/onboarding-service/internal/openfga"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/billing"
	"github.com/canonical/onboarding-service/pkg/invites"
	"github.com/canonical/onboarding-service/pkg/onboarding"
	"github.com/canonical/onboarding-service/pkg/provisioner"
	"github.com/canonical/onboarding-service/pkg/seats"
	"github.com/canonical/onboarding-service/pkg/subscription"
	"github.com/canonical/onboarding-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("onboarding-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(
			ofga,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	plans := config.NewPlanCatalog()

	inviteService := invites.NewService(s, kratosClient, specs.InvitationLifetime, tracer, monitor, logger)
	seatService := seats.NewService(s, tracer, monitor, logger)
	onboardingService := onboarding.NewService(s, inviteService, authorizer, plans, tracer, monitor, logger)
	billingService := billing.NewService(s, plans, tracer, monitor, logger)

	resourceClient := provisioner.NewPostgresResourceClient(dbClient, tracer, logger)
	provisionerService := provisioner.NewService(
		resourceClient,
		provisioner.Config{
			Salt:        specs.StorageNamespace,
			PollInitial: specs.ProvisionPollInitial,
			PollMax:     specs.ProvisionPollMax,
			PollBudget:  specs.ProvisionPollBudget,
		},
		tracer,
		monitor,
		logger,
	)

	subscriptionService := subscription.NewService(s, inviteService, seatService, provisionerService, tracer, monitor, logger)

	// The API either trusts identity headers injected by the fronting
	// proxy or verifies bearer tokens itself.
	authenticate := identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	if specs.JWTEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.JWTIssuer,
			specs.JWTJwksURL,
			specs.JWTAllowedSubjects,
			specs.JWTRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
		authenticate = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	}

	router := web.NewRouter(
		[]web.EndpointRegistrar{
			onboarding.NewAPI(onboardingService, logger),
			billing.NewAPI(billingService, logger),
		},
		[]web.EndpointRegistrar{
			invites.NewAPI(inviteService, s, tracer, monitor, logger),
			subscription.NewAPI(subscriptionService, logger),
		},
		authenticate,
		dbClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
