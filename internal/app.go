package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	"github.com/olgudulger/emlakfe/internal/adapters/backend"
	logger_adapter "github.com/olgudulger/emlakfe/internal/adapters/logger"
	"github.com/olgudulger/emlakfe/internal/adapters/rest"
	"github.com/olgudulger/emlakfe/internal/adapters/store"
	"github.com/olgudulger/emlakfe/internal/configs"
	"github.com/olgudulger/emlakfe/internal/core/port"
	"github.com/olgudulger/emlakfe/internal/core/usecase"
)

// App wires the whole service together. This is the composition root: every
// dependency is created and connected here, nowhere else.
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- loggers ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.AppName,
			Async:      true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- outgoing adapters: estate backend ---
	apiClient := backend.NewClient(appConfig.EstateAPI.URL, appConfig.EstateAPI.Token)
	propertyClient := backend.NewPropertyClient(apiClient)
	saleClient := backend.NewSaleClient(apiClient)
	customerClient := backend.NewCustomerClient(apiClient)
	userClient := backend.NewUserClient(apiClient)
	locationClient := backend.NewLocationClient(apiClient)
	appLogger.Info("Estate backend clients initialized.", port.Fields{"base_url": appConfig.EstateAPI.URL})

	entityStore := store.New(propertyClient, saleClient, customerClient, userClient, locationClient,
		baseLogger.WithFields(port.Fields{"component": "store"}))

	// --- use cases ---
	listPropertiesUC := usecase.NewListPropertiesUseCase(entityStore.Properties, entityStore.Customers)
	getPropertyUC := usecase.NewGetPropertyUseCase(propertyClient)
	savePropertyUC := usecase.NewSavePropertyUseCase(propertyClient, entityStore.Properties)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(propertyClient, entityStore.Properties)
	updateStatusUC := usecase.NewUpdatePropertyStatusUseCase(propertyClient, entityStore.Properties)
	priceHistoryUC := usecase.NewPropertyPriceHistoryUseCase(propertyClient)

	listSalesUC := usecase.NewListSalesUseCase(entityStore.Sales)
	getSaleUC := usecase.NewGetSaleUseCase(saleClient)
	saveSaleUC := usecase.NewSaveSaleUseCase(saleClient, propertyClient, entityStore.Sales, entityStore.Properties)
	cancelSaleUC := usecase.NewCancelSaleUseCase(saleClient, entityStore.Sales)
	deleteSaleUC := usecase.NewDeleteSaleUseCase(saleClient, entityStore.Sales)
	saleStatsUC := usecase.NewSaleStatisticsUseCase(entityStore.Sales)
	salesByPropertyUC := usecase.NewSalesByPropertyUseCase(saleClient)
	canSellUC := usecase.NewCanSellPropertyUseCase(saleClient)

	listCustomersUC := usecase.NewListCustomersUseCase(entityStore.Customers)
	getCustomerUC := usecase.NewGetCustomerUseCase(customerClient)
	saveCustomerUC := usecase.NewSaveCustomerUseCase(customerClient, entityStore.Customers)
	deleteCustomerUC := usecase.NewDeleteCustomerUseCase(customerClient, entityStore.Customers)

	listUsersUC := usecase.NewListUsersUseCase(entityStore.Users, userClient)
	saveUserUC := usecase.NewSaveUserUseCase(userClient, entityStore.Users)
	changePasswordUC := usecase.NewChangeUserPasswordUseCase(userClient)
	changeRoleUC := usecase.NewChangeUserRoleUseCase(userClient, entityStore.Users)
	toggleLockUC := usecase.NewToggleUserLockUseCase(userClient, entityStore.Users)

	listLocationsUC := usecase.NewListLocationsUseCase(entityStore.Provinces, entityStore.Districts, entityStore.Neighborhoods)

	appLogger.Info("All use cases initialized.", nil)

	// --- incoming adapter: REST API ---
	propertyHandler := rest.NewPropertyHandler(listPropertiesUC, getPropertyUC, savePropertyUC, deletePropertyUC, updateStatusUC, priceHistoryUC)
	saleHandler := rest.NewSaleHandler(listSalesUC, getSaleUC, saveSaleUC, cancelSaleUC, deleteSaleUC, saleStatsUC, salesByPropertyUC, canSellUC)
	customerHandler := rest.NewCustomerHandler(listCustomersUC, getCustomerUC, saveCustomerUC, deleteCustomerUC)
	userHandler := rest.NewUserHandler(listUsersUC, saveUserUC, changePasswordUC, changeRoleUC, toggleLockUC)
	locationHandler := rest.NewLocationHandler(listLocationsUC)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins,
		propertyHandler, saleHandler, customerHandler, userHandler, locationHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts the HTTP server and blocks until an OS signal or a server error.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout only, fluent may already be gone
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
