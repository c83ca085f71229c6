//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/cities_get"
	"dispatch/internal/handlers/rest/city_get"
	"dispatch/internal/handlers/rest/city_post"
	"dispatch/internal/handlers/rest/completion_last_get"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/orders_unassigned_get"
	"dispatch/internal/handlers/rest/route_courier_unassign_post"
	"dispatch/internal/handlers/rest/route_delete"
	"dispatch/internal/handlers/rest/route_get"
	"dispatch/internal/handlers/rest/route_order_delete"
	"dispatch/internal/handlers/rest/route_orders_post"
	"dispatch/internal/handlers/rest/route_post"
	"dispatch/internal/handlers/rest/route_put"
	"dispatch/internal/handlers/rest/route_state_put"
	"dispatch/internal/handlers/rest/route_stop_state_put"
	"dispatch/internal/handlers/rest/route_stops_get"
	"dispatch/internal/handlers/rest/routes_get"
	"dispatch/internal/handlers/tasks/order_autocomplete"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/zoneclock"
	"dispatch/internal/repository"
	cityRepo "dispatch/internal/repository/city"
	courierRepo "dispatch/internal/repository/courier"
	orderRepo "dispatch/internal/repository/order"
	routeRepo "dispatch/internal/repository/route"
	cityService "dispatch/internal/service/city"
	completionService "dispatch/internal/service/completion"
	courierService "dispatch/internal/service/courier"
	orderService "dispatch/internal/service/order"
	"dispatch/internal/service/orderevents"
	routeService "dispatch/internal/service/route"
	"dispatch/pkg/background"
	"dispatch/pkg/locker/redis_adapter"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	AutocompleteInterval time.Duration
	AutocompleteLockTTL  time.Duration
	FallbackZone         string
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceCity       ServiceCity
	ServiceRoute      ServiceRoute
	ServiceOrder      ServiceOrder
	ServiceCompletion ServiceCompletion
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceCity interface {
	city_get.Service
	city_post.Service
	cities_get.Service
}

type ServiceRoute interface {
	route_post.Service
	route_get.Service
	routes_get.Service
	route_put.Service
	route_delete.Service
	route_stops_get.Service
	route_orders_post.Service
	route_order_delete.Service
	route_courier_unassign_post.Service
	route_state_put.Service
	route_stop_state_put.Service
}

type ServiceOrder interface {
	orders_unassigned_get.Service
}

type ServiceCompletion interface {
	completion_last_get.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCityRepository,
	provideCourierRepository,
	provideOrderRepository,
	provideRouteRepository,
	provideStopRepository,

	wire.Bind(new(repository.Querier), new(*querier.Querier)),
)

var serviceSet = wire.NewSet(
	provideFallbackZone,
	zoneclock.New,

	provideServiceCity,
	provideServiceCourier,
	provideServiceOrder,
	provideServiceRoute,

	wire.Bind(new(cityService.Repository), new(*cityRepo.Repository)),
	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(routeService.RouteRepository), new(*routeRepo.Repository)),
	wire.Bind(new(routeService.StopRepository), new(*routeRepo.StopRepository)),

	wire.Bind(new(orderService.CityDirectory), new(*cityService.City)),
	wire.Bind(new(routeService.CityDirectory), new(*cityService.City)),
	wire.Bind(new(routeService.CourierRegistry), new(*courierService.Courier)),
	wire.Bind(new(routeService.OrderLedger), new(*orderService.Ledger)),
	wire.Bind(new(orderService.Clock), new(*zoneclock.Clock)),

	wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideServiceCompletion,
		provideAutocompleteInterval,
		provideAutocompleteLockTTL,
		redis_adapter.New,

		provideOrderAutocompleteTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceCity), new(*cityService.City)),
		wire.Bind(new(ServiceRoute), new(*routeService.Engine)),
		wire.Bind(new(ServiceOrder), new(*orderService.Ledger)),
		wire.Bind(new(ServiceCompletion), new(*completionService.Service)),

		wire.Bind(new(completionService.OrderLedger), new(*orderService.Ledger)),
		wire.Bind(new(completionService.Clock), new(*zoneclock.Clock)),
		wire.Bind(new(redis.UniversalClient), new(*redis.Client)),
		wire.Bind(new(order_autocomplete.Service), new(*completionService.Service)),
		wire.Bind(new(order_autocomplete.Locker), new(*redis_adapter.Locker)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderEvents *orderevents.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideStatusHandlerFactory,
		provideOrderEvents,

		wire.Bind(new(orderevents.OrderReader), new(*orderService.Ledger)),
		wire.Bind(new(orderevents.OrderLedger), new(*orderService.Ledger)),
		wire.Bind(new(orderevents.RouteDetacher), new(*routeService.Engine)),
		wire.Bind(new(orderevents.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCityRepository(querier repository.Querier) *cityRepo.Repository {
	return cityRepo.New(querier)
}

func provideCourierRepository(querier repository.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier repository.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideRouteRepository(querier repository.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideStopRepository(querier repository.Querier) *routeRepo.StopRepository {
	return routeRepo.NewStopRepository(querier)
}

func provideFallbackZone(cfg *config.Config) FallbackZone {
	return FallbackZone(cfg.Dispatch.FallbackTimezone)
}

func provideAutocompleteInterval(cfg *config.Config) AutocompleteInterval {
	return AutocompleteInterval(cfg.Background.OrderAutocompleteInterval)
}

func provideAutocompleteLockTTL(cfg *config.Config) AutocompleteLockTTL {
	return AutocompleteLockTTL(cfg.Background.OrderAutocompleteLockTTL)
}

func provideServiceCity(repository cityService.Repository) *cityService.City {
	return cityService.New(repository)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	cities orderService.CityDirectory,
	clock orderService.Clock,
	txManager orderService.TxManager,
	fallbackZone FallbackZone,
) *orderService.Ledger {
	return orderService.New(log, repository, cities, clock, txManager, string(fallbackZone))
}

func provideServiceRoute(
	routes routeService.RouteRepository,
	stops routeService.StopRepository,
	couriers routeService.CourierRegistry,
	orders routeService.OrderLedger,
	cities routeService.CityDirectory,
	txManager routeService.TxManager,
) *routeService.Engine {
	return routeService.New(routes, stops, couriers, orders, cities, txManager)
}

func provideServiceCompletion(
	log logger.Logger,
	orders completionService.OrderLedger,
	clock completionService.Clock,
	fallbackZone FallbackZone,
) *completionService.Service {
	return completionService.New(log, orders, clock, string(fallbackZone))
}

func provideStatusHandlerFactory(
	ledger orderevents.OrderLedger,
	routes orderevents.RouteDetacher,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(ledger, routes)
}

func provideOrderEvents(
	orders orderevents.OrderReader,
	statusFactory orderevents.HandlerFactory,
) *orderevents.Service {
	return orderevents.New(orders, statusFactory)
}

func provideOrderAutocompleteTask(
	log logger.Logger,
	service order_autocomplete.Service,
	locker order_autocomplete.Locker,
	interval AutocompleteInterval,
	lockTTL AutocompleteLockTTL,
) *order_autocomplete.OrderAutocomplete {
	return order_autocomplete.NewOrderAutocomplete(
		log,
		service,
		locker,
		time.Duration(interval),
		time.Duration(lockTTL),
	)
}

func provideTaskList(
	orderAutocompleteTask *order_autocomplete.OrderAutocomplete,
) []background.Task {
	return []background.Task{
		orderAutocompleteTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
