package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/get_appointment"
	getAppointmentsCountHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/get_appointments_count"
	getAvailableSlotsHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/get_available_slots"
	getContactScheduleHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/get_contact_schedule"
	getTopCustomersHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/get_top_customers"
	listAppointmentsHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/list_appointments"
	listCustomersHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/list_customers"
	upcomingAppointmentsHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/upcoming_appointments"
	updateAppointmentHandler "github.com/avlasova/GCA-SchedulingService/internal/api/handlers/update_appointment"
	"github.com/avlasova/GCA-SchedulingService/internal/api/middleware"
	"github.com/avlasova/GCA-SchedulingService/internal/config"
	appointmentRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/appointment"
	contactRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/contact"
	customerRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/customer"
	appointmentsService "github.com/avlasova/GCA-SchedulingService/internal/service/appointments"
	customersService "github.com/avlasova/GCA-SchedulingService/internal/service/customers"
	checkConflictUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/check_conflict"
	countByTypeMonthUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/count_by_type_month"
	createAppointmentUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/create_appointment"
	generateSlotsUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/generate_slots"
	listAppointmentsUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/list_appointments"
	topCustomersUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/top_customers"
	upcomingAppointmentsUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/upcoming_appointments"
	updateAppointmentUC "github.com/avlasova/GCA-SchedulingService/internal/usecase/update_appointment"
	"github.com/avlasova/GCA-SchedulingService/pkg/dbmetrics"
	"github.com/avlasova/GCA-SchedulingService/pkg/logger"
	"github.com/avlasova/GCA-SchedulingService/pkg/metrics"
	"github.com/avlasova/GCA-SchedulingService/pkg/simpletxmanager"
	"github.com/avlasova/GCA-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GCA-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		customerRepository    *customerRepo.Repository
		contactRepository     *contactRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		contactRepository,
		log,
	)
	customerSvc := customersService.NewService(customerRepository, log)

	// Инициализируем use cases
	checkConflict := checkConflictUC.NewUseCase(appointmentRepository, log)

	createAppointment := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		checkConflict,
		txMgr,
		log,
	)
	updateAppointment := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		checkConflict,
		txMgr,
		log,
	)

	generateSlots := generateSlotsUC.NewUseCase(log)
	listAppointments := listAppointmentsUC.NewUseCase(appointmentRepository, log)
	countByTypeMonth := countByTypeMonthUC.NewUseCase(appointmentRepository, log)
	topCustomers := topCustomersUC.NewUseCase(appointmentRepository, customerRepository, log)
	upcomingAppointments := upcomingAppointmentsUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	createAppointmentH := createAppointmentHandler.NewHandler(createAppointment, log)
	updateAppointmentH := updateAppointmentHandler.NewHandler(updateAppointment, log)
	deleteAppointmentH := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointmentH := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointmentsH := listAppointmentsHandler.NewHandler(listAppointments, log)
	getAvailableSlotsH := getAvailableSlotsHandler.NewHandler(generateSlots, log)
	upcomingAppointmentsH := upcomingAppointmentsHandler.NewHandler(upcomingAppointments, log)
	getContactScheduleH := getContactScheduleHandler.NewHandler(appointmentSvc, log)
	listCustomersH := listCustomersHandler.NewHandler(customerSvc, log)
	getAppointmentsCountH := getAppointmentsCountHandler.NewHandler(countByTypeMonth, log)
	getTopCustomersH := getTopCustomersHandler.NewHandler(topCustomers, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные времена начала записи на дату
	api.HandleFunc("/slots", getAvailableSlotsH.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointmentH.Handle).Methods(http.MethodPost)

	// Список записей (all / week / month)
	protected.HandleFunc("/appointments", listAppointmentsH.Handle).Methods(http.MethodGet)

	// Ближайшие записи пользователя; регистрируется до маршрута с {appointmentId}
	protected.HandleFunc("/appointments/upcoming", upcomingAppointmentsH.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointmentH.Handle).Methods(http.MethodGet)

	// Обновление записи
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointmentH.Handle).Methods(http.MethodPut)

	// Удаление записи
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointmentH.Handle).Methods(http.MethodDelete)

	// --- Контакты и клиенты ---
	// Расписание контакта
	protected.HandleFunc("/contacts/{contactId}/appointments", getContactScheduleH.Handle).Methods(http.MethodGet)

	// Список клиентов
	protected.HandleFunc("/customers", listCustomersH.Handle).Methods(http.MethodGet)

	// --- Отчеты ---
	// Количество записей по типу и месяцу
	protected.HandleFunc("/reports/appointments-count", getAppointmentsCountH.Handle).Methods(http.MethodGet)

	// Рейтинг клиентов текущего месяца
	protected.HandleFunc("/reports/top-customers", getTopCustomersH.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
