package main

import (
	"flag"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/booking"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/catalog"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/config"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/db"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/logger"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/server"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/tracing"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/vehicle"
)

var (
	configPath = flag.String("config", "configs/carwash-server.json", "配置文件路径")
)

func main() {
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(&catalog.Service{}, &vehicle.Vehicle{}, &booking.Booking{}); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// 组装业务模块
	catalogSvc := catalog.NewCatalog(catalog.NewRepo(gormDB))
	bookingSvc := booking.NewService(booking.NewGormTransactor(gormDB))

	catalogHandler := catalog.NewHTTPHandler(catalogSvc, log)
	bookingHandler := booking.NewHTTPHandler(bookingSvc, log)

	// 启动统一的 HTTP 服务模板
	if err := server.RunHTTPServer(cfg, log, func(r *gin.Engine) error {
		catalogHandler.RegisterRoutes(r)
		bookingHandler.RegisterRoutes(r)
		return nil
	}); err != nil {
		log.Fatalf("carwash-server exited with error: %v", err)
	}
}
