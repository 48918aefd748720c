package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/config"
	"github.com/GranTechDigital/crewflow-sub006/internal/api/handler"
	"github.com/GranTechDigital/crewflow-sub006/internal/api/router"
	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/database"
	"github.com/GranTechDigital/crewflow-sub006/pkg/jwt"
	"github.com/GranTechDigital/crewflow-sub006/pkg/logger"
	"github.com/GranTechDigital/crewflow-sub006/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "caminho do arquivo de configuração")
	flag.Parse()

	// 1. Configuração
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("falha ao carregar configuração: %v", err)
	}

	// 2. Logger
	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("falha ao inicializar logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Banco de dados + migrações
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("falha ao conectar ao banco de dados", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("falha ao obter sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("falha ao executar migrações", zap.Error(err))
	}

	// 4. Redis
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("falha ao conectar ao Redis", zap.Error(err))
	}
	defer rdb.Close()

	// 5. Camadas da aplicação
	repo := repository.NewRepository(db)
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, zapLogger)
	h := handler.New(svc, zapLogger)
	r := router.New(cfg, h, jwtMgr, rdb, zapLogger)

	// 6. Agendador da sincronização periódica
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Sync.AgendadorHabilitado {
		go runScheduler(schedCtx, svc.Sincronizacao, cfg.Sync.IntervaloMinutos, zapLogger)
	}

	// 7. Servidor HTTP com desligamento gracioso
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		zapLogger.Info("servidor iniciado", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("desligando o servidor")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("desligamento forçado", zap.Error(err))
	}
	zapLogger.Info("servidor encerrado")
}

// runScheduler executa a passada conservadora da sincronização em intervalos
// fixos: alinha tarefas existentes sem criar faltantes, atribuída ao sistema.
func runScheduler(ctx context.Context, sync service.SincronizacaoService, intervaloMinutos int, logger *zap.Logger) {
	if intervaloMinutos <= 0 {
		intervaloMinutos = 120
	}
	ticker := time.NewTicker(time.Duration(intervaloMinutos) * time.Minute)
	defer ticker.Stop()

	logger.Info("agendador de sincronização habilitado",
		zap.Int("intervalo_minutos", intervaloMinutos))

	for {
		select {
		case <-ctx.Done():
			logger.Info("agendador de sincronização encerrado")
			return
		case <-ticker.C:
			resultado, err := sync.Sincronizar(ctx, &dto.SincronizarRequest{
				CriarFaltantes: false,
			}, dto.Ator{Nome: model.IdentidadeSistema})
			if err != nil {
				logger.Error("falha na sincronização agendada", zap.Error(err))
				continue
			}
			logger.Info("sincronização agendada executada",
				zap.Int("canceladas", resultado.Canceladas),
				zap.Int("reativadas", resultado.Reativadas),
				zap.Int("inalteradas", resultado.Inalteradas),
			)
		}
	}
}
