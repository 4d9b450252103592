package main

import (
	"fmt"
	"net/http"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplehub/hrms-backend-go/internal/handler/http"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/clock"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hrms-backend-go/internal/repository/postgresql"
	authService "github.com/peoplehub/hrms-backend-go/internal/service/auth"
	leaveService "github.com/peoplehub/hrms-backend-go/internal/service/leave"
	timeTrackingService "github.com/peoplehub/hrms-backend-go/internal/service/timetracking"
	userService "github.com/peoplehub/hrms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)

	txManager := postgresql.NewTxManager(db)
	clk := clock.New()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(txManager, userRepo, roleRepo, JWTService)
	userSvc := userService.NewUserService(txManager, userRepo, roleRepo, permissionRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveTypeRepo, leaveBalanceRepo, leaveRepo, clk)
	timeTrackingSvc := timeTrackingService.NewTimeTrackingService(txManager, sessionRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	permissionHandler := appHTTP.NewPermissionHandler(userSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	timeTrackingHandler := appHTTP.NewTimeTrackingHandler(timeTrackingSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		permissionHandler,
		leaveHandler,
		timeTrackingHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
